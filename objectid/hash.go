package objectid

import (
	"fmt"

	"github.com/multiformats/go-multihash"
	"golang.org/x/crypto/blake2b"

	"github.com/kbukum/objectid/errors"
)

// HashAlgorithm names a digest used to derive immutable payloads from content.
type HashAlgorithm string

const (
	// HashBlake2b is BLAKE2b with a native 16-byte digest.
	HashBlake2b HashAlgorithm = "blake2b"
	// HashSHA256 is SHA2-256 truncated to 16 bytes through multihash.
	HashSHA256 HashAlgorithm = "sha2-256"
)

// HashAlgorithms lists the supported algorithms.
func HashAlgorithms() []HashAlgorithm {
	return []HashAlgorithm{HashBlake2b, HashSHA256}
}

// ContentHash digests data into a PayloadSize payload.
func ContentHash(alg HashAlgorithm, data []byte) ([]byte, error) {
	switch alg {
	case HashBlake2b:
		h, err := blake2b.New(PayloadSize, nil)
		if err != nil {
			return nil, errors.Internal(fmt.Errorf("blake2b: %w", err))
		}
		_, _ = h.Write(data)
		return h.Sum(nil), nil
	case HashSHA256:
		mh, err := multihash.Sum(data, multihash.SHA2_256, PayloadSize)
		if err != nil {
			return nil, errors.Internal(fmt.Errorf("multihash: %w", err))
		}
		decoded, err := multihash.Decode(mh)
		if err != nil {
			return nil, errors.Internal(fmt.Errorf("multihash decode: %w", err))
		}
		return decoded.Digest, nil
	default:
		return nil, errors.InvalidArgument(MsgUnknownHashAlgorithm).WithDetail("algorithm", string(alg))
	}
}
