package objectid

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/kbukum/objectid/errors"
)

// Identifier layout.
const (
	// Version is the only recognised format version, stored at offset 0.
	Version byte = 0x01
	// Size is the length of a raw identifier.
	Size = 18
	// PayloadSize is the length of the payload at offsets 2..17.
	PayloadSize = 16

	versionOffset = 0
	typeOffset    = 1
	payloadOffset = 2
)

// Client-facing failure messages.
const (
	MsgUnknownObjectType    = "unknown object type"
	MsgPayloadRequired      = "payload required for immutable object"
	MsgPayloadNotAccepted   = "payload not accepted for mutable object"
	MsgPayloadLength        = "payload must be 16 bytes"
	MsgIdentifierLength     = "identifier must be 18 bytes"
	MsgInvalidVersion       = "invalid identifier version"
	MsgUnknownObjectID      = "unknown object id"
	MsgMalformedIdentifier  = "identifier is not valid base64url"
	MsgUnknownHashAlgorithm = "unknown hash algorithm"
	MsgContentForMutable    = "content hashing requires an immutable object"
)

// encoding is unpadded base64url.
var encoding = base64.RawURLEncoding

// ID is a decoded identifier. The zero value is not a valid identifier.
type ID [Size]byte

// Version returns the format version byte.
func (id ID) Version() byte { return id[versionOffset] }

// Type returns the object type tag.
func (id ID) Type() ObjectType { return ObjectType(id[typeOffset]) }

// Payload returns a copy of the 16-byte payload.
func (id ID) Payload() []byte {
	p := make([]byte, PayloadSize)
	copy(p, id[payloadOffset:])
	return p
}

// Bytes returns a copy of the raw 18 bytes.
func (id ID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id[:])
	return b
}

// String returns the base64url text form.
func (id ID) String() string { return encoding.EncodeToString(id[:]) }

// PayloadHex returns the payload as lowercase hex.
func (id ID) PayloadHex() string { return hex.EncodeToString(id[payloadOffset:]) }

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// Encode returns the text form of raw identifier bytes.
func Encode(raw []byte) string {
	return encoding.EncodeToString(raw)
}

// Decode converts identifier text to raw bytes without validating them.
// Only the canonical encoding is accepted: the decoder skips CR and LF, so
// the bytes must re-encode to exactly text.
func Decode(text string) ([]byte, error) {
	raw, err := encoding.DecodeString(text)
	if err != nil {
		return nil, errors.InvalidArgument(MsgMalformedIdentifier).WithCause(err)
	}
	if encoding.EncodeToString(raw) != text {
		return nil, errors.InvalidArgument(MsgMalformedIdentifier)
	}
	return raw, nil
}

// build lays out [version][tag][payload].
func build(tag ObjectType, payload []byte) ID {
	var id ID
	id[versionOffset] = Version
	id[typeOffset] = byte(tag)
	copy(id[payloadOffset:], payload)
	return id
}

// checkLayout enforces length, version and tag registration, in that order.
func checkLayout(reg *Registry, raw []byte) (reason string, ok bool) {
	switch {
	case len(raw) != Size:
		return MsgIdentifierLength, false
	case raw[versionOffset] != Version:
		return MsgInvalidVersion, false
	case !reg.Has(ObjectType(raw[typeOffset])):
		return MsgUnknownObjectID, false
	}
	return "", true
}
