package objectid

import (
	"context"
	"crypto/rand"
	"io"

	"github.com/kbukum/objectid/errors"
)

// Codec mints and validates identifiers against a registry. A Codec is
// immutable and safe for concurrent use as long as its random source is.
type Codec struct {
	registry *Registry
	random   io.Reader
	hash     HashAlgorithm
	metrics  *Metrics
}

// Option configures a Codec.
type Option func(*Codec)

// WithRandom replaces crypto/rand.Reader as the payload source for mutable
// types.
func WithRandom(r io.Reader) Option {
	return func(c *Codec) { c.random = r }
}

// WithHash selects the algorithm used by MintContent.
func WithHash(alg HashAlgorithm) Option {
	return func(c *Codec) { c.hash = alg }
}

// WithMetrics records mint and rejection counts.
func WithMetrics(m *Metrics) Option {
	return func(c *Codec) { c.metrics = m }
}

// New creates a Codec over reg. A nil registry means DefaultRegistry.
func New(reg *Registry, opts ...Option) *Codec {
	if reg == nil {
		reg = DefaultRegistry()
	}
	c := &Codec{
		registry: reg,
		random:   rand.Reader,
		hash:     HashBlake2b,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the registry the codec validates against.
func (c *Codec) Registry() *Registry { return c.registry }

// Hash returns the algorithm used by MintContent.
func (c *Codec) Hash() HashAlgorithm { return c.hash }

// Mint builds the identifier text for typeName. Immutable types require a
// 16-byte payload; mutable types reject any payload (nil means absent) and
// get 16 random bytes instead.
func (c *Codec) Mint(typeName string, payload []byte) (string, error) {
	id, err := c.MintID(typeName, payload)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// MintID is Mint returning the decoded form.
func (c *Codec) MintID(typeName string, payload []byte) (ID, error) {
	def, err := c.registry.Lookup(typeName)
	if err != nil {
		return ID{}, c.reject("mint", err)
	}

	if def.Mutable {
		if payload != nil {
			return ID{}, c.reject("mint", errors.InvalidArgument(MsgPayloadNotAccepted))
		}
		payload = make([]byte, PayloadSize)
		if _, err := io.ReadFull(c.random, payload); err != nil {
			return ID{}, errors.Internal(err)
		}
	} else {
		if payload == nil {
			return ID{}, c.reject("mint", errors.InvalidArgument(MsgPayloadRequired))
		}
		if len(payload) != PayloadSize {
			return ID{}, c.reject("mint", errors.InvalidArgument(MsgPayloadLength).
				WithDetail("length", len(payload)))
		}
	}

	c.metrics.RecordMinted(context.Background(), def.Name)
	return build(def.Tag, payload), nil
}

// MintContent hashes content with the codec's algorithm and mints an
// identifier for the immutable type typeName from the digest.
func (c *Codec) MintContent(typeName string, content []byte) (string, error) {
	def, err := c.registry.Lookup(typeName)
	if err != nil {
		return "", c.reject("mint", err)
	}
	if def.Mutable {
		return "", c.reject("mint", errors.InvalidArgument(MsgContentForMutable))
	}
	sum, err := ContentHash(c.hash, content)
	if err != nil {
		return "", err
	}
	return c.Mint(typeName, sum)
}

// Validate checks raw identifier bytes and returns them unchanged.
func (c *Codec) Validate(raw []byte) ([]byte, error) {
	if reason, ok := checkLayout(c.registry, raw); !ok {
		return nil, c.reject("validate", errors.InvalidArgument(reason))
	}
	return raw, nil
}

// Parse decodes identifier text and validates it.
func (c *Codec) Parse(text string) (ID, error) {
	raw, err := Decode(text)
	if err != nil {
		return ID{}, c.reject("parse", err)
	}
	raw, err = c.Validate(raw)
	if err != nil {
		return ID{}, err
	}
	var id ID
	copy(id[:], raw)
	return id, nil
}

// TypeOf returns the registered type name of identifier text.
func (c *Codec) TypeOf(text string) (string, error) {
	id, err := c.Parse(text)
	if err != nil {
		return "", err
	}
	def, _ := c.registry.ByTag(id.Type())
	return def.Name, nil
}

// Describe resolves the definition of a parsed identifier.
func (c *Codec) Describe(id ID) (Definition, bool) {
	return c.registry.ByTag(id.Type())
}

func (c *Codec) reject(op string, err error) error {
	if appErr, ok := errors.AsAppError(err); ok {
		c.metrics.RecordRejected(context.Background(), op, appErr.Message)
	}
	return err
}

// --- Package-level codec over DefaultRegistry ---

var defaultCodec = New(nil)

// Default returns the codec used by the package-level functions.
func Default() *Codec { return defaultCodec }

// Mint mints an identifier with the default codec.
func Mint(typeName string, payload []byte) (string, error) {
	return defaultCodec.Mint(typeName, payload)
}

// Validate validates raw identifier bytes with the default codec.
func Validate(raw []byte) ([]byte, error) {
	return defaultCodec.Validate(raw)
}

// Parse decodes and validates identifier text with the default codec.
func Parse(text string) (ID, error) {
	return defaultCodec.Parse(text)
}

// TypeOf returns the type name of identifier text using the default codec.
func TypeOf(text string) (string, error) {
	return defaultCodec.TypeOf(text)
}
