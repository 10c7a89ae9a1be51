package objectid

import (
	"github.com/kbukum/objectid/validation"
)

// Config is the registry section of a service configuration.
//
//	objects:
//	  hash: blake2b
//	  types:
//	    - { name: user, tag: 1, mutable: true }
//	    - { name: credential, tag: 2, mutable: false }
type Config struct {
	Hash  string       `json:"hash" yaml:"hash" mapstructure:"hash" validate:"omitempty,oneof=blake2b sha2-256"`
	Types []Definition `json:"types" yaml:"types" mapstructure:"types"`
}

// ApplyDefaults fills in the hash algorithm and, when no types are
// configured, the built-in definitions.
func (c *Config) ApplyDefaults() {
	if c.Hash == "" {
		c.Hash = string(HashBlake2b)
	}
	if len(c.Types) == 0 {
		c.Types = DefaultRegistry().Definitions()
	}
}

// Validate checks the hash algorithm and the type table.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	_, err := NewRegistry(c.Types...)
	return err
}

// Build constructs a codec from the configuration. Extra options are applied
// after the configured ones.
func (c *Config) Build(opts ...Option) (*Codec, error) {
	if err := validation.Validate(c); err != nil {
		return nil, err
	}
	reg, err := NewRegistry(c.Types...)
	if err != nil {
		return nil, err
	}
	all := append([]Option{WithHash(HashAlgorithm(c.Hash))}, opts...)
	return New(reg, all...), nil
}
