package objectid

import (
	"fmt"
	"sort"

	"github.com/kbukum/objectid/errors"
	"github.com/kbukum/objectid/logger"
	"github.com/kbukum/objectid/validation"
)

// ObjectType is the one-byte tag stored at offset 1 of every identifier.
type ObjectType uint8

// Built-in object types.
const (
	User       ObjectType = 0x01
	Credential ObjectType = 0x02
)

// Definition describes one registered object type.
type Definition struct {
	Name string     `json:"name" yaml:"name" mapstructure:"name" validate:"required,typename,max=32"`
	Tag  ObjectType `json:"tag" yaml:"tag" mapstructure:"tag" validate:"required"`
	// Mutable types get a random payload; immutable types embed a
	// caller-supplied one such as a content hash.
	Mutable bool `json:"mutable" yaml:"mutable" mapstructure:"mutable"`
}

// Built-in definitions.
var (
	UserDefinition       = Definition{Name: "user", Tag: User, Mutable: true}
	CredentialDefinition = Definition{Name: "credential", Tag: Credential, Mutable: false}
)

// Registry maps type names to tags and back. It is immutable once built and
// safe for concurrent use.
type Registry struct {
	byName map[string]Definition
	byTag  [256]*Definition
	defs   []Definition
}

var defaultRegistry = MustRegistry(UserDefinition, CredentialDefinition)

// DefaultRegistry returns the registry holding the built-in user and
// credential types.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry validates defs and builds a registry from them. Names and tags
// must be unique and tag 0 is reserved.
func NewRegistry(defs ...Definition) (*Registry, error) {
	v := validation.New()
	v.Custom(len(defs) > 0, "types", "at least one object type is required")

	seenName := make(map[string]int, len(defs))
	seenTag := make(map[ObjectType]int, len(defs))
	for i, def := range defs {
		field := fmt.Sprintf("types[%d]", i)
		v.Merge(field, validation.Validate(def))

		if j, ok := seenName[def.Name]; ok && def.Name != "" {
			v.AddError(field+".name", fmt.Sprintf("duplicates types[%d]", j))
		}
		if j, ok := seenTag[def.Tag]; ok && def.Tag != 0 {
			v.AddError(field+".tag", fmt.Sprintf("duplicates types[%d]", j))
		}
		seenName[def.Name] = i
		seenTag[def.Tag] = i
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	r := &Registry{
		byName: make(map[string]Definition, len(defs)),
		defs:   make([]Definition, len(defs)),
	}
	copy(r.defs, defs)
	sort.Slice(r.defs, func(i, j int) bool { return r.defs[i].Tag < r.defs[j].Tag })
	for i := range r.defs {
		def := &r.defs[i]
		r.byName[def.Name] = *def
		r.byTag[def.Tag] = def
	}

	logger.Get("objectid").Debug("object type registry built", logger.Fields("types", len(r.defs)))
	return r, nil
}

// MustRegistry is NewRegistry for static tables; it panics on invalid input.
func MustRegistry(defs ...Definition) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(fmt.Sprintf("objectid: invalid registry: %v", err))
	}
	return r
}

// Lookup resolves a type name.
func (r *Registry) Lookup(name string) (Definition, error) {
	def, ok := r.byName[name]
	if !ok {
		return Definition{}, errors.InvalidArgument(MsgUnknownObjectType)
	}
	return def, nil
}

// ByTag resolves a type tag. The boolean is false for unregistered tags.
func (r *Registry) ByTag(tag ObjectType) (Definition, bool) {
	def := r.byTag[tag]
	if def == nil {
		return Definition{}, false
	}
	return *def, true
}

// Has reports whether tag is registered.
func (r *Registry) Has(tag ObjectType) bool {
	return r.byTag[tag] != nil
}

// Definitions returns the registered types ordered by tag.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}
