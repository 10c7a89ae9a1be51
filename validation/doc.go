// Package validation provides input validation utilities.
//
// It supports struct tag validation (using the validator library) and
// programmatic validation with error collection. Both produce
// errors.Validation AppErrors whose details carry the offending fields.
//
// # Struct Tag Validation
//
//	type Definition struct {
//	    Name string `json:"name" validate:"required,typename,max=32"`
//	    Tag  uint8  `json:"tag" validate:"required"`
//	}
//	err := validation.Validate(def)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(!seen[name], "types[1].name", "duplicate type name")
//	err := v.Err()
package validation
