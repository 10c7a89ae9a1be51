package objectid

import (
	"strings"
	"testing"

	"github.com/kbukum/objectid/errors"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	user, err := reg.Lookup("user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Tag != User || !user.Mutable {
		t.Errorf("unexpected user definition %+v", user)
	}

	cred, err := reg.Lookup("credential")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cred.Tag != Credential || cred.Mutable {
		t.Errorf("unexpected credential definition %+v", cred)
	}

	if len(reg.Definitions()) != 2 {
		t.Errorf("expected exactly 2 built-in types, got %d", len(reg.Definitions()))
	}
	if reg.Has(0xff) {
		t.Error("expected tag 0xff to be unregistered")
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	_, err := DefaultRegistry().Lookup("bob")
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Message != MsgUnknownObjectType {
		t.Errorf("expected %q, got %q", MsgUnknownObjectType, appErr.Message)
	}
}

func TestRegistry_ByTag(t *testing.T) {
	def, ok := DefaultRegistry().ByTag(Credential)
	if !ok || def.Name != "credential" {
		t.Errorf("expected credential, got %+v (ok=%v)", def, ok)
	}
	if _, ok := DefaultRegistry().ByTag(0x42); ok {
		t.Error("expected unregistered tag to miss")
	}
}

func TestRegistry_DefinitionsOrderedAndCopied(t *testing.T) {
	reg := MustRegistry(
		Definition{Name: "zeta", Tag: 0x30, Mutable: true},
		Definition{Name: "alpha", Tag: 0x05},
	)
	defs := reg.Definitions()
	if defs[0].Tag != 0x05 || defs[1].Tag != 0x30 {
		t.Errorf("expected definitions ordered by tag, got %+v", defs)
	}

	defs[0].Name = "mutated"
	if _, err := reg.Lookup("alpha"); err != nil {
		t.Error("expected registry to be unaffected by caller mutation")
	}
}

func TestNewRegistry_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		defs   []Definition
		substr string
	}{
		{"empty", nil, "types: at least one object type is required"},
		{"reserved tag", []Definition{{Name: "user", Tag: 0}}, "types[0].tag: is required"},
		{"missing name", []Definition{{Tag: 1}}, "types[0].name: is required"},
		{"bad name", []Definition{{Name: "Has Space", Tag: 1}}, "types[0].name: must start with a lowercase letter"},
		{"duplicate name", []Definition{{Name: "user", Tag: 1}, {Name: "user", Tag: 2}}, "types[1].name: duplicates types[0]"},
		{"duplicate tag", []Definition{{Name: "user", Tag: 1}, {Name: "credential", Tag: 1}}, "types[1].tag: duplicates types[0]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg, err := NewRegistry(tc.defs...)
			if err == nil {
				t.Fatalf("expected error, got registry %+v", reg)
			}
			if !errors.Is(err, errors.ErrCodeInvalidRequest) {
				t.Errorf("expected invalid_request, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("expected error to contain %q, got %q", tc.substr, err.Error())
			}
		})
	}
}

func TestMustRegistry_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustRegistry to panic on invalid input")
		}
	}()
	MustRegistry()
}
