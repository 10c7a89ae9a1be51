package objectid

import (
	"strings"
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Hash != string(HashBlake2b) {
		t.Errorf("expected default hash blake2b, got %q", cfg.Hash)
	}
	if len(cfg.Types) != 2 {
		t.Fatalf("expected built-in types, got %+v", cfg.Types)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestConfig_KeepsConfiguredTypes(t *testing.T) {
	cfg := Config{Types: []Definition{{Name: "session", Tag: 9, Mutable: true}}}
	cfg.ApplyDefaults()
	if len(cfg.Types) != 1 || cfg.Types[0].Name != "session" {
		t.Errorf("expected configured types to be kept, got %+v", cfg.Types)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		substr string
	}{
		{"bad hash", Config{Hash: "md5", Types: DefaultRegistry().Definitions()}, "hash: must be one of"},
		{"no types", Config{Hash: "blake2b"}, "at least one object type"},
		{"duplicate tag", Config{Hash: "blake2b", Types: []Definition{{Name: "a", Tag: 1}, {Name: "b", Tag: 1}}}, "duplicates"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("expected error containing %q, got %q", tc.substr, err.Error())
			}
		})
	}
}

func TestConfig_Build(t *testing.T) {
	cfg := Config{
		Hash: string(HashSHA256),
		Types: []Definition{
			{Name: "user", Tag: 1, Mutable: true},
			{Name: "document", Tag: 0x20},
		},
	}

	codec, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if codec.Hash() != HashSHA256 {
		t.Errorf("expected sha2-256, got %s", codec.Hash())
	}

	id, err := codec.MintContent("document", []byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	name, err := codec.TypeOf(id)
	if err != nil || name != "document" {
		t.Errorf("expected document, got %q (%v)", name, err)
	}

	if _, err := (&Config{Hash: "nope"}).Build(); err == nil {
		t.Error("expected Build to fail on invalid config")
	}
}
