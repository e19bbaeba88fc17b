package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

const (
	// separatorChar joins the three parts of a Ref's string form.
	separatorChar = ":"
	// expectedParts is the number of colon-separated segments a Ref string has.
	expectedParts = 3
)

// Ref identifies a definition or a boost/status source unambiguously: a stat
// block, a status, a passive, an action resource, or the (kind, id)
// attribution a BoostInstance carries back to whatever installed it.
type Ref struct {
	// Module identifies the namespace that defined this Ref ("ddrc", "status", "passive", ...).
	Module string `json:"module"`

	// Type categorizes the identifier ("statblock", "status", "passive", "resource", "event", ...).
	Type string `json:"type"`

	// Value is the unique identifier within Module/Type.
	Value string `json:"value"`
}

// String returns the full identifier as module:type:value.
func (r *Ref) String() string {
	return fmt.Sprintf("%s%s%s%s%s", r.Module, separatorChar, r.Type, separatorChar, r.Value)
}

// Equals checks if two refs are the same, nil-safe.
func (r *Ref) Equals(other *Ref) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Module == other.Module && r.Type == other.Type && r.Value == other.Value
}

// IsValid checks if the ref has all required, well-formed fields.
func (r *Ref) IsValid() error {
	return r.validate()
}

func (r *Ref) validate() error {
	if r.Module == "" {
		return fmt.Errorf("%w: module", ErrEmptyComponent)
	}
	if r.Type == "" {
		return fmt.Errorf("%w: type", ErrEmptyComponent)
	}
	if r.Value == "" {
		return fmt.Errorf("%w: value", ErrEmptyComponent)
	}
	if !isValidIdentifierPart(r.Module) {
		return fmt.Errorf("%w: module %q", ErrInvalidCharacters, r.Module)
	}
	if !isValidIdentifierPart(r.Type) {
		return fmt.Errorf("%w: type %q", ErrInvalidCharacters, r.Type)
	}
	if !isValidIdentifierPart(r.Value) {
		return fmt.Errorf("%w: value %q", ErrInvalidCharacters, r.Value)
	}
	return nil
}

func isValidIdentifierPart(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' && c != '-' {
			return false
		}
	}
	return true
}

// ParseString parses a "module:type:value" string into a Ref.
func ParseString(s string) (*Ref, error) {
	if s == "" {
		return nil, fmt.Errorf("core: parse ref: %w", ErrEmptyComponent)
	}
	segments := strings.Split(s, separatorChar)
	if len(segments) != expectedParts {
		return nil, fmt.Errorf("core: parse ref %q: %w: expected %d segments, got %d",
			s, ErrWrongSegmentCount, expectedParts, len(segments))
	}
	r := &Ref{Module: segments[0], Type: segments[1], Value: segments[2]}
	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("core: parse ref %q: %w", s, err)
	}
	return r, nil
}

// RefInput provides a structured way to create a Ref with named fields.
type RefInput struct {
	Module string
	Type   string
	Value  string
}

// NewRef creates a new Ref, validating all fields are present and well-formed.
func NewRef(input RefInput) (*Ref, error) {
	r := &Ref{Module: input.Module, Type: input.Type, Value: input.Value}
	if err := r.IsValid(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNewRef creates a new Ref, panicking on validation error.
// Use this for package-level constants where the values are known-valid.
func MustNewRef(input RefInput) *Ref {
	r, err := NewRef(input)
	if err != nil {
		panic(fmt.Sprintf("core: invalid ref: %v", err))
	}
	return r
}

// MarshalJSON implements json.Marshaler, storing the ref as its compact string form.
func (r *Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Ref) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseString(str)
	if err != nil {
		return fmt.Errorf("core: unmarshal ref: %w", err)
	}
	*r = *parsed
	return nil
}
