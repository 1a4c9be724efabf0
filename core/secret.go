package core

// Secret holds a credential such as an API key. Formatting, JSON and text
// marshaling all yield a redacted placeholder; only Expose returns the value.
//
//	key := NewSecret("sk-abc123")
//	fmt.Println(key)   // [REDACTED]
//	key.Expose()       // "sk-abc123"
type Secret struct {
	value string
}

// NewSecret wraps value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	return "[REDACTED]"
}

// GoString implements fmt.GoStringer for %#v.
func (s Secret) GoString() string {
	return "core.Secret{[REDACTED]}"
}

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"[REDACTED]"`), nil
}

// MarshalText implements encoding.TextMarshaler, which also covers YAML.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte("[REDACTED]"), nil
}

// Expose returns the raw value. Only call it where the value must leave the
// process, e.g. when setting the Authorization header.
func (s Secret) Expose() string {
	return s.value
}

// IsEmpty reports whether no value is set.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}
