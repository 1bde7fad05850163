// Package secret holds sensitive field values. A secret exposes its raw
// content only through an explicit accessor; String, fmt verbs, and every
// serialization path see the obscured form instead, so secrets cannot leak
// into logs or encoded payloads by accident.
package secret

// Obscured is the replacement emitted wherever a secret would otherwise be
// printed or serialized.
const Obscured = "******"

// Str wraps a secret string value.
type Str struct {
	value string
}

// NewStr wraps a raw string as a secret.
func NewStr(value string) Str {
	return Str{value: value}
}

// Secret returns the raw value.
func (s Str) Secret() string {
	return s.value
}

// String implements fmt.Stringer and returns the obscured form.
func (s Str) String() string {
	return Obscured
}

// GoString keeps %#v output obscured as well.
func (s Str) GoString() string {
	return "secret.Str(" + Obscured + ")"
}

// Bytes wraps a secret byte slice.
type Bytes struct {
	value []byte
}

// NewBytes wraps raw bytes as a secret. The slice is copied so later caller
// mutations cannot alter the stored secret.
func NewBytes(value []byte) Bytes {
	copied := make([]byte, len(value))
	copy(copied, value)
	return Bytes{value: copied}
}

// Secret returns a copy of the raw bytes.
func (b Bytes) Secret() []byte {
	copied := make([]byte, len(b.value))
	copy(copied, b.value)
	return copied
}

// String implements fmt.Stringer and returns the obscured form.
func (b Bytes) String() string {
	return Obscured
}

// GoString keeps %#v output obscured as well.
func (b Bytes) GoString() string {
	return "secret.Bytes(" + Obscured + ")"
}
