// Package codec turns model instances into bytes and back. All three wire
// formats (JSON, YAML, Msgpack) share one structural contract: an instance
// serializes to a mapping of field name to value in declaration order, nested
// instances expanded recursively the same way. The formats differ only in
// byte encoding.
//
// Times serialize as RFC 3339 strings, UUIDs as canonical strings, and
// secrets always as the obscured form. Raw bytes use each format's native
// representation (base64 in JSON, !!binary in YAML, bin in Msgpack).
package codec

import (
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-spectic/pkg/secret"
)

// wireScalar rewrites values the byte encoders cannot express natively.
func wireScalar(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case uuid.UUID:
		return val.String()
	case secret.Str:
		return secret.Obscured
	case secret.Bytes:
		return secret.Obscured
	default:
		return v
	}
}
