package value

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/lualink/luabind"
)

// Value is one decoded stack value: a discriminant plus exactly one live
// payload field. Values never outlive the call they were decoded for.
type Value struct {
	s    string
	p    unsafe.Pointer
	i    int64
	f    float64
	kind Kind
	b    bool
}

// Decode reads the dynamic type tag at pos and extracts the matching payload.
// Unsupported tags (nil, table, function, ...) yield a KindInvalid value and
// a non-fatal diagnostic; no payload is carried in that case.
//
// The string payload is an owned copy: the runtime may invalidate its own
// text buffer at any later operation, so nothing decoded here aliases it.
func Decode(s luabind.Stack, pos int) Value {
	switch tag := s.TypeAt(pos); tag {
	case luabind.TypeBool:
		return Value{kind: KindBool, b: s.ToBoolean(pos)}

	case luabind.TypeNumber:
		if s.IsInteger(pos) {
			return Value{kind: KindInt, i: s.ToInteger(pos)}
		}
		return Value{kind: KindNumber, f: s.ToNumber(pos)}

	case luabind.TypeString:
		return Value{kind: KindString, s: s.ToString(pos)}

	case luabind.TypeUserdata, luabind.TypeLightUserdata:
		return Value{kind: KindUserdata, p: s.ToUserdata(pos)}

	default:
		Logger().Warn("value type not supported by binder",
			zap.Int("pos", pos),
			zap.String("type", tag.String()))
		return Value{kind: KindInvalid}
	}
}

// Kind returns the payload discriminant.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload.
func (v Value) Bool() bool {
	return v.b
}

// Int returns the integer payload. A floating-point payload is truncated
// toward zero; the binder accepts this narrowing silently.
func (v Value) Int() int64 {
	if v.kind == KindNumber {
		return int64(v.f)
	}
	return v.i
}

// Number returns the floating-point payload, widening an integer payload.
func (v Value) Number() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// Str returns the text payload.
func (v Value) Str() string {
	return v.s
}

// Userdata returns the raw address payload. The pointee carries no type
// information; callers reinterpret it under their own declared type.
func (v Value) Userdata() unsafe.Pointer {
	return v.p
}

// As extracts the payload as a concrete native type. T must be one of the
// supported primitive kinds or a pointer type; pointer types reinterpret the
// userdata address directly. Extraction with a mismatched non-numeric kind is
// a contract violation, prevented by validating the argument first.
func As[T any](v Value) T {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(v.Bool()).(T)
	case int:
		return any(int(v.Int())).(T)
	case int32:
		return any(int32(v.Int())).(T)
	case int64:
		return any(v.Int()).(T)
	case float32:
		return any(float32(v.Number())).(T)
	case float64:
		return any(v.Number()).(T)
	case string:
		return any(v.Str()).(T)
	case unsafe.Pointer:
		return any(v.p).(T)
	default:
		// Pointer parameter: the raw address is reinterpreted as T. A
		// pointer value is one word, so the conversion is a plain
		// re-tagging of the same bits.
		p := v.p
		return *(*T)(unsafe.Pointer(&p))
	}
}
