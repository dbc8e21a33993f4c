package bind

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/lualink/luabind"
	"github.com/lualink/luabind/value"
)

// checkArg reports whether the dynamic value at pos can marshal into T. Each
// primitive kind must match the stack's own predicate for that kind; integers
// and floats are told apart by the runtime's integral flag, not by "is a
// number". Every other T is a pointer parameter, satisfied by heavy or light
// userdata.
func checkArg[T any](s luabind.Stack, pos int) bool {
	var zero T
	switch any(zero).(type) {
	case bool:
		return s.IsBoolean(pos)
	case int, int32, int64:
		return s.IsInteger(pos)
	case float32, float64:
		return s.IsNumber(pos)
	case string:
		return s.IsString(pos)
	default:
		return s.IsUserdata(pos) || s.IsLightUserdata(pos)
	}
}

// popArg marshals the validated value at pos into T. It performs no
// re-validation; calling it on an unchecked position is a contract violation.
func popArg[T any](s luabind.Stack, pos int) T {
	return value.As[T](value.Decode(s, pos))
}

// pushResult encodes one native result onto the stack: exactly one push.
// Pointer results travel as light userdata.
func pushResult[T any](s luabind.Stack, r T) {
	switch v := any(r).(type) {
	case bool:
		s.PushBoolean(v)
	case int:
		s.PushInteger(int64(v))
	case int32:
		s.PushInteger(int64(v))
	case int64:
		s.PushInteger(v)
	case float32:
		s.PushNumber(float64(v))
	case float64:
		s.PushNumber(v)
	case string:
		s.PushString(v)
	case unsafe.Pointer:
		s.PushLightUserdata(v)
	default:
		s.PushLightUserdata(*(*unsafe.Pointer)(unsafe.Pointer(&r)))
	}
}

// paramSpec is one parameter's compiled shape: its check predicate plus the
// Go type name for diagnostics.
type paramSpec struct {
	check func(s luabind.Stack, pos int) bool
	name  string
}

// param compiles the type parameter T into a paramSpec, panicking at
// construction time if T is outside the supported set.
func param[T any]() paramSpec {
	vet[T]("parameter")
	return paramSpec{
		check: checkArg[T],
		name:  reflect.TypeFor[T]().String(),
	}
}

// vet panics unless T is a supported primitive or pointer type. It runs once
// per trampoline construction, never on the call path.
func vet[T any](role string) {
	var zero T
	switch any(zero).(type) {
	case bool, int, int32, int64, float32, float64, string, unsafe.Pointer:
		return
	}
	if k := reflect.TypeFor[T]().Kind(); k != reflect.Pointer {
		panic(fmt.Sprintf("luabind: unsupported %s type %s", role, reflect.TypeFor[T]()))
	}
}
