package bind

import (
	"fmt"
	"reflect"
	"unsafe"

	"go.uber.org/zap"

	"github.com/lualink/luabind"
	"github.com/lualink/luabind/errors"
	"github.com/lualink/luabind/value"
)

type argClass uint8

const (
	classBool argClass = iota
	classInt
	classNumber
	classString
	classPointer
)

// wrapParam is one parameter of a reflect-wrapped function: its Go type and
// the marshaling class derived from it at registration time.
type wrapParam struct {
	typ   reflect.Type
	class argClass
}

func classify(t reflect.Type) (argClass, error) {
	switch t.Kind() {
	case reflect.Bool:
		return classBool, nil
	case reflect.Int, reflect.Int32, reflect.Int64:
		return classInt, nil
	case reflect.Float32, reflect.Float64:
		return classNumber, nil
	case reflect.String:
		return classString, nil
	case reflect.Pointer, reflect.UnsafePointer:
		return classPointer, nil
	default:
		return 0, errors.Unsupported(errors.PhaseRegister, "type "+t.String())
	}
}

func (p wrapParam) check(s luabind.Stack, pos int) bool {
	switch p.class {
	case classBool:
		return s.IsBoolean(pos)
	case classInt:
		return s.IsInteger(pos)
	case classNumber:
		return s.IsNumber(pos)
	case classString:
		return s.IsString(pos)
	default:
		return s.IsUserdata(pos) || s.IsLightUserdata(pos)
	}
}

// pop marshals the validated value at pos into a reflect.Value of the
// parameter's type. Same precondition as popArg: the position has been
// checked already.
func (p wrapParam) pop(s luabind.Stack, pos int) reflect.Value {
	v := value.Decode(s, pos)
	rv := reflect.New(p.typ).Elem()
	switch p.class {
	case classBool:
		rv.SetBool(v.Bool())
	case classInt:
		rv.SetInt(v.Int())
	case classNumber:
		rv.SetFloat(v.Number())
	case classString:
		rv.SetString(v.Str())
	default:
		// Any pointer-kind type, unsafe.Pointer included, is one word: the
		// raw address reinterpreted under the declared type.
		raw := v.Userdata()
		rv = reflect.NewAt(p.typ, unsafe.Pointer(&raw)).Elem()
	}
	return rv
}

func encodeResult(s luabind.Stack, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Bool:
		s.PushBoolean(rv.Bool())
	case reflect.Int, reflect.Int32, reflect.Int64:
		s.PushInteger(rv.Int())
	case reflect.Float32, reflect.Float64:
		s.PushNumber(rv.Float())
	case reflect.String:
		s.PushString(rv.String())
	case reflect.Pointer, reflect.UnsafePointer:
		s.PushLightUserdata(rv.UnsafePointer())
	}
}

// Wrap builds a trampoline from any function signature within the supported
// type set, at any arity. The signature is compiled into a parameter
// descriptor array once, here; each call loops over the descriptors and
// invokes the target through reflection. Prefer the FuncN/VoidN constructors
// when the signature is known at the call site.
func Wrap(fn any) (luabind.GoFunc, error) {
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func {
		return nil, errors.New(errors.PhaseRegister, errors.KindInvalidInput).
			GoType(fmt.Sprintf("%T", fn)).
			Detail("handler must be a function").
			Build()
	}

	rt := rv.Type()
	if rt.IsVariadic() {
		return nil, errors.Unsupported(errors.PhaseRegister, "variadic functions")
	}
	if rt.NumOut() > 1 {
		return nil, errors.Unsupported(errors.PhaseRegister, "multiple return values")
	}

	params := make([]wrapParam, rt.NumIn())
	for i := range params {
		t := rt.In(i)
		class, err := classify(t)
		if err != nil {
			return nil, errors.New(errors.PhaseRegister, errors.KindUnsupported).
				GoType(t.String()).
				Detail("parameter %d", i+1).
				Build()
		}
		params[i] = wrapParam{typ: t, class: class}
	}

	hasResult := rt.NumOut() == 1
	if hasResult {
		t := rt.Out(0)
		if _, err := classify(t); err != nil {
			return nil, errors.New(errors.PhaseRegister, errors.KindUnsupported).
				GoType(t.String()).
				Detail("return value").
				Build()
		}
	}

	return func(s luabind.Stack) int {
		if top := s.Top(); top != len(params) {
			Logger().Warn("incorrect argument count",
				zap.Error(errors.ArityMismatch(len(params), top)))
			return 0
		}
		for i := range params {
			pos := i + 1
			if !params[i].check(s, pos) {
				Logger().Warn("incorrect argument type",
					zap.Error(errors.TypeMismatch(errors.PhaseValidate, pos,
						params[i].typ.String(), s.TypeAt(pos).String())))
				return 0
			}
		}

		args := make([]reflect.Value, len(params))
		for i := range params {
			args[i] = params[i].pop(s, i+1)
		}

		out := rv.Call(args)
		if hasResult {
			encodeResult(s, out[0])
			return 1
		}
		return 0
	}, nil
}
