package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // stack value to tagged Value
	PhaseValidate Phase = "validate" // argument type checking
	PhaseMarshal  Phase = "marshal"  // tagged Value to native Go value
	PhaseEncode   Phase = "encode"   // native result to stack
	PhaseCall     Phase = "call"     // dispatching a bound function
	PhaseRegister Phase = "register" // function registration
)

// Kind categorizes the error
type Kind string

const (
	KindArityMismatch Kind = "arity_mismatch"
	KindTypeMismatch  Kind = "type_mismatch"
	KindUnsupported   Kind = "unsupported"
	KindInvalidInput  Kind = "invalid_input"
	KindRegistration  Kind = "registration"
	KindNotFound      Kind = "not_found"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	GoType  string
	LuaType string
	Detail  string
	Pos     int // argument position, 0 when not positional
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Pos > 0 {
		fmt.Fprintf(&b, " at argument %d", e.Pos)
	}

	if e.GoType != "" || e.LuaType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.LuaType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", Lua type ")
			b.WriteString(e.LuaType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("Lua type ")
			b.WriteString(e.LuaType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.LuaType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Pos sets the argument position
func (b *Builder) Pos(pos int) *Builder {
	b.err.Pos = pos
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// LuaType sets the dynamic type name
func (b *Builder) LuaType(t string) *Builder {
	b.err.LuaType = t
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ArityMismatch reports a call with the wrong number of arguments
func ArityMismatch(want, got int) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindArityMismatch,
		Detail: fmt.Sprintf("expected %d argument(s), got %d", want, got),
	}
}

// TypeMismatch reports an argument whose dynamic type has no mapping to the
// declared native parameter type
func TypeMismatch(phase Phase, pos int, goType, luaType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindTypeMismatch,
		Pos:     pos,
		GoType:  goType,
		LuaType: luaType,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Registration creates a registration error
func Registration(namespace, name string, cause error) *Error {
	detail := name
	if namespace != "" {
		detail = namespace + "." + name
	}
	return &Error{
		Phase:  PhaseRegister,
		Kind:   KindRegistration,
		Detail: "register " + detail,
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}
