package luabind

import "unsafe"

// Type is the runtime's dynamic classification of one stack value.
type Type uint8

const (
	TypeNone Type = iota
	TypeNil
	TypeBool
	TypeNumber
	TypeString
	TypeUserdata
	TypeLightUserdata
	TypeTable
	TypeFunction
)

var typeNames = [...]string{
	TypeNone:          "none",
	TypeNil:           "nil",
	TypeBool:          "boolean",
	TypeNumber:        "number",
	TypeString:        "string",
	TypeUserdata:      "userdata",
	TypeLightUserdata: "lightuserdata",
	TypeTable:         "table",
	TypeFunction:      "function",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Stack is the embedding runtime's call-stack view handed to a trampoline.
// Positions are 1-based; position 1 is the first argument. Readers never
// mutate the stack, writers append exactly one value each.
type Stack interface {
	// Top returns the number of values on the stack.
	Top() int

	// TypeAt returns the dynamic type tag at pos, or TypeNone if pos is
	// out of range.
	TypeAt(pos int) Type

	IsBoolean(pos int) bool
	// IsInteger reports whether the value at pos is a number the runtime
	// stores with an integral representation. It is false for fractional
	// numbers even though IsNumber is true for both.
	IsInteger(pos int) bool
	IsNumber(pos int) bool
	IsString(pos int) bool
	IsUserdata(pos int) bool
	IsLightUserdata(pos int) bool

	ToBoolean(pos int) bool
	ToInteger(pos int) int64
	ToNumber(pos int) float64
	// ToString returns the text at pos. The returned string is owned by the
	// caller; implementations must not hand out storage the runtime can
	// invalidate later.
	ToString(pos int) string
	ToUserdata(pos int) unsafe.Pointer

	PushBoolean(v bool)
	PushInteger(v int64)
	PushNumber(v float64)
	PushString(v string)
	PushLightUserdata(p unsafe.Pointer)
}

// GoFunc is the shape the runtime's registration mechanism accepts: a native
// function invoked with the call stack, returning the number of results it
// pushed.
type GoFunc func(s Stack) int

// Registrar binds a GoFunc to a name visible to dynamic-language callers.
type Registrar interface {
	Register(name string, fn GoFunc) error
}
