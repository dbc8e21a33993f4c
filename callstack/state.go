package callstack

import (
	"unsafe"

	"github.com/lualink/luabind"
	"github.com/lualink/luabind/errors"
)

type slot struct {
	s        string
	p        unsafe.Pointer
	f        float64
	i        int64
	typ      luabind.Type
	integral bool
	b        bool
}

// State is a growable call stack plus a name-to-function table. It implements
// luabind.Stack and luabind.Registrar. Not safe for concurrent use; like a
// real runtime's state, one goroutine drives it at a time.
type State struct {
	funcs map[string]luabind.GoFunc
	vals  []slot
}

func New() *State {
	return &State{
		funcs: make(map[string]luabind.GoFunc),
	}
}

// Top returns the number of values on the stack.
func (st *State) Top() int {
	return len(st.vals)
}

// TypeAt returns the type tag at pos, or TypeNone when pos is out of range.
func (st *State) TypeAt(pos int) luabind.Type {
	if s, ok := st.at(pos); ok {
		return s.typ
	}
	return luabind.TypeNone
}

func (st *State) at(pos int) (*slot, bool) {
	if pos < 1 || pos > len(st.vals) {
		return nil, false
	}
	return &st.vals[pos-1], true
}

func (st *State) IsBoolean(pos int) bool {
	return st.TypeAt(pos) == luabind.TypeBool
}

// IsInteger reports whether pos holds a number with an integral
// representation. Fractional numbers answer false.
func (st *State) IsInteger(pos int) bool {
	s, ok := st.at(pos)
	return ok && s.typ == luabind.TypeNumber && s.integral
}

func (st *State) IsNumber(pos int) bool {
	return st.TypeAt(pos) == luabind.TypeNumber
}

func (st *State) IsString(pos int) bool {
	return st.TypeAt(pos) == luabind.TypeString
}

func (st *State) IsUserdata(pos int) bool {
	return st.TypeAt(pos) == luabind.TypeUserdata
}

func (st *State) IsLightUserdata(pos int) bool {
	return st.TypeAt(pos) == luabind.TypeLightUserdata
}

func (st *State) ToBoolean(pos int) bool {
	if s, ok := st.at(pos); ok && s.typ == luabind.TypeBool {
		return s.b
	}
	return false
}

// ToInteger returns the integer at pos, or 0 when the value is not an
// integral number.
func (st *State) ToInteger(pos int) int64 {
	if s, ok := st.at(pos); ok && s.typ == luabind.TypeNumber && s.integral {
		return s.i
	}
	return 0
}

func (st *State) ToNumber(pos int) float64 {
	s, ok := st.at(pos)
	if !ok || s.typ != luabind.TypeNumber {
		return 0
	}
	if s.integral {
		return float64(s.i)
	}
	return s.f
}

func (st *State) ToString(pos int) string {
	if s, ok := st.at(pos); ok && s.typ == luabind.TypeString {
		return s.s
	}
	return ""
}

func (st *State) ToUserdata(pos int) unsafe.Pointer {
	if s, ok := st.at(pos); ok &&
		(s.typ == luabind.TypeUserdata || s.typ == luabind.TypeLightUserdata) {
		return s.p
	}
	return nil
}

func (st *State) PushBoolean(v bool) {
	st.vals = append(st.vals, slot{typ: luabind.TypeBool, b: v})
}

func (st *State) PushInteger(v int64) {
	st.vals = append(st.vals, slot{typ: luabind.TypeNumber, i: v, integral: true})
}

func (st *State) PushNumber(v float64) {
	st.vals = append(st.vals, slot{typ: luabind.TypeNumber, f: v})
}

func (st *State) PushString(v string) {
	st.vals = append(st.vals, slot{typ: luabind.TypeString, s: v})
}

func (st *State) PushLightUserdata(p unsafe.Pointer) {
	st.vals = append(st.vals, slot{typ: luabind.TypeLightUserdata, p: p})
}

// PushUserdata pushes a heavy userdata slot carrying the same raw address a
// light userdata would.
func (st *State) PushUserdata(p unsafe.Pointer) {
	st.vals = append(st.vals, slot{typ: luabind.TypeUserdata, p: p})
}

// PushNil pushes a nil slot. The binder has no native mapping for it; tests
// use it to exercise the unsupported-kind path.
func (st *State) PushNil() {
	st.vals = append(st.vals, slot{typ: luabind.TypeNil})
}

// PushTable pushes a table marker slot, another unsupported kind.
func (st *State) PushTable() {
	st.vals = append(st.vals, slot{typ: luabind.TypeTable})
}

// SetTop truncates or nil-extends the stack to n values.
func (st *State) SetTop(n int) {
	if n < 0 {
		n = 0
	}
	for len(st.vals) < n {
		st.PushNil()
	}
	st.vals = st.vals[:n]
}

// Reset clears the stack, keeping registered functions.
func (st *State) Reset() {
	st.vals = st.vals[:0]
}

// Register binds fn to name. Registering an existing name replaces it.
func (st *State) Register(name string, fn luabind.GoFunc) error {
	if name == "" {
		return errors.InvalidInput(errors.PhaseRegister, "function name cannot be empty")
	}
	if fn == nil {
		return errors.InvalidInput(errors.PhaseRegister, "function cannot be nil")
	}
	st.funcs[name] = fn
	return nil
}

// Call invokes the function registered under name with the current stack
// contents as its arguments. On return the arguments are consumed and only
// the function's results remain, bottom-aligned, as in a real runtime.
//
// The trampoline contract is enforced: the reported result count must equal
// the number of values actually pushed.
func (st *State) Call(name string) error {
	fn, ok := st.funcs[name]
	if !ok {
		return errors.NotFound(errors.PhaseCall, "function", name)
	}

	argc := len(st.vals)
	nres := fn(st)

	pushed := len(st.vals) - argc
	if pushed < 0 {
		return errors.InvalidInput(errors.PhaseCall, "function mutated its arguments")
	}
	if nres != pushed {
		return errors.New(errors.PhaseCall, errors.KindInvalidInput).
			Detail("reported %d result(s) but pushed %d", nres, pushed).
			Build()
	}

	st.vals = append(st.vals[:0], st.vals[argc:]...)
	return nil
}
