package value_test

import (
	"testing"
	"unsafe"

	"github.com/lualink/luabind/callstack"
	"github.com/lualink/luabind/value"
)

func TestDecodeKinds(t *testing.T) {
	var target int
	st := callstack.New()
	st.PushBoolean(true)
	st.PushInteger(42)
	st.PushNumber(2.5)
	st.PushString("hello")
	st.PushLightUserdata(unsafe.Pointer(&target))
	st.PushUserdata(unsafe.Pointer(&target))
	st.PushNil()
	st.PushTable()

	tests := []struct {
		name string
		pos  int
		want value.Kind
	}{
		{"boolean", 1, value.KindBool},
		{"integer", 2, value.KindInt},
		{"fractional number", 3, value.KindNumber},
		{"string", 4, value.KindString},
		{"light userdata", 5, value.KindUserdata},
		{"heavy userdata", 6, value.KindUserdata},
		{"nil is unsupported", 7, value.KindInvalid},
		{"table is unsupported", 8, value.KindInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := value.Decode(st, tc.pos).Kind(); got != tc.want {
				t.Errorf("Decode(%d).Kind() = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestDecodePayloads(t *testing.T) {
	var target int
	st := callstack.New()
	st.PushBoolean(true)
	st.PushInteger(-7)
	st.PushNumber(3.25)
	st.PushString("payload")
	st.PushLightUserdata(unsafe.Pointer(&target))

	if got := value.Decode(st, 1).Bool(); got != true {
		t.Errorf("Bool() = %v, want true", got)
	}
	if got := value.Decode(st, 2).Int(); got != -7 {
		t.Errorf("Int() = %d, want -7", got)
	}
	if got := value.Decode(st, 3).Number(); got != 3.25 {
		t.Errorf("Number() = %v, want 3.25", got)
	}
	if got := value.Decode(st, 4).Str(); got != "payload" {
		t.Errorf("Str() = %q, want %q", got, "payload")
	}
	if got := value.Decode(st, 5).Userdata(); got != unsafe.Pointer(&target) {
		t.Errorf("Userdata() = %p, want %p", got, unsafe.Pointer(&target))
	}
}

// Decoding each position must be independent of its neighbors.
func TestDecodeIndependentPositions(t *testing.T) {
	st := callstack.New()
	st.PushString("left")
	st.PushInteger(1)
	st.PushString("right")

	if got := value.Decode(st, 1).Str(); got != "left" {
		t.Errorf("pos 1 = %q, want %q", got, "left")
	}
	if got := value.Decode(st, 3).Str(); got != "right" {
		t.Errorf("pos 3 = %q, want %q", got, "right")
	}
	if got := value.Decode(st, 2).Int(); got != 1 {
		t.Errorf("pos 2 = %d, want 1", got)
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	st := callstack.New()
	if got := value.Decode(st, 1).Kind(); got != value.KindInvalid {
		t.Errorf("decoding empty stack: Kind() = %v, want KindInvalid", got)
	}
}

// A fractional number extracted as an integer truncates; an integer extracted
// as a float widens. Both directions are accepted silently.
func TestNumericLeniency(t *testing.T) {
	st := callstack.New()
	st.PushNumber(3.7)
	st.PushInteger(5)
	st.PushNumber(-3.7)

	if got := value.As[int64](value.Decode(st, 1)); got != 3 {
		t.Errorf("As[int64](3.7) = %d, want 3", got)
	}
	if got := value.As[int](value.Decode(st, 1)); got != 3 {
		t.Errorf("As[int](3.7) = %d, want 3", got)
	}
	if got := value.As[float64](value.Decode(st, 2)); got != 5.0 {
		t.Errorf("As[float64](5) = %v, want 5.0", got)
	}
	if got := value.As[float32](value.Decode(st, 2)); got != 5.0 {
		t.Errorf("As[float32](5) = %v, want 5.0", got)
	}
	if got := value.As[int64](value.Decode(st, 3)); got != -3 {
		t.Errorf("As[int64](-3.7) = %d, want -3 (truncation toward zero)", got)
	}
}

func TestAsDirectPayloads(t *testing.T) {
	target := 99
	st := callstack.New()
	st.PushBoolean(true)
	st.PushString("text")
	st.PushLightUserdata(unsafe.Pointer(&target))

	if got := value.As[bool](value.Decode(st, 1)); !got {
		t.Error("As[bool] = false, want true")
	}
	if got := value.As[string](value.Decode(st, 2)); got != "text" {
		t.Errorf("As[string] = %q, want %q", got, "text")
	}
	if got := value.As[unsafe.Pointer](value.Decode(st, 3)); got != unsafe.Pointer(&target) {
		t.Errorf("As[unsafe.Pointer] = %p, want %p", got, &target)
	}
}

// Opaque handles reinterpret to the caller's declared pointer type with the
// address unchanged.
func TestAsPointerReinterpretation(t *testing.T) {
	type widget struct{ id int }
	w := widget{id: 7}

	st := callstack.New()
	st.PushLightUserdata(unsafe.Pointer(&w))

	got := value.As[*widget](value.Decode(st, 1))
	if got != &w {
		t.Fatalf("As[*widget] = %p, want %p", got, &w)
	}
	if got.id != 7 {
		t.Errorf("pointee id = %d, want 7", got.id)
	}
}

// Round-trip: push a native value, decode the same position, extract.
func TestRoundTrip(t *testing.T) {
	st := callstack.New()
	st.PushBoolean(true)
	st.PushInteger(-123456789)
	st.PushNumber(6.5)
	st.PushString("round trip")

	if got := value.As[bool](value.Decode(st, 1)); got != true {
		t.Errorf("bool round trip = %v", got)
	}
	if got := value.As[int64](value.Decode(st, 2)); got != -123456789 {
		t.Errorf("int round trip = %d", got)
	}
	if got := value.As[float64](value.Decode(st, 3)); got != 6.5 {
		t.Errorf("number round trip = %v", got)
	}
	if got := value.As[string](value.Decode(st, 4)); got != "round trip" {
		t.Errorf("string round trip = %q", got)
	}
}
