// Package luabind builds native call trampolines for a Lua-style embedded
// scripting runtime.
//
// Given a Go function with a statically known signature, the library
// synthesizes a trampoline the runtime can invoke directly: the trampoline
// checks the dynamic caller's argument count, validates the dynamic type of
// every argument against the native parameter list, marshals the stack values
// into native Go values, calls the target function, and encodes its return
// value back onto the call stack.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct responsibilities:
//
//	luabind/       Root package with the Stack and Registrar boundary interfaces
//	├── value/     Dynamic value decoding and typed extraction
//	├── bind/      Validation, marshaling, result encoding, trampoline
//	│              construction and function registration
//	├── callstack/ Reference implementation of the Stack contract
//	└── errors/    Structured error types for debugging
//
// # Quick Start
//
// Build a trampoline and register it against any Stack implementation:
//
//	add := bind.Func2[int64](func(a, b int64) int64 { return a + b })
//
//	st := callstack.New()
//	st.Register("add", add)
//
//	st.PushInteger(2)
//	st.PushInteger(3)
//	if err := st.Call("add"); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(st.ToInteger(1)) // 5
//
// # Boundary Contract
//
// The embedding runtime is an external collaborator. It owns the call stack,
// the per-value type tags, and the registration mechanism; luabind only reads
// argument positions, pushes the documented number of results, and returns
// control. Text read from the stack is copied out before the trampoline
// returns, because the runtime may invalidate its own buffers afterward.
//
// # Thread Safety
//
// Trampolines are stateless and re-entrant: each invocation operates only on
// the Stack it is handed. The Registry is safe for concurrent registration.
package luabind
