// Package callstack provides a reference implementation of the luabind.Stack
// contract.
//
// The test suite runs trampolines against it, and embeddings without a real
// scripting runtime can use it directly. It follows Lua 5.3 semantics where
// the contract leaves room: numbers carry an integral flag, out-of-range
// reads return zero values and TypeNone, and ToString hands out strings the
// caller owns.
package callstack
