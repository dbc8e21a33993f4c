// Package bind constructs trampolines that let a dynamically-typed runtime
// call statically-typed Go functions.
//
// A trampoline runs a fixed sequence per invocation: arity check, per-argument
// type validation, marshal of the dynamic values into native arguments, the
// native call, and encoding of the result back onto the stack. Validation and
// marshaling are selected per parameter type at trampoline construction; the
// call path itself never consults reflection for the FuncN/VoidN constructors.
//
// Two construction styles are available:
//
//   - FuncN / VoidN: generic, one constructor per arity, fully typed. The
//     parameter types are fixed at the call site and vetted once when the
//     trampoline is built.
//   - Wrap: reflect-driven, any arity. The signature is inspected at
//     registration time into a parameter descriptor array, traded against the
//     compile-time safety of the generic constructors.
//
// Failed calls never reach the target function. An arity or type mismatch
// emits a diagnostic through the package logger and reports zero results to
// the runtime; that is the whole error contract at the call boundary.
package bind
