// Package errors provides structured error types for the luabind library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes Go/Lua type names and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindTypeMismatch).
//		GoType("int64").
//		LuaType("string").
//		Detail("argument 2 is not an integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ArityMismatch(3, 2)
//	err := errors.TypeMismatch(errors.PhaseValidate, 2, "int64", "string")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
