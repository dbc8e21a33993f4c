package bind

import (
	"go.uber.org/zap"

	"github.com/lualink/luabind"
	"github.com/lualink/luabind/errors"
)

// enter runs the pre-call gate: arity check, then left-to-right validation
// stopping at the first mismatch. A false return means the target must not be
// invoked and the trampoline reports zero results. Failures surface only as
// diagnostics; the logged error carries the structured detail.
func enter(s luabind.Stack, params []paramSpec) bool {
	if top := s.Top(); top != len(params) {
		Logger().Warn("incorrect argument count",
			zap.Error(errors.ArityMismatch(len(params), top)))
		return false
	}
	for i := range params {
		pos := i + 1
		if !params[i].check(s, pos) {
			Logger().Warn("incorrect argument type",
				zap.Error(errors.TypeMismatch(errors.PhaseValidate, pos,
					params[i].name, s.TypeAt(pos).String())))
			return false
		}
	}
	return true
}

// Func0 builds a trampoline for a niladic function returning R.
func Func0[R any](fn func() R) luabind.GoFunc {
	vet[R]("return")
	return func(s luabind.Stack) int {
		if !enter(s, nil) {
			return 0
		}
		pushResult(s, fn())
		return 1
	}
}

// Func1 builds a trampoline for a one-argument function returning R.
func Func1[R, A1 any](fn func(A1) R) luabind.GoFunc {
	vet[R]("return")
	params := []paramSpec{param[A1]()}
	return func(s luabind.Stack) int {
		if !enter(s, params) {
			return 0
		}
		pushResult(s, fn(popArg[A1](s, 1)))
		return 1
	}
}

// Func2 builds a trampoline for a two-argument function returning R.
func Func2[R, A1, A2 any](fn func(A1, A2) R) luabind.GoFunc {
	vet[R]("return")
	params := []paramSpec{param[A1](), param[A2]()}
	return func(s luabind.Stack) int {
		if !enter(s, params) {
			return 0
		}
		pushResult(s, fn(popArg[A1](s, 1), popArg[A2](s, 2)))
		return 1
	}
}

// Func3 builds a trampoline for a three-argument function returning R.
func Func3[R, A1, A2, A3 any](fn func(A1, A2, A3) R) luabind.GoFunc {
	vet[R]("return")
	params := []paramSpec{param[A1](), param[A2](), param[A3]()}
	return func(s luabind.Stack) int {
		if !enter(s, params) {
			return 0
		}
		pushResult(s, fn(popArg[A1](s, 1), popArg[A2](s, 2), popArg[A3](s, 3)))
		return 1
	}
}

// Func4 builds a trampoline for a four-argument function returning R.
func Func4[R, A1, A2, A3, A4 any](fn func(A1, A2, A3, A4) R) luabind.GoFunc {
	vet[R]("return")
	params := []paramSpec{param[A1](), param[A2](), param[A3](), param[A4]()}
	return func(s luabind.Stack) int {
		if !enter(s, params) {
			return 0
		}
		pushResult(s, fn(
			popArg[A1](s, 1), popArg[A2](s, 2),
			popArg[A3](s, 3), popArg[A4](s, 4)))
		return 1
	}
}

// Func5 builds a trampoline for a five-argument function returning R.
func Func5[R, A1, A2, A3, A4, A5 any](fn func(A1, A2, A3, A4, A5) R) luabind.GoFunc {
	vet[R]("return")
	params := []paramSpec{param[A1](), param[A2](), param[A3](), param[A4](), param[A5]()}
	return func(s luabind.Stack) int {
		if !enter(s, params) {
			return 0
		}
		pushResult(s, fn(
			popArg[A1](s, 1), popArg[A2](s, 2), popArg[A3](s, 3),
			popArg[A4](s, 4), popArg[A5](s, 5)))
		return 1
	}
}

// Void0 builds a trampoline for a niladic function with no return value.
func Void0(fn func()) luabind.GoFunc {
	return func(s luabind.Stack) int {
		if !enter(s, nil) {
			return 0
		}
		fn()
		return 0
	}
}

// Void1 builds a trampoline for a one-argument function with no return value.
func Void1[A1 any](fn func(A1)) luabind.GoFunc {
	params := []paramSpec{param[A1]()}
	return func(s luabind.Stack) int {
		if !enter(s, params) {
			return 0
		}
		fn(popArg[A1](s, 1))
		return 0
	}
}

// Void2 builds a trampoline for a two-argument function with no return value.
func Void2[A1, A2 any](fn func(A1, A2)) luabind.GoFunc {
	params := []paramSpec{param[A1](), param[A2]()}
	return func(s luabind.Stack) int {
		if !enter(s, params) {
			return 0
		}
		fn(popArg[A1](s, 1), popArg[A2](s, 2))
		return 0
	}
}

// Void3 builds a trampoline for a three-argument function with no return value.
func Void3[A1, A2, A3 any](fn func(A1, A2, A3)) luabind.GoFunc {
	params := []paramSpec{param[A1](), param[A2](), param[A3]()}
	return func(s luabind.Stack) int {
		if !enter(s, params) {
			return 0
		}
		fn(popArg[A1](s, 1), popArg[A2](s, 2), popArg[A3](s, 3))
		return 0
	}
}

// Void4 builds a trampoline for a four-argument function with no return value.
func Void4[A1, A2, A3, A4 any](fn func(A1, A2, A3, A4)) luabind.GoFunc {
	params := []paramSpec{param[A1](), param[A2](), param[A3](), param[A4]()}
	return func(s luabind.Stack) int {
		if !enter(s, params) {
			return 0
		}
		fn(popArg[A1](s, 1), popArg[A2](s, 2), popArg[A3](s, 3), popArg[A4](s, 4))
		return 0
	}
}

// Void5 builds a trampoline for a five-argument function with no return value.
func Void5[A1, A2, A3, A4, A5 any](fn func(A1, A2, A3, A4, A5)) luabind.GoFunc {
	params := []paramSpec{param[A1](), param[A2](), param[A3](), param[A4](), param[A5]()}
	return func(s luabind.Stack) int {
		if !enter(s, params) {
			return 0
		}
		fn(
			popArg[A1](s, 1), popArg[A2](s, 2), popArg[A3](s, 3),
			popArg[A4](s, 4), popArg[A5](s, 5))
		return 0
	}
}
