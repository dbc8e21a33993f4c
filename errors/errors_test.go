package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseValidate,
				Kind:    KindTypeMismatch,
				Pos:     2,
				GoType:  "int64",
				LuaType: "string",
				Detail:  "cannot convert",
			},
			contains: []string{"[validate]", "type_mismatch", "argument 2", "int64", "string", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindUnsupported,
			},
			contains: []string{"[decode]", "unsupported"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRegister,
				Kind:   KindRegistration,
				Detail: "register math.add",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[register]", "registration", "math.add", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseCall,
		Kind:  KindNotFound,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseValidate,
		Kind:  KindTypeMismatch,
		Pos:   1,
	}

	if !err.Is(&Error{Phase: PhaseValidate, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseValidate, Kind: KindArityMismatch}) {
		t.Error("Is should not match different kind")
	}
	if err.Is(errors.New("plain")) {
		t.Error("Is should not match plain errors")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseMarshal, KindUnsupported).
		Pos(3).
		GoType("*os.File").
		LuaType("table").
		Detail("no native mapping for %s", "table").
		Cause(cause).
		Build()

	if err.Phase != PhaseMarshal || err.Kind != KindUnsupported {
		t.Errorf("builder lost phase/kind: %v %v", err.Phase, err.Kind)
	}
	if err.Pos != 3 {
		t.Errorf("Pos = %d, want 3", err.Pos)
	}
	if err.Detail != "no native mapping for table" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through errors.Is")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		phase    Phase
		kind     Kind
		contains string
	}{
		{"arity", ArityMismatch(2, 5), PhaseValidate, KindArityMismatch, "expected 2 argument(s), got 5"},
		{"type", TypeMismatch(PhaseValidate, 1, "bool", "number"), PhaseValidate, KindTypeMismatch, "bool"},
		{"unsupported", Unsupported(PhaseDecode, "table value"), PhaseDecode, KindUnsupported, "table value"},
		{"invalid input", InvalidInput(PhaseRegister, "name cannot be empty"), PhaseRegister, KindInvalidInput, "name cannot be empty"},
		{"registration", Registration("math", "add", errors.New("dup")), PhaseRegister, KindRegistration, "math.add"},
		{"not found", NotFound(PhaseCall, "function", "mul"), PhaseCall, KindNotFound, `function "mul" not found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("message %q does not contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
