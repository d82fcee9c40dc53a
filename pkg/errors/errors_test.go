// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, validation bundles and exit codes

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/xpile/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "flag_parse_error",
			code:    errors.ErrFlagParse,
			message: "unknown flag: --nope",
			wantStr: "[FLAG_PARSE] unknown flag: --nope",
		},
		{
			name:    "config_parse_error",
			code:    errors.ErrConfigParse,
			message: "cannot parse config file: cli.json",
			wantStr: "[CONFIG_PARSE] cannot parse config file: cli.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrOverrideType, "cannot set %q: %s is not an object", "a.b", "a")
	want := `cannot set "a.b": a is not an object`
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "cannot read config file: x.json")

		if err.Code != errors.ErrConfigLoad {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrConfigLoad)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[CONFIG_LOAD] cannot read config file: x.json: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		errors.DetailPath: "/tmp/cli.json",
		errors.DetailFlag: "--out-dir",
	}

	err := errors.New(errors.ErrConfigLoad, "cannot find config file").WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrConfigParse, "error 1")
	err2 := errors.New(errors.ErrConfigParse, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match errors with the same code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestValidation(t *testing.T) {
	t.Run("no_violations_is_nil", func(t *testing.T) {
		if err := errors.Validation(nil); err != nil {
			t.Errorf("Validation(nil) = %v, want nil", err)
		}
	})

	t.Run("keeps_every_violation_in_order", func(t *testing.T) {
		in := []string{"first", "second"}
		err := errors.Validation(in)
		in[0] = "mutated"

		if err.Code != errors.ErrConfigInvalid {
			t.Errorf("Validation() code = %v, want %v", err.Code, errors.ErrConfigInvalid)
		}
		got := err.Violations()
		if len(got) != 2 || got[0] != "first" || got[1] != "second" {
			t.Errorf("Violations() = %v, want [first second]", got)
		}
	})
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"nil", nil, nil},
		{"plain", stderrors.New("boom"), []string{"boom"}},
		{"coded", errors.New(errors.ErrConfigLoad, "cannot find config file: a.json"), []string{"cannot find config file: a.json"}},
		{"validation", errors.Validation([]string{"a", "b"}), []string{"a", "b"}},
		{"wrapped_validation", fmt.Errorf("resolve: %w", errors.Validation([]string{"a"})), []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Messages(tt.err)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Messages() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"flag_parse", errors.New(errors.ErrFlagParse, "x"), errors.ExitUsage},
		{"config_load", errors.New(errors.ErrConfigLoad, "x"), errors.ExitUsage},
		{"config_parse", errors.New(errors.ErrConfigParse, "x"), errors.ExitUsage},
		{"validation", errors.Validation([]string{"x"}), errors.ExitUsage},
		{"override", errors.New(errors.ErrOverrideType, "x"), errors.ExitUsage},
		{"internal", errors.New(errors.ErrInternal, "x"), 1},
		{"plain", stderrors.New("x"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	readErr := errors.Wrap(rootCause, errors.ErrConfigLoad, "cannot read config file")
	outer := fmt.Errorf("resolve options: %w", readErr)

	if !errors.IsErrorCode(outer, errors.ErrConfigLoad) {
		t.Error("wrapped error should keep ErrConfigLoad code")
	}
	if errors.GetErrorCode(outer) != errors.ErrConfigLoad {
		t.Errorf("GetErrorCode() = %v", errors.GetErrorCode(outer))
	}
	if !stderrors.Is(outer, rootCause) {
		t.Error("Should find root cause with errors.Is")
	}
	if errors.GetErrorDetails(stderrors.New("x")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}
