package browser

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/listhound/listhound/models"
)

func TestStabilityFatal(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("wait dom stable: %w", context.DeadlineExceeded), true},
		{"canceled", context.Canceled, true},
		{"non-convergence", errors.New("domain unstable"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stabilityFatal(tc.err); got != tc.want {
				t.Errorf("stabilityFatal(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestCategorizeError_DeadlineMapsToTimeout(t *testing.T) {
	err := categorizeError(fmt.Errorf("navigate: %w", context.DeadlineExceeded), "page did not settle")
	if err.Code != models.ErrCodeTimeout {
		t.Errorf("error code = %q, want %q", err.Code, models.ErrCodeTimeout)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected wrapped context.DeadlineExceeded to survive")
	}
}

func TestCategorizeError_OtherMapsToNavigation(t *testing.T) {
	err := categorizeError(errors.New("net::ERR_NAME_NOT_RESOLVED"), "navigation failed")
	if err.Code != models.ErrCodeNavigation {
		t.Errorf("error code = %q, want %q", err.Code, models.ErrCodeNavigation)
	}
}
