// Package testutil provides testing helpers shared by the provider tests.
package testutil

import (
	"testing"

	"github.com/GriffinCanCode/bayescore/internal/types"
)

// AssertSuccess is a helper to assert a successful result.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if !result.Success {
		t.Fatalf("Expected success, got error: %v", result.Error)
	}
}

// AssertError is a helper to assert an error result.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if result.Success {
		t.Fatal("Expected error, got success")
	}
	if result.Error == nil {
		t.Fatal("Expected error message, got nil")
	}
}

// Numbers converts a float slice into the []interface{} form a params map carries.
func Numbers(vals ...float64) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

// Ints converts an int slice into the []interface{} form a params map carries.
func Ints(vals ...int) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
