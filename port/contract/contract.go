package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a behavioural specification that container implementations can be tested against.
//
// Any expectation from a consumer towards a container role interface
// should be defined in a contract, so every implementation of the role
// can prove its conformance with the same suite.
type Contract interface {
	testcase.Suite
	// Test is the function that assert expected behavioral requirements from a supplier implementation.
	Test(*testing.T)
	// Benchmark will help with what to measure.
	Benchmark(*testing.B)
}
