// Package spechelper contains shared helpers for the contract based test suites.
package spechelper

import (
	"reflect"
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	"go.llib.dev/testcase"
)

// MakeValue creates a random value of T, used as the default element factory of the contracts.
func MakeValue[T any](tb testing.TB) T {
	t := testcase.ToT(&tb)
	var ptr *T
	return t.Random.Make(reflect.TypeOf(ptr).Elem()).(T)
}

// MakeName creates a human readable random name, for test data meant to be read in failure output.
func MakeName(testing.TB) string {
	return randomdata.SillyName()
}
