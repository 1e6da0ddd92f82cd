package errorkit_test

import (
	"errors"
	"fmt"
	"testing"

	"go.llib.dev/datastruct/pkg/errorkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

const ErrExample errorkit.Error = "ErrExample"

func TestError(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("const declarable", func(t *testcase.T) {
		assert.Equal(t, "ErrExample", ErrExample.Error())
		assert.ErrorIs(t, ErrExample, ErrExample)
	})

	s.Test("Wrap bundles the two error values together", func(t *testcase.T) {
		cause := errors.New(t.Random.Error().Error())
		got := ErrExample.Wrap(cause)
		assert.ErrorIs(t, got, ErrExample)
		assert.ErrorIs(t, got, cause)
		assert.Contains(t, got.Error(), cause.Error())
	})

	s.Test("Wrap with nil yields the owner error itself", func(t *testcase.T) {
		assert.ErrorIs(t, ErrExample.Wrap(nil), ErrExample)
	})

	s.Test("F formats the wrapped detail", func(t *testcase.T) {
		n := t.Random.Int()
		got := ErrExample.F("index: %d", n)
		assert.ErrorIs(t, got, ErrExample)
		assert.Contains(t, got.Error(), fmt.Sprintf("index: %d", n))
	})
}

func TestMerge(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("no error", func(t *testcase.T) {
		assert.NoError(t, errorkit.Merge())
		assert.NoError(t, errorkit.Merge(nil, nil))
	})

	s.Test("single error is returned as is", func(t *testcase.T) {
		err := t.Random.Error()
		assert.Equal[error](t, err, errorkit.Merge(nil, err))
	})

	s.Test("multiple errors are combined and matchable with errors.Is", func(t *testcase.T) {
		err1 := t.Random.Error()
		err2 := t.Random.Error()
		got := errorkit.Merge(err1, err2)
		assert.ErrorIs(t, got, err1)
		assert.ErrorIs(t, got, err2)
	})
}

func TestFinish(t *testing.T) {
	t.Run("on error", func(t *testing.T) {
		expected := errors.New("boom")
		got := func() (rErr error) {
			defer errorkit.Finish(&rErr, func() error { return expected })
			return nil
		}()
		assert.ErrorIs(t, got, expected)
	})
	t.Run("on success", func(t *testing.T) {
		got := func() (rErr error) {
			defer errorkit.Finish(&rErr, func() error { return nil })
			return nil
		}()
		assert.NoError(t, got)
	})
}
