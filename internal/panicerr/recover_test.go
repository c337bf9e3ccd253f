package panicerr

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	for _, tc := range []struct {
		name      string
		err       string
		wraps     string
		fun       func() error
		isPanic   bool
		isExit    bool
		haveStack bool
	}{
		{
			name: "ok",
			fun:  func() error { return nil },
		},
		{
			name: "plain error",
			err:  "bad rule",
			fun:  func() error { return errors.New("bad rule") },
		},
		{
			name:      "panic error",
			err:       "panic error panicked: bang",
			wraps:     "bang",
			isPanic:   true,
			haveStack: true,
			fun:       func() error { panic(errors.New("bang")) },
		},
		{
			name:      "panic string",
			err:       "panic string panicked: unreachable",
			isPanic:   true,
			haveStack: true,
			fun:       func() error { panic("unreachable") },
		},
		{
			name:      "index",
			err:       "index panicked: runtime error: index out of range [1] with length 0",
			wraps:     "runtime error: index out of range [1] with length 0",
			isPanic:   true,
			haveStack: true,
			fun:       func() error { _ = ([]int)(nil)[1]; return nil },
		},
		{
			name:   "exit",
			err:    "exit called runtime.Goexit",
			isExit: true,
			fun:    func() error { runtime.Goexit(); return nil },
		},
		{
			name:   "",
			err:    "runtime.Goexit called",
			isExit: true,
			fun:    func() error { runtime.Goexit(); return nil },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Recover(tc.name, tc.fun)
			if tc.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.err)
				if tc.wraps != "" {
					assert.EqualError(t, errors.Unwrap(err), tc.wraps, "expected panic(error) value")
				}
			}
			assert.Equal(t, tc.isPanic, IsPanic(err))
			assert.Equal(t, tc.isExit, IsExit(err))
			stack := PanicStack(err)
			if tc.haveStack {
				assert.NotEqual(t, "", stack, "expected a stack trace")
			} else {
				assert.Equal(t, "", stack, "expected no stack trace")
			}
		})
	}
}

func TestRecover_stacktrace(t *testing.T) {
	err := Recover("", func() error {
		panic("nope")
	})
	require.Error(t, err)
	assert.True(t,
		strings.HasSuffix(fmt.Sprintf("%+v", err), PanicStack(err)),
		"expected verbose format to end with a stack trace")
}

func TestRecover_wrapped(t *testing.T) {
	err := fmt.Errorf("2020/19: %w", Recover("2020/19", func() error {
		panic(fmt.Sprintf("no rule %d", 0))
	}))
	assert.True(t, IsPanic(err))
	assert.False(t, IsExit(err))
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "2020/19", perr.Name)
	assert.Equal(t, "no rule 0", perr.Value)
	assert.Equal(t, "2020/19: 2020/19 panicked: no rule 0", err.Error())

	assert.False(t, IsPanic(errors.New("plain")))
	assert.Empty(t, PanicStack(nil))
}
