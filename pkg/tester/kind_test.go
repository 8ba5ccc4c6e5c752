package tester

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errRuntime     = NewClass("RuntimeError", nil)
	errLogic       = NewClass("LogicError", nil)
	errBadCall     = NewClass("BadFunctionCallError", errLogic)
	errBadMethod   = NewClass("BadMethodCallError", errBadCall)
	errOutOfBounds = NewClass("OutOfBoundsError", errRuntime)
)

func TestClass_Hierarchy(t *testing.T) {
	assert.Equal(t, "BadMethodCallError", errBadMethod.Name())
	assert.Same(t, errBadCall, errBadMethod.Parent())
	assert.Nil(t, errLogic.Parent())

	assert.True(t, errBadMethod.Subclass(errBadMethod))
	assert.True(t, errBadMethod.Subclass(errBadCall))
	assert.True(t, errBadMethod.Subclass(errLogic))
	assert.False(t, errBadCall.Subclass(errBadMethod))
	assert.False(t, errBadMethod.Subclass(errRuntime))
}

func TestClass_Match(t *testing.T) {
	err := errBadMethod.New("no such method")

	assert.Equal(t, "BadMethodCallError: no such method", err.Error())
	assert.True(t, errBadMethod.Match(err))
	assert.True(t, errBadCall.Match(err))
	assert.True(t, errLogic.Match(err))
	assert.False(t, errRuntime.Match(err))
	assert.False(t, errOutOfBounds.Match(err))
	assert.True(t, errors.Is(err, errLogic))
}

func TestClass_MatchWrapped(t *testing.T) {
	err := fmt.Errorf("loading fixture: %w", errOutOfBounds.New("index 9"))

	assert.True(t, errRuntime.Match(err))
	assert.False(t, errLogic.Match(err))
}

func TestClass_Errorf(t *testing.T) {
	err := errRuntime.Errorf("open fixture: %w", fs.ErrNotExist)

	assert.Equal(t, "RuntimeError: open fixture: file does not exist", err.Error())
	assert.True(t, errRuntime.Match(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestIs(t *testing.T) {
	_, err := os.Open("/nonexistent/fixture")

	assert.True(t, Is(fs.ErrNotExist).Match(err))
	assert.False(t, Is(fs.ErrPermission).Match(err))
}

func TestAs(t *testing.T) {
	_, err := strconv.Atoi("five")

	assert.True(t, As[*strconv.NumError]().Match(err))
	assert.True(t, As[*strconv.NumError]().Match(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, As[*fs.PathError]().Match(err))
}

func TestAnyError(t *testing.T) {
	assert.True(t, AnyError.Match(assert.AnError))
	assert.False(t, AnyError.Match(nil))
}

func TestKindFunc(t *testing.T) {
	k := KindFunc(func(err error) bool {
		return err.Error() == "x"
	})

	assert.True(t, k.Match(errors.New("x")))
	assert.False(t, k.Match(errors.New("y")))
}
