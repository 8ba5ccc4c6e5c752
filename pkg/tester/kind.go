package tester

import (
	"errors"
	"fmt"
)

// Kind matches errors expected by Recorder.Throws. A Kind must
// accept errors of its own kind and of every kind derived from it.
type Kind interface {
	Match(err error) bool
}

// KindFunc adapts a predicate to the Kind interface.
type KindFunc func(err error) bool

// Match calls f(err).
func (f KindFunc) Match(err error) bool {
	return f(err)
}

// AnyError matches every non-nil error. It behaves like passing a
// nil Kind to Throws.
var AnyError Kind = KindFunc(func(err error) bool {
	return err != nil
})

// Is returns a Kind matching errors for which errors.Is(err,
// target) holds.
func Is(target error) Kind {
	return KindFunc(func(err error) bool {
		return errors.Is(err, target)
	})
}

// As returns a Kind matching errors whose chain contains an error
// assignable to T.
func As[T error]() Kind {
	return KindFunc(func(err error) bool {
		var target T
		return errors.As(err, &target)
	})
}

// Class is a named error kind with an optional parent class.
// Errors created from a class match that class and all of its
// ancestors.
type Class struct {
	name   string
	parent *Class
}

// NewClass creates an error class derived from parent. A nil
// parent creates a root class.
func NewClass(name string, parent *Class) *Class {
	return &Class{name: name, parent: parent}
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Parent returns the parent class, or nil for a root class.
func (c *Class) Parent() *Class {
	return c.parent
}

// Error returns the class name so a Class can act as a sentinel.
func (c *Class) Error() string {
	return c.name
}

// Unwrap returns the parent class.
func (c *Class) Unwrap() error {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

// Subclass reports whether c is other or is derived from it.
func (c *Class) Subclass(other *Class) bool {
	for k := c; k != nil; k = k.parent {
		if k == other {
			return true
		}
	}
	return false
}

// Match reports whether err belongs to c or to a class derived
// from c.
func (c *Class) Match(err error) bool {
	return errors.Is(err, c)
}

// New creates an error of class c with the given message.
func (c *Class) New(msg string) error {
	return &classError{class: c, msg: msg}
}

// Errorf creates an error of class c with a formatted message.
// A %w verb wraps its operand as usual.
func (c *Class) Errorf(format string, args ...any) error {
	return &classError{class: c, err: fmt.Errorf(format, args...)}
}

type classError struct {
	class *Class
	msg   string
	err   error
}

func (e *classError) Error() string {
	if e.err != nil {
		return e.class.name + ": " + e.err.Error()
	}
	return e.class.name + ": " + e.msg
}

func (e *classError) Unwrap() []error {
	if e.err != nil {
		return []error{e.class, e.err}
	}
	return []error{e.class}
}
