package orm

import (
	"reflect"

	"github.com/iov-one/splitter/errors"
)

// SimpleObj is a model together with the key it is stored under.
type SimpleObj struct {
	key   []byte
	value Model
}

var _ Object = (*SimpleObj)(nil)

// NewSimpleObj returns an object storing value under key. The key is
// relative to the bucket prefix.
func NewSimpleObj(key []byte, value Model) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

// Key returns the key without the bucket prefix.
func (o SimpleObj) Key() []byte { return o.key }

// Value returns the stored model.
func (o SimpleObj) Value() Model { return o.value }

// Validate requires both the key and the value, and the value to be valid.
func (o SimpleObj) Validate() error {
	var errs error
	if len(o.key) == 0 {
		errs = errors.AppendField(errs, "Key", errors.ErrEmpty)
	}
	if o.value == nil {
		return errors.AppendField(errs, "Value", errors.ErrEmpty)
	}
	return errors.AppendField(errs, "Value", o.value.Validate())
}

// newModel returns a zero instance of the same type as the prototype.
func newModel(prototype Model) Model {
	return reflect.New(reflect.TypeOf(prototype).Elem()).Interface().(Model)
}
