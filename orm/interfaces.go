package orm

import (
	"github.com/gogo/protobuf/proto"
)

// Model is implemented by every entity kept in a bucket. Models are
// serialized with protobuf, so they must carry protobuf struct tags.
type Model interface {
	proto.Message
	// Validate returns error if the model is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validate() error
}

// Object is a model with its key. The bucket prefix is prepended to the
// key when the object is written.
type Object interface {
	Key() []byte
	Value() Model
	Validate() error
}
