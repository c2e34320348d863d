/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
Each bucket contains only one type of object, addressed by its
primary key. Values are serialized with protobuf.
*/
package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Bucket is a prefixed subspace of the DB. proto defines the
// Model type of all elements stored in it.
type Bucket struct {
	name   string
	prefix []byte
	proto  Model
}

var _ splitter.QueryHandler = Bucket{}

// NewBucket creates a bucket to store data
func NewBucket(name string, proto Model) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// Register registers this Bucket as a query handler. You can define a name
// here for queries, which is different than the bucket name used to prefix
// the data
func (b Bucket) Register(name string, r splitter.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query returns the raw value stored under the given key. A miss returns
// no models and no error.
func (b Bucket) Query(db splitter.ReadOnlyKVStore, data []byte) ([]splitter.Model, error) {
	key := b.DBKey(data)
	value, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return []splitter.Model{splitter.Pair(key, value)}, nil
}

// DBKey is the full key we store in the db, including prefix.
// A new slice is allocated so that consecutive calls never share the
// prefix backing array.
func (b Bucket) DBKey(key []byte) []byte {
	out := make([]byte, len(b.prefix)+len(key))
	n := copy(out, b.prefix)
	copy(out[n:], key)
	return out
}

// Get one element
func (b Bucket) Get(db splitter.ReadOnlyKVStore, key []byte) (Object, error) {
	dbkey := b.DBKey(key)
	bz, err := db.Get(dbkey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Parse takes a key and value data (serialized) and creates an Object
func (b Bucket) Parse(key, value []byte) (Object, error) {
	m := newModel(b.proto)
	if err := proto.Unmarshal(value, m); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot unmarshal %T: %s", m, err)
	}
	return NewSimpleObj(key, m), nil
}

// Has returns true if an element is stored under the given key.
func (b Bucket) Has(db splitter.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Save will write a model, it must be of the same type as proto
func (b Bucket) Save(db splitter.KVStore, model Object) error {
	if err := model.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	value := model.Value()
	if reflect.TypeOf(value) != reflect.TypeOf(b.proto) {
		return errors.Wrapf(errors.ErrType, "cannot store %T in %q bucket", value, b.name)
	}
	bz, err := proto.Marshal(value)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", value, err)
	}
	return db.Set(b.DBKey(model.Key()), bz)
}

// Delete will remove the value at a key
func (b Bucket) Delete(db splitter.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}

// Sequence returns a Sequence by name, scoped to this bucket.
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}
