package weavetest

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter"
)

// Tx represents a transaction carrying a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg splitter.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ splitter.Tx = (*Tx)(nil)

// GetMsg returns the configured message and error.
func (tx *Tx) GetMsg() (splitter.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg represents a message routed by its path.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string `protobuf:"bytes,1,opt,name=route_path,proto3" json:"route_path,omitempty"`
	// Err if set is returned by Validate.
	Err error `json:"-"`
}

var _ splitter.Msg = (*Msg)(nil)

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return proto.CompactTextString(m) }
func (*Msg) ProtoMessage()    {}

// Path returns the configured route path.
func (m *Msg) Path() string {
	return m.RoutePath
}

// Validate returns the configured error.
func (m *Msg) Validate() error {
	return m.Err
}
