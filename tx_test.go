package splitter

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/weavetest/assert"
)

// shareMsg is a minimal message routed as "split/share".
type shareMsg struct {
	PoolID []byte `protobuf:"bytes,1,opt,name=pool_id,proto3" json:"pool_id,omitempty"`
	Amount uint64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *shareMsg) Reset()         { *m = shareMsg{} }
func (m *shareMsg) String() string { return proto.CompactTextString(m) }
func (*shareMsg) ProtoMessage()    {}
func (*shareMsg) Path() string     { return "split/share" }

func (m *shareMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero share")
	}
	return nil
}

// lockMsg is a second message type, to test type mismatches.
type lockMsg struct {
	PoolID []byte `protobuf:"bytes,1,opt,name=pool_id,proto3" json:"pool_id,omitempty"`
}

func (m *lockMsg) Reset()         { *m = lockMsg{} }
func (m *lockMsg) String() string { return proto.CompactTextString(m) }
func (*lockMsg) ProtoMessage()    {}
func (*lockMsg) Path() string     { return "split/lock" }
func (*lockMsg) Validate() error  { return nil }

// stubTx returns the configured message and error.
type stubTx struct {
	msg Msg
	err error
}

func (tx stubTx) GetMsg() (Msg, error) { return tx.msg, tx.err }

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		dest    interface{}
		wantMsg interface{}
		wantErr *errors.Error
	}{
		"message is copied into the destination": {
			tx:      stubTx{msg: &shareMsg{PoolID: []byte{1}, Amount: 5}},
			dest:    &shareMsg{},
			wantMsg: &shareMsg{PoolID: []byte{1}, Amount: 5},
		},
		"transaction failure is passed through": {
			tx:      stubTx{err: errors.ErrInput},
			dest:    &shareMsg{},
			wantErr: errors.ErrInput,
		},
		"nil message": {
			tx:      stubTx{},
			dest:    &shareMsg{},
			wantErr: errors.ErrMsg,
		},
		"invalid message": {
			tx:      stubTx{msg: &shareMsg{PoolID: []byte{1}}},
			dest:    &shareMsg{},
			wantErr: errors.ErrAmount,
		},
		"different message type": {
			tx:      stubTx{msg: &lockMsg{PoolID: []byte{1}}},
			dest:    &shareMsg{},
			wantErr: errors.ErrType,
		},
		"destination is not a pointer": {
			tx:      stubTx{msg: &lockMsg{}},
			dest:    lockMsg{},
			wantErr: errors.ErrType,
		},
		"destination is a nil pointer": {
			tx:      stubTx{msg: &lockMsg{}},
			dest:    (*lockMsg)(nil),
			wantErr: errors.ErrType,
		},
		"destination is a nil interface": {
			tx:      stubTx{msg: &lockMsg{}},
			dest:    nil,
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, LoadMsg(tc.tx, tc.dest))
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantMsg, tc.dest)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "split/share", GetPath(stubTx{msg: &shareMsg{}}))
	assert.Equal(t, "(missing)", GetPath(stubTx{}))
	assert.Equal(t, "(missing)", GetPath(stubTx{msg: &lockMsg{}, err: errors.ErrMsg}))
}
