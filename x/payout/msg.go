package payout

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/x/ledger"
)

const (
	pathCreatePoolMsg      = "payout/create"
	pathDepositMsg         = "payout/deposit"
	pathCalculatePayoutMsg = "payout/calculate"
	pathTriggerPayoutMsg   = "payout/trigger"
)

// CreatePoolMsg creates a new pool. Payees and authority cannot be changed
// later.
type CreatePoolMsg struct {
	Payees    []splitter.Address `protobuf:"bytes,1,rep,name=payees,proto3" json:"payees,omitempty"`
	Authority splitter.Address   `protobuf:"bytes,2,opt,name=authority,proto3" json:"authority,omitempty"`
}

func (m *CreatePoolMsg) Reset()         { *m = CreatePoolMsg{} }
func (m *CreatePoolMsg) String() string { return proto.CompactTextString(m) }
func (*CreatePoolMsg) ProtoMessage()    {}

// DepositMsg sends the value attached to the transaction to the pool.
type DepositMsg struct {
	PoolID []byte `protobuf:"bytes,1,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
}

func (m *DepositMsg) Reset()         { *m = DepositMsg{} }
func (m *DepositMsg) String() string { return proto.CompactTextString(m) }
func (*DepositMsg) ProtoMessage()    {}

// CalculatePayoutMsg returns the plan of a payout over the current pool
// balance, without executing it.
type CalculatePayoutMsg struct {
	PoolID []byte `protobuf:"bytes,1,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
}

func (m *CalculatePayoutMsg) Reset()         { *m = CalculatePayoutMsg{} }
func (m *CalculatePayoutMsg) String() string { return proto.CompactTextString(m) }
func (*CalculatePayoutMsg) ProtoMessage()    {}

// TriggerPayoutMsg distributes the whole pool balance to the payees.
type TriggerPayoutMsg struct {
	PoolID []byte `protobuf:"bytes,1,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
}

func (m *TriggerPayoutMsg) Reset()         { *m = TriggerPayoutMsg{} }
func (m *TriggerPayoutMsg) String() string { return proto.CompactTextString(m) }
func (*TriggerPayoutMsg) ProtoMessage()    {}

var _ splitter.Msg = (*CreatePoolMsg)(nil)
var _ ledger.PayableMsg = (*DepositMsg)(nil)
var _ splitter.Msg = (*CalculatePayoutMsg)(nil)
var _ splitter.Msg = (*TriggerPayoutMsg)(nil)

//--------- Path routing --------

// Path fulfills splitter.Msg interface to allow routing
func (CreatePoolMsg) Path() string {
	return pathCreatePoolMsg
}

// Path fulfills splitter.Msg interface to allow routing
func (DepositMsg) Path() string {
	return pathDepositMsg
}

// Path fulfills splitter.Msg interface to allow routing
func (CalculatePayoutMsg) Path() string {
	return pathCalculatePayoutMsg
}

// Path fulfills splitter.Msg interface to allow routing
func (TriggerPayoutMsg) Path() string {
	return pathTriggerPayoutMsg
}

//--------- Validation --------

// Validate checks all addresses. An empty payee list is valid, such pool
// accepts deposits but cannot pay out.
func (m *CreatePoolMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Authority", m.Authority.Validate())
	for i, payee := range m.Payees {
		errs = errors.AppendField(errs, fmt.Sprintf("Payees.%d", i), payee.Validate())
	}
	return errs
}

// Validate makes sure the pool is referenced.
func (m *DepositMsg) Validate() error {
	return errors.AppendField(nil, "PoolID", validatePoolID(m.PoolID))
}

// Beneficiary fulfills ledger.PayableMsg interface. The value attached
// to a deposit is credited to the pool account.
func (m *DepositMsg) Beneficiary() splitter.Address {
	return PoolAddress(m.PoolID)
}

// Validate makes sure the pool is referenced.
func (m *CalculatePayoutMsg) Validate() error {
	return errors.AppendField(nil, "PoolID", validatePoolID(m.PoolID))
}

// Validate makes sure the pool is referenced.
func (m *TriggerPayoutMsg) Validate() error {
	return errors.AppendField(nil, "PoolID", validatePoolID(m.PoolID))
}

// validatePoolID checks the ID has the format of a sequence value.
func validatePoolID(id []byte) error {
	switch n := len(id); {
	case n == 0:
		return errors.ErrEmpty
	case n != 8:
		return errors.Wrapf(errors.ErrInput, "invalid length %d", n)
	}
	return nil
}
