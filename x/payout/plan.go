package payout

import (
	"math"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

// PayoutEntry is a single transfer of a payout.
type PayoutEntry struct {
	Payee  splitter.Address `protobuf:"bytes,1,opt,name=payee,proto3" json:"payee,omitempty"`
	Amount uint64           `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *PayoutEntry) Reset()         { *m = PayoutEntry{} }
func (m *PayoutEntry) String() string { return proto.CompactTextString(m) }
func (*PayoutEntry) ProtoMessage()    {}

// PayoutPlan is the ordered list of transfers a payout executes. It is
// returned by the calculate message.
type PayoutPlan struct {
	Entries []*PayoutEntry `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
}

func (m *PayoutPlan) Reset()         { *m = PayoutPlan{} }
func (m *PayoutPlan) String() string { return proto.CompactTextString(m) }
func (*PayoutPlan) ProtoMessage()    {}

// Total returns the sum of all entries.
func (p *PayoutPlan) Total() uint64 {
	var total uint64
	for _, e := range p.Entries {
		total += e.Amount
	}
	return total
}

// CalculatePayout splits balance into equal shares, one for each payee,
// in payee order. The division remainder goes to the first payee, so the
// amounts always add up to balance.
func CalculatePayout(balance uint64, payees []splitter.Address) ([]*PayoutEntry, error) {
	n := uint64(len(payees))
	if n == 0 {
		return nil, ErrNoPayees
	}
	if balance == 0 {
		return nil, errors.Wrap(ErrZeroShare, "empty balance")
	}
	share := balance / n
	if share == 0 {
		return nil, errors.Wrapf(ErrZeroShare, "balance %d cannot be split between %d payees", balance, n)
	}
	remainder := balance - share*n

	if share > math.MaxUint64-remainder {
		return nil, errors.Wrap(ErrTransferFailed, "share with remainder overflows")
	}
	entries := make([]*PayoutEntry, len(payees))
	for i, payee := range payees {
		entries[i] = &PayoutEntry{Payee: payee, Amount: share}
	}
	entries[0].Amount += remainder
	return entries, nil
}
