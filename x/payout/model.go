package payout

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/orm"
)

// BucketName is where the pools are stored.
const BucketName = "pool"

// Pool is a set of payees sharing everything deposited to the pool
// account. Payees and authority never change after creation.
type Pool struct {
	Metadata *splitter.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Payees receive an equal share each. An address listed twice
	// receives two shares.
	Payees []splitter.Address `protobuf:"bytes,2,rep,name=payees,proto3" json:"payees,omitempty"`
	// Authority is the only address allowed to trigger a payout.
	Authority splitter.Address `protobuf:"bytes,3,opt,name=authority,proto3" json:"authority,omitempty"`
	// Locked is set for the duration of a payout.
	Locked bool `protobuf:"varint,4,opt,name=locked,proto3" json:"locked,omitempty"`
}

func (m *Pool) Reset()         { *m = Pool{} }
func (m *Pool) String() string { return proto.CompactTextString(m) }
func (*Pool) ProtoMessage()    {}

var _ orm.Model = (*Pool)(nil)

// Validate ensures the pool addresses are valid.
func (p *Pool) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", p.Metadata.Validate())
	errs = errors.AppendField(errs, "Authority", p.Authority.Validate())
	for i, payee := range p.Payees {
		errs = errors.AppendField(errs, fmt.Sprintf("Payees.%d", i), payee.Validate())
	}
	return errs
}

// PoolAddress returns the ledger account holding the balance of the pool
// with given ID.
func PoolAddress(poolID []byte) splitter.Address {
	return PoolCondition(poolID).Address()
}

// PoolCondition returns the condition owning the pool account.
func PoolCondition(poolID []byte) splitter.Condition {
	return splitter.NewCondition("payout", "pool", poolID)
}

// NewPoolBucket returns a bucket for storing pools, keyed by a sequence.
func NewPoolBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Pool{})
}
