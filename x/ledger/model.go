package ledger

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter/orm"
)

// BucketName is where we store the balances
const BucketName = "ledger"

// Account holds the balance of a single address. The address is the key
// under which the account is stored.
type Account struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

var _ orm.Model = (*Account)(nil)

// Validate is a no-op, any unsigned amount is a valid balance.
func (a *Account) Validate() error {
	return nil
}

// NewBucket returns a bucket keeping accounts by address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Account{})
}
