package ledger

import (
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/x"
)

// ValueTx is implemented by transactions that can carry value together
// with their message.
type ValueTx interface {
	splitter.Tx
	GetValue() uint64
}

// PayableMsg is implemented by messages that accept value. The value
// attached to the transaction is credited to the beneficiary before the
// message handler runs.
type PayableMsg interface {
	splitter.Msg
	Beneficiary() splitter.Address
}

// ValueDecorator moves the value attached to a transaction from the main
// signer to the beneficiary of the message and exposes the amount to the
// handler via splitter.GetCallValue.
type ValueDecorator struct {
	auth x.Authenticator
	ctrl Controller
}

var _ splitter.Decorator = ValueDecorator{}

// NewValueDecorator returns a decorator that uses given authenticator to
// find the payer.
func NewValueDecorator(auth x.Authenticator, ctrl Controller) ValueDecorator {
	return ValueDecorator{auth: auth, ctrl: ctrl}
}

// Check moves the value and calls down the stack. The value move is
// discarded when the next handler fails.
func (d ValueDecorator) Check(ctx splitter.Context, store splitter.KVStore, tx splitter.Tx, next splitter.Checker) (*splitter.CheckResult, error) {
	value := valueOf(tx)
	if value == 0 {
		return next.Check(ctx, store, tx)
	}

	cache, err := d.pay(ctx, store, tx, value)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(splitter.WithCallValue(ctx, value), cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot write value transfer")
	}
	return res, nil
}

// Deliver moves the value and calls down the stack. The value move is
// discarded when the next handler fails.
func (d ValueDecorator) Deliver(ctx splitter.Context, store splitter.KVStore, tx splitter.Tx, next splitter.Deliverer) (*splitter.DeliverResult, error) {
	value := valueOf(tx)
	if value == 0 {
		return next.Deliver(ctx, store, tx)
	}

	cache, err := d.pay(ctx, store, tx, value)
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(splitter.WithCallValue(ctx, value), cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot write value transfer")
	}
	return res, nil
}

func valueOf(tx splitter.Tx) uint64 {
	if vtx, ok := tx.(ValueTx); ok {
		return vtx.GetValue()
	}
	return 0
}

// pay transfers the value to the beneficiary on a cache wrap of the store.
// The returned cache must be either written or discarded.
func (d ValueDecorator) pay(ctx splitter.Context, store splitter.KVStore, tx splitter.Tx, value uint64) (splitter.KVCacheWrap, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load message")
	}
	payable, ok := msg.(PayableMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "%T does not accept value", msg)
	}
	payer := x.MainSigner(ctx, d.auth)
	if payer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "value requires a signer")
	}
	cstore, ok := store.(splitter.CacheableKVStore)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "value transfer requires a cacheable store")
	}

	cache := cstore.CacheWrap()
	if err := d.ctrl.Transfer(ctx, cache, payer.Address(), payable.Beneficiary(), value); err != nil {
		cache.Discard()
		return nil, errors.Wrap(err, "cannot transfer value")
	}
	return cache, nil
}
