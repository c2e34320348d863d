package ledger

import (
	"math"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/orm"
)

// Controller is the only way to read and change balances.
type Controller interface {
	// Balance returns the amount held by given address. An address that
	// never received funds has a zero balance.
	Balance(db splitter.ReadOnlyKVStore, addr splitter.Address) (uint64, error)

	// Transfer moves amount from src to dst. Either the whole transfer
	// is applied or nothing is written.
	Transfer(ctx splitter.Context, db splitter.KVStore, src, dst splitter.Address, amount uint64) error

	// Mint creates amount out of thin air and credits it to dst.
	Mint(db splitter.KVStore, dst splitter.Address, amount uint64) error
}

// TransferHook is called after a transfer credited the destination. The
// hook runs in the same call as the transfer, so it can execute further
// code (including other handlers) on behalf of the receiver. Returning an
// error reverts the transfer when the store supports cache wrapping.
type TransferHook func(ctx splitter.Context, db splitter.KVStore, src, dst splitter.Address, amount uint64) error

// BaseController is the default Controller implementation.
type BaseController struct {
	bucket orm.ModelBucket
	hooks  []TransferHook
}

var _ Controller = (*BaseController)(nil)

// NewController returns a controller that calls given hooks, in order,
// after every successful transfer.
func NewController(hooks ...TransferHook) *BaseController {
	return &BaseController{
		bucket: NewBucket(),
		hooks:  hooks,
	}
}

// Balance returns the amount stored for the address.
func (c *BaseController) Balance(db splitter.ReadOnlyKVStore, addr splitter.Address) (uint64, error) {
	if err := addr.Validate(); err != nil {
		return 0, errors.Wrap(err, "address")
	}
	var acc Account
	switch err := c.bucket.One(db, addr, &acc); {
	case err == nil:
		return acc.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load account")
	}
}

// Transfer moves amount from src to dst. It fails for a zero amount, when
// src does not hold enough funds, or when the dst balance would overflow.
func (c *BaseController) Transfer(ctx splitter.Context, db splitter.KVStore, src, dst splitter.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero value transfer")
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	srcBalance, err := c.Balance(db, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if srcBalance < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", srcBalance, amount)
	}

	var dstBalance uint64
	if !src.Equals(dst) {
		dstBalance, err = c.Balance(db, dst)
		if err != nil {
			return errors.Wrap(err, "destination")
		}
		if dstBalance > math.MaxUint64-amount {
			return errors.Wrap(errors.ErrOverflow, "destination balance")
		}
	}

	// Hooks may fail after the balances were written. Apply everything
	// on a cache so that a failing hook reverts the transfer as well.
	cstore, ok := db.(splitter.CacheableKVStore)
	if len(c.hooks) == 0 || !ok {
		return c.apply(ctx, db, src, dst, srcBalance, dstBalance, amount)
	}
	cache := cstore.CacheWrap()
	if err := c.apply(ctx, cache, src, dst, srcBalance, dstBalance, amount); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}

func (c *BaseController) apply(ctx splitter.Context, db splitter.KVStore, src, dst splitter.Address, srcBalance, dstBalance, amount uint64) error {
	if !src.Equals(dst) {
		if err := c.put(db, src, srcBalance-amount); err != nil {
			return err
		}
		if err := c.put(db, dst, dstBalance+amount); err != nil {
			return err
		}
	}
	for _, fn := range c.hooks {
		if err := fn(ctx, db, src, dst, amount); err != nil {
			return errors.Wrap(err, "transfer hook")
		}
	}
	return nil
}

// Mint credits amount to dst.
func (c *BaseController) Mint(db splitter.KVStore, dst splitter.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero value mint")
	}
	balance, err := c.Balance(db, dst)
	if err != nil {
		return err
	}
	if balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	return c.put(db, dst, balance+amount)
}

func (c *BaseController) put(db splitter.KVStore, addr splitter.Address, amount uint64) error {
	if _, err := c.bucket.Put(db, addr, &Account{Amount: amount}); err != nil {
		return errors.Wrap(err, "cannot save account")
	}
	return nil
}
