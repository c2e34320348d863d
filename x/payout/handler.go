package payout

import (
	"fmt"
	"strconv"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/orm"
	"github.com/iov-one/splitter/x"
	"github.com/iov-one/splitter/x/ledger"
)

const (
	createPoolCost      int64 = 100
	depositCost         int64 = 0
	calculatePayoutCost int64 = 0
	triggerPayoutCost   int64 = 50
	// every transfer of a payout is paid for separately
	payeeTransferCost int64 = 10
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r splitter.Registry, auth x.Authenticator, ctrl ledger.Controller) {
	bucket := NewPoolBucket()
	r.Handle(pathCreatePoolMsg, CreatePoolHandler{auth: auth, bucket: bucket})
	r.Handle(pathDepositMsg, DepositHandler{auth: auth, bucket: bucket})
	r.Handle(pathCalculatePayoutMsg, CalculatePayoutHandler{auth: auth, bucket: bucket, ctrl: ctrl})
	r.Handle(pathTriggerPayoutMsg, TriggerPayoutHandler{auth: auth, bucket: bucket, ctrl: ctrl})
}

// RegisterQuery will register this bucket as "/pools"
func RegisterQuery(qr splitter.QueryRouter) {
	NewPoolBucket().Register("pools", qr)
}

// CreatePoolHandler stores a new pool.
type CreatePoolHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ splitter.Handler = CreatePoolHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreatePoolHandler) Check(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &splitter.CheckResult{GasAllocated: createPoolCost}, nil
}

// Deliver stores the pool and returns its ID.
func (h CreatePoolHandler) Deliver(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := createPool(db, h.bucket, msg.Payees, msg.Authority)
	if err != nil {
		return nil, err
	}
	res := &splitter.DeliverResult{Data: id}
	res.AddTag("action", "create_pool")
	res.AddTag("pool", fmt.Sprintf("%X", id))
	return res, nil
}

func (h CreatePoolHandler) validate(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*CreatePoolMsg, error) {
	var msg CreatePoolMsg
	if err := splitter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if conf.MaxPayees > 0 && len(msg.Payees) > int(conf.MaxPayees) {
		return nil, errors.Field("Payees", errors.ErrInput, "too many payees, max %d", conf.MaxPayees)
	}
	return &msg, nil
}

// createPool persists a new, unlocked pool and returns its ID.
func createPool(db splitter.KVStore, bucket orm.ModelBucket, payees []splitter.Address, authority splitter.Address) ([]byte, error) {
	pool := &Pool{
		Metadata:  &splitter.Metadata{Schema: 1},
		Payees:    payees,
		Authority: authority,
		Locked:    false,
	}
	id, err := bucket.Put(db, nil, pool)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store pool")
	}
	return id, nil
}

// DepositHandler accepts value sent to a pool. The value is already moved
// to the pool account when the handler is called.
type DepositHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ splitter.Handler = DepositHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h DepositHandler) Check(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &splitter.CheckResult{GasAllocated: depositCost}, nil
}

// Deliver emits the deposit event.
func (h DepositHandler) Deliver(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.DeliverResult, error) {
	msg, value, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	var from splitter.Address
	if signer := x.MainSigner(ctx, h.auth); signer != nil {
		from = signer.Address()
	}

	res := &splitter.DeliverResult{}
	res.AddTag("action", "deposit")
	res.AddTag("pool", fmt.Sprintf("%X", msg.PoolID))
	if from != nil {
		res.AddTag("from", from.String())
	} else {
		res.AddTag("from", "")
	}
	res.AddTag("value", strconv.FormatUint(value, 10))

	splitter.GetLogger(ctx).Info("deposit",
		"pool", fmt.Sprintf("%X", msg.PoolID),
		"from", from,
		"value", value)
	depositsCnt.Inc()
	depositedAmount.Add(float64(value))

	return res, nil
}

func (h DepositHandler) validate(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*DepositMsg, uint64, error) {
	var msg DepositMsg
	if err := splitter.LoadMsg(tx, &msg); err != nil {
		return nil, 0, errors.Wrap(err, "load msg")
	}
	if err := h.bucket.Has(db, msg.PoolID); err != nil {
		return nil, 0, errors.Wrap(err, "pool")
	}
	value := splitter.GetCallValue(ctx)
	if value == 0 {
		return nil, 0, errors.Wrap(ErrZeroShare, "deposit requires value")
	}
	return &msg, value, nil
}

// CalculatePayoutHandler returns the payout plan over the current pool
// balance. It never changes the state.
type CalculatePayoutHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   ledger.Controller
}

var _ splitter.Handler = CalculatePayoutHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CalculatePayoutHandler) Check(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.CheckResult, error) {
	if _, err := h.plan(ctx, db, tx); err != nil {
		return nil, err
	}
	return &splitter.CheckResult{GasAllocated: calculatePayoutCost}, nil
}

// Deliver returns the serialized PayoutPlan as the result data.
func (h CalculatePayoutHandler) Deliver(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.DeliverResult, error) {
	plan, err := h.plan(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	raw, err := proto.Marshal(plan)
	if err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return &splitter.DeliverResult{Data: raw}, nil
}

func (h CalculatePayoutHandler) plan(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*PayoutPlan, error) {
	var msg CalculatePayoutMsg
	if err := splitter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	var pool Pool
	if err := h.bucket.One(db, msg.PoolID, &pool); err != nil {
		return nil, errors.Wrap(err, "cannot load pool")
	}
	if err := requireAuthority(ctx, h.auth, &pool); err != nil {
		return nil, err
	}
	balance, err := h.ctrl.Balance(db, PoolAddress(msg.PoolID))
	if err != nil {
		return nil, errors.Wrap(err, "pool balance")
	}
	entries, err := CalculatePayout(balance, pool.Payees)
	if err != nil {
		return nil, err
	}
	return &PayoutPlan{Entries: entries}, nil
}

// TriggerPayoutHandler distributes the pool balance between the payees.
type TriggerPayoutHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   ledger.Controller
}

var _ splitter.Handler = TriggerPayoutHandler{}

// Check verifies the caller is the pool authority and the pool is not
// running a payout. The cost depends on the number of payees.
func (h TriggerPayoutHandler) Check(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.CheckResult, error) {
	_, pool, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if pool.Locked {
		return nil, ErrReentrancyGuardLocked
	}
	cost := triggerPayoutCost + payeeTransferCost*int64(len(pool.Payees))
	return &splitter.CheckResult{GasAllocated: cost}, nil
}

// Deliver locks the pool, transfers the shares in payee order and
// releases the lock. The first failing transfer aborts the payout.
// Transfers done before the failure are not reverted.
func (h TriggerPayoutHandler) Deliver(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (res *splitter.DeliverResult, err error) {
	msg, pool, err := h.validate(ctx, db, tx)
	if err != nil {
		splitter.GetLogger(ctx).Error("payout rejected", "err", err)
		failuresCnt.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}
	poolID := fmt.Sprintf("%X", msg.PoolID)
	log := splitter.GetLogger(ctx).With("pool", poolID)

	release, err := acquireLock(db, h.bucket, msg.PoolID)
	if err != nil {
		log.Error("payout rejected", "err", err)
		failuresCnt.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}
	defer func() {
		if rerr := release(); rerr != nil {
			log.Error("cannot release payout lock", "err", rerr)
			if err == nil {
				err = errors.Wrap(rerr, "release lock")
			} else {
				err = errors.Wrapf(err, "release lock: %s", rerr)
			}
			res = nil
		}
		if err != nil {
			failuresCnt.WithLabelValues(failureReason(err)).Inc()
		}
	}()

	poolAddr := PoolAddress(msg.PoolID)
	balance, err := h.ctrl.Balance(db, poolAddr)
	if err != nil {
		return nil, errors.Wrap(err, "pool balance")
	}
	entries, err := CalculatePayout(balance, pool.Payees)
	if err != nil {
		log.Error("payout rejected", "err", err)
		return nil, err
	}

	res = &splitter.DeliverResult{}
	res.AddTag("action", "payout")
	res.AddTag("pool", poolID)
	for i, e := range entries {
		if err := h.ctrl.Transfer(ctx, db, poolAddr, e.Payee, e.Amount); err != nil {
			log.Error("payout transfer failed", "payee", e.Payee, "amount", e.Amount, "err", err)
			return nil, errors.Wrapf(ErrTransferFailed, "payee #%d %s: %s", i, e.Payee, err)
		}
		log.Info("payout transfer", "payee", e.Payee, "amount", e.Amount)
		res.AddTag("payee", e.Payee.String())
	}

	distributionsCnt.Inc()
	distributedAmount.Add(float64(balance))
	if res.Data, err = proto.Marshal(&PayoutPlan{Entries: entries}); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return res, nil
}

// validate loads the message and the pool, and requires the pool authority
// to be authenticated.
func (h TriggerPayoutHandler) validate(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*TriggerPayoutMsg, *Pool, error) {
	var msg TriggerPayoutMsg
	if err := splitter.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var pool Pool
	if err := h.bucket.One(db, msg.PoolID, &pool); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load pool")
	}
	if err := requireAuthority(ctx, h.auth, &pool); err != nil {
		return nil, nil, err
	}
	return &msg, &pool, nil
}
