package payout

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/gconf"
	"github.com/iov-one/splitter/store"
	"github.com/iov-one/splitter/weavetest"
	"github.com/iov-one/splitter/weavetest/assert"
	"github.com/iov-one/splitter/x/ledger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/tendermint/tendermint/libs/log"
)

var testAuth = &weavetest.CtxAuth{Key: "auth"}

type valueTx struct {
	weavetest.Tx
	value uint64
}

func (tx *valueTx) GetValue() uint64 { return tx.value }

func TestCreatePool(t *testing.T) {
	authority := weavetest.RandomAddr(t)
	payees := []splitter.Address{weavetest.RandomAddr(t), weavetest.RandomAddr(t), weavetest.RandomAddr(t)}

	db := store.MemStore()
	h := CreatePoolHandler{auth: testAuth, bucket: NewPoolBucket()}
	tx := &weavetest.Tx{Msg: &CreatePoolMsg{Payees: payees, Authority: authority}}

	cres, err := h.Check(context.Background(), db, tx)
	assert.Nil(t, err)
	assert.Equal(t, createPoolCost, cres.GasAllocated)

	for i := uint64(1); i <= 2; i++ {
		res, err := h.Deliver(context.Background(), db, tx)
		assert.Nil(t, err)
		assert.Equal(t, weavetest.SequenceID(i), res.Data)
		assert.Equal(t, "create_pool", tagValue(res, "action"))

		pool := loadPool(t, db, res.Data)
		assert.Equal(t, payees, pool.Payees)
		assert.Equal(t, authority, pool.Authority)
		assert.Equal(t, false, pool.Locked)
	}

	// A configured limit applies to new pools only.
	assert.Nil(t, gconf.Save(db, packageName, &Configuration{
		Metadata:  &splitter.Metadata{Schema: 1},
		MaxPayees: 2,
	}))
	_, err = h.Check(context.Background(), db, tx)
	assert.FieldError(t, err, "Payees", errors.ErrInput)
	_, err = h.Deliver(context.Background(), db, tx)
	assert.FieldError(t, err, "Payees", errors.ErrInput)

	small := &weavetest.Tx{Msg: &CreatePoolMsg{Payees: payees[:2], Authority: authority}}
	_, err = h.Deliver(context.Background(), db, small)
	assert.Nil(t, err)

	invalid := &weavetest.Tx{Msg: &CreatePoolMsg{Payees: payees[:1]}}
	_, err = h.Deliver(context.Background(), db, invalid)
	assert.FieldError(t, err, "Authority", errors.ErrEmpty)
}

func TestDeposit(t *testing.T) {
	depositor := weavetest.NewCondition()
	authority := weavetest.RandomAddr(t)

	cases := map[string]struct {
		poolID        []byte
		signer        splitter.Condition
		value         uint64
		wantErr       *errors.Error
		wantDepositor uint64
		wantPool      uint64
	}{
		"value is credited to the pool": {
			poolID:        weavetest.SequenceID(1),
			signer:        depositor,
			value:         1000,
			wantDepositor: 9000,
			wantPool:      1000,
		},
		"zero value is rejected": {
			poolID:        weavetest.SequenceID(1),
			signer:        depositor,
			value:         0,
			wantErr:       ErrZeroShare,
			wantDepositor: 10000,
		},
		"unknown pool does not keep the value": {
			poolID:        weavetest.SequenceID(2),
			signer:        depositor,
			value:         1000,
			wantErr:       errors.ErrNotFound,
			wantDepositor: 10000,
		},
		"depositor cannot afford the value": {
			poolID:        weavetest.SequenceID(1),
			signer:        depositor,
			value:         10001,
			wantErr:       errors.ErrInsufficientAmount,
			wantDepositor: 10000,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := ledger.NewController()
			assert.Nil(t, ctrl.Mint(db, depositor.Address(), 10000))
			createTestPool(t, db, authority, weavetest.RandomAddr(t))

			ctx := testAuth.SetConditions(context.Background(), tc.signer)
			tx := &valueTx{Tx: weavetest.Tx{Msg: &DepositMsg{PoolID: tc.poolID}}, value: tc.value}
			d := ledger.NewValueDecorator(testAuth, ctrl)
			h := DepositHandler{auth: testAuth, bucket: NewPoolBucket()}

			_, err := d.Check(ctx, db.CacheWrap(), tx, h)
			assert.IsErr(t, tc.wantErr, err)

			res, err := d.Deliver(ctx, db, tx, h)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, "deposit", tagValue(res, "action"))
				assert.Equal(t, depositor.Address().String(), tagValue(res, "from"))
				assert.Equal(t, "1000", tagValue(res, "value"))
			}

			assertBalance(t, ctrl, db, depositor.Address(), tc.wantDepositor)
			assertBalance(t, ctrl, db, PoolAddress(tc.poolID), tc.wantPool)
		})
	}
}

func TestPayoutEndToEnd(t *testing.T) {
	depositor := weavetest.NewCondition()
	authority := weavetest.NewCondition()
	p0 := weavetest.RandomAddr(t)
	p1 := weavetest.RandomAddr(t)

	db := store.MemStore()
	ctrl := ledger.NewController()
	assert.Nil(t, ctrl.Mint(db, depositor.Address(), 2000000))

	poolID := createTestPool(t, db, authority.Address(), p0, p1)
	deposit(t, db, ctrl, depositor, poolID, 1000000)
	deposit(t, db, ctrl, depositor, poolID, 121)
	assertBalance(t, ctrl, db, PoolAddress(poolID), 1000121)

	authCtx := testAuth.SetConditions(context.Background(), authority)

	calc := CalculatePayoutHandler{auth: testAuth, bucket: NewPoolBucket(), ctrl: ctrl}
	calcTx := &weavetest.Tx{Msg: &CalculatePayoutMsg{PoolID: poolID}}
	want := &PayoutPlan{Entries: []*PayoutEntry{
		{Payee: p0, Amount: 500061},
		{Payee: p1, Amount: 500060},
	}}
	// Calculating twice gives the same plan and changes nothing.
	for i := 0; i < 2; i++ {
		res, err := calc.Deliver(authCtx, db, calcTx)
		assert.Nil(t, err)
		var plan PayoutPlan
		assert.Nil(t, proto.Unmarshal(res.Data, &plan))
		assert.Equal(t, want, &plan)
		assertBalance(t, ctrl, db, PoolAddress(poolID), 1000121)
		assert.Equal(t, false, loadPool(t, db, poolID).Locked)
	}

	trigger := TriggerPayoutHandler{auth: testAuth, bucket: NewPoolBucket(), ctrl: ctrl}
	triggerTx := &weavetest.Tx{Msg: &TriggerPayoutMsg{PoolID: poolID}}

	cres, err := trigger.Check(authCtx, db, triggerTx)
	assert.Nil(t, err)
	assert.Equal(t, triggerPayoutCost+2*payeeTransferCost, cres.GasAllocated)

	res, err := trigger.Deliver(authCtx, db, triggerTx)
	assert.Nil(t, err)
	assert.Equal(t, "payout", tagValue(res, "action"))
	assert.Equal(t, []string{p0.String(), p1.String()}, tagValues(res, "payee"))

	assertBalance(t, ctrl, db, p0, 500061)
	assertBalance(t, ctrl, db, p1, 500060)
	assertBalance(t, ctrl, db, PoolAddress(poolID), 0)
	assertBalance(t, ctrl, db, depositor.Address(), 2000000-1000121)
	assert.Equal(t, false, loadPool(t, db, poolID).Locked)

	// The pool is empty now. Nothing is left to split, but the lock
	// is released and the pool accepts more deposits.
	_, err = trigger.Deliver(authCtx, db, triggerTx)
	assert.IsErr(t, ErrZeroShare, err)
	assert.Equal(t, false, loadPool(t, db, poolID).Locked)

	deposit(t, db, ctrl, depositor, poolID, 3)
	_, err = trigger.Deliver(authCtx, db, triggerTx)
	assert.Nil(t, err)
	assertBalance(t, ctrl, db, p0, 500063)
	assertBalance(t, ctrl, db, p1, 500061)
}

func TestPayoutRequiresAuthority(t *testing.T) {
	authority := weavetest.NewCondition()
	stranger := weavetest.NewCondition()
	p0 := weavetest.RandomAddr(t)

	for _, locked := range []bool{false, true} {
		db := store.MemStore()
		ctrl := ledger.NewController()
		poolID := createTestPool(t, db, authority.Address(), p0)
		assert.Nil(t, ctrl.Mint(db, PoolAddress(poolID), 100))
		if locked {
			assert.Nil(t, setLock(db, NewPoolBucket(), poolID, true))
		}

		calc := CalculatePayoutHandler{auth: testAuth, bucket: NewPoolBucket(), ctrl: ctrl}
		trigger := TriggerPayoutHandler{auth: testAuth, bucket: NewPoolBucket(), ctrl: ctrl}

		for _, ctx := range []splitter.Context{
			context.Background(),
			testAuth.SetConditions(context.Background(), stranger),
		} {
			_, err := calc.Check(ctx, db, &weavetest.Tx{Msg: &CalculatePayoutMsg{PoolID: poolID}})
			assert.IsErr(t, ErrUnauthorized, err)
			_, err = calc.Deliver(ctx, db, &weavetest.Tx{Msg: &CalculatePayoutMsg{PoolID: poolID}})
			assert.IsErr(t, ErrUnauthorized, err)

			tx := &weavetest.Tx{Msg: &TriggerPayoutMsg{PoolID: poolID}}
			_, err = trigger.Check(ctx, db, tx)
			assert.IsErr(t, ErrUnauthorized, err)
			_, err = trigger.Deliver(ctx, db, tx)
			assert.IsErr(t, ErrUnauthorized, err)

			assertBalance(t, ctrl, db, PoolAddress(poolID), 100)
			assertBalance(t, ctrl, db, p0, 0)
			assert.Equal(t, locked, loadPool(t, db, poolID).Locked)
		}
	}
}

func TestPayoutOfLockedPool(t *testing.T) {
	authority := weavetest.NewCondition()
	p0 := weavetest.RandomAddr(t)

	db := store.MemStore()
	ctrl := ledger.NewController()
	poolID := createTestPool(t, db, authority.Address(), p0)
	assert.Nil(t, ctrl.Mint(db, PoolAddress(poolID), 100))
	assert.Nil(t, setLock(db, NewPoolBucket(), poolID, true))

	ctx := testAuth.SetConditions(context.Background(), authority)
	trigger := TriggerPayoutHandler{auth: testAuth, bucket: NewPoolBucket(), ctrl: ctrl}
	tx := &weavetest.Tx{Msg: &TriggerPayoutMsg{PoolID: poolID}}

	_, err := trigger.Check(ctx, db, tx)
	assert.IsErr(t, ErrReentrancyGuardLocked, err)
	_, err = trigger.Deliver(ctx, db, tx)
	assert.IsErr(t, ErrReentrancyGuardLocked, err)

	assertBalance(t, ctrl, db, PoolAddress(poolID), 100)
	assertBalance(t, ctrl, db, p0, 0)
	assert.Equal(t, true, loadPool(t, db, poolID).Locked)

	// Calculation does not depend on the lock.
	calc := CalculatePayoutHandler{auth: testAuth, bucket: NewPoolBucket(), ctrl: ctrl}
	_, err = calc.Deliver(ctx, db, &weavetest.Tx{Msg: &CalculatePayoutMsg{PoolID: poolID}})
	assert.Nil(t, err)
}

func TestLockIsReleasedAfterCalculatorError(t *testing.T) {
	authority := weavetest.NewCondition()

	cases := map[string]struct {
		payees  int
		balance uint64
		wantErr *errors.Error
	}{
		"no payees": {
			payees:  0,
			balance: 100,
			wantErr: ErrNoPayees,
		},
		"empty pool": {
			payees:  2,
			balance: 0,
			wantErr: ErrZeroShare,
		},
		"balance too small to split": {
			payees:  3,
			balance: 2,
			wantErr: ErrZeroShare,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := ledger.NewController()
			payees := make([]splitter.Address, tc.payees)
			for i := range payees {
				payees[i] = weavetest.RandomAddr(t)
			}
			poolID := createTestPool(t, db, authority.Address(), payees...)
			if tc.balance > 0 {
				assert.Nil(t, ctrl.Mint(db, PoolAddress(poolID), tc.balance))
			}

			ctx := testAuth.SetConditions(context.Background(), authority)
			trigger := TriggerPayoutHandler{auth: testAuth, bucket: NewPoolBucket(), ctrl: ctrl}
			_, err := trigger.Deliver(ctx, db, &weavetest.Tx{Msg: &TriggerPayoutMsg{PoolID: poolID}})
			assert.IsErr(t, tc.wantErr, err)

			assert.Equal(t, false, loadPool(t, db, poolID).Locked)
			assertBalance(t, ctrl, db, PoolAddress(poolID), tc.balance)
		})
	}
}

func TestLockIsReleasedAfterTransferError(t *testing.T) {
	authority := weavetest.NewCondition()
	p0 := weavetest.RandomAddr(t)
	p1 := weavetest.RandomAddr(t)
	p2 := weavetest.RandomAddr(t)

	// p1 refuses any payment.
	ctrl := ledger.NewController(func(ctx splitter.Context, db splitter.KVStore, src, dst splitter.Address, amount uint64) error {
		if dst.Equals(p1) {
			return errors.Wrap(errors.ErrState, "payee does not accept payments")
		}
		return nil
	})

	db := store.MemStore()
	poolID := createTestPool(t, db, authority.Address(), p0, p1, p2)
	assert.Nil(t, ctrl.Mint(db, PoolAddress(poolID), 301))

	ctx := testAuth.SetConditions(context.Background(), authority)
	trigger := TriggerPayoutHandler{auth: testAuth, bucket: NewPoolBucket(), ctrl: ctrl}
	_, err := trigger.Deliver(ctx, db, &weavetest.Tx{Msg: &TriggerPayoutMsg{PoolID: poolID}})
	assert.IsErr(t, ErrTransferFailed, err)

	// The transfer to p0 was executed before the failure and stands.
	assertBalance(t, ctrl, db, p0, 101)
	assertBalance(t, ctrl, db, p1, 0)
	assertBalance(t, ctrl, db, p2, 0)
	assertBalance(t, ctrl, db, PoolAddress(poolID), 200)
	assert.Equal(t, false, loadPool(t, db, poolID).Locked)
}

func TestReleaseFailureIsReported(t *testing.T) {
	authority := weavetest.NewCondition()
	p0 := weavetest.RandomAddr(t)
	p1 := weavetest.RandomAddr(t)

	// Paying p1 fails and leaves the store unable to write, so the lock
	// cannot be released either.
	var broken bool
	ctrl := ledger.NewController(func(ctx splitter.Context, db splitter.KVStore, src, dst splitter.Address, amount uint64) error {
		if dst.Equals(p1) {
			broken = true
			return errors.Wrap(errors.ErrState, "payee does not accept payments")
		}
		return nil
	})

	mem := store.MemStore()
	poolID := createTestPool(t, mem, authority.Address(), p0, p1)
	assert.Nil(t, ctrl.Mint(mem, PoolAddress(poolID), 10))
	db := brokenStore{KVStore: mem, broken: &broken}

	var logs bytes.Buffer
	ctx := splitter.WithLogger(context.Background(), log.NewTMLogger(&logs))
	ctx = testAuth.SetConditions(ctx, authority)
	trigger := TriggerPayoutHandler{auth: testAuth, bucket: NewPoolBucket(), ctrl: ctrl}
	res, err := trigger.Deliver(ctx, db, &weavetest.Tx{Msg: &TriggerPayoutMsg{PoolID: poolID}})
	assert.IsErr(t, ErrTransferFailed, err)
	assert.Nil(t, res)
	if !strings.Contains(err.Error(), "release lock") {
		t.Fatalf("release failure missing in %q", err)
	}
	if !strings.Contains(logs.String(), "cannot release payout lock") {
		t.Fatalf("release failure not logged: %s", logs.String())
	}
	assert.Equal(t, true, loadPool(t, mem, poolID).Locked)
}

// brokenStore rejects all writes once broken is set.
type brokenStore struct {
	splitter.KVStore
	broken *bool
}

func (s brokenStore) Set(key, value []byte) error {
	if *s.broken {
		return errors.Wrap(errors.ErrDatabase, "disk full")
	}
	return s.KVStore.Set(key, value)
}

func TestRejectedPayoutIsCounted(t *testing.T) {
	authority := weavetest.NewCondition()
	db := store.MemStore()
	poolID := createTestPool(t, db, authority.Address(), weavetest.RandomAddr(t))
	trigger := TriggerPayoutHandler{auth: testAuth, bucket: NewPoolBucket(), ctrl: ledger.NewController()}

	cases := map[string]struct {
		signer     splitter.Condition
		poolID     []byte
		wantErr    *errors.Error
		wantReason string
	}{
		"missing pool": {
			signer:     authority,
			poolID:     weavetest.SequenceID(99),
			wantErr:    errors.ErrNotFound,
			wantReason: "not_found",
		},
		"not the authority": {
			signer:     weavetest.NewCondition(),
			poolID:     poolID,
			wantErr:    errors.ErrUnauthorized,
			wantReason: "unauthorized",
		},
		"empty pool": {
			signer:     authority,
			poolID:     poolID,
			wantErr:    ErrZeroShare,
			wantReason: "zero_share",
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			counter := failuresCnt.WithLabelValues(tc.wantReason)
			before := testutil.ToFloat64(counter)

			ctx := testAuth.SetConditions(context.Background(), tc.signer)
			_, err := trigger.Deliver(ctx, db, &weavetest.Tx{Msg: &TriggerPayoutMsg{PoolID: tc.poolID}})
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestNestedPayoutIsRejected(t *testing.T) {
	authority := weavetest.NewCondition()
	p0 := weavetest.RandomAddr(t)
	p1 := weavetest.RandomAddr(t)

	cases := map[string]struct {
		// propagate makes the receiving hook fail with the nested
		// payout error.
		propagate bool
		wantErr   *errors.Error
		wantP0    uint64
		wantP1    uint64
		wantPool  uint64
	}{
		"payee ignores the rejected reentry": {
			propagate: false,
			wantP0:    51,
			wantP1:    50,
			wantPool:  0,
		},
		"payee fails on the rejected reentry": {
			propagate: true,
			wantErr:   ErrTransferFailed,
			wantP0:    0,
			wantP1:    0,
			wantPool:  101,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			poolID := createTestPool(t, db, authority.Address(), p0, p1)
			triggerTx := &weavetest.Tx{Msg: &TriggerPayoutMsg{PoolID: poolID}}

			var (
				trigger   TriggerPayoutHandler
				nestedErr error
				nested    int
			)
			// Receiving funds by p0 calls back into the payout
			// of the same pool.
			ctrl := ledger.NewController(func(ctx splitter.Context, db splitter.KVStore, src, dst splitter.Address, amount uint64) error {
				if !dst.Equals(p0) {
					return nil
				}
				nested++
				_, nestedErr = trigger.Deliver(ctx, db, triggerTx)
				if tc.propagate {
					return nestedErr
				}
				return nil
			})
			trigger = TriggerPayoutHandler{auth: testAuth, bucket: NewPoolBucket(), ctrl: ctrl}
			assert.Nil(t, ctrl.Mint(db, PoolAddress(poolID), 101))

			ctx := testAuth.SetConditions(context.Background(), authority)
			_, err := trigger.Deliver(ctx, db, triggerTx)
			assert.IsErr(t, tc.wantErr, err)

			assert.Equal(t, 1, nested)
			assert.IsErr(t, ErrReentrancyGuardLocked, nestedErr)

			assertBalance(t, ctrl, db, p0, tc.wantP0)
			assertBalance(t, ctrl, db, p1, tc.wantP1)
			assertBalance(t, ctrl, db, PoolAddress(poolID), tc.wantPool)
			assert.Equal(t, false, loadPool(t, db, poolID).Locked)
		})
	}
}

// panicController fails every transfer with a panic.
type panicController struct {
	ledger.Controller
}

func (panicController) Transfer(splitter.Context, splitter.KVStore, splitter.Address, splitter.Address, uint64) error {
	panic("ledger is broken")
}

func TestLockIsReleasedOnPanic(t *testing.T) {
	authority := weavetest.NewCondition()

	db := store.MemStore()
	ctrl := panicController{Controller: ledger.NewController()}
	poolID := createTestPool(t, db, authority.Address(), weavetest.RandomAddr(t))
	assert.Nil(t, ctrl.Mint(db, PoolAddress(poolID), 10))

	ctx := testAuth.SetConditions(context.Background(), authority)
	trigger := TriggerPayoutHandler{auth: testAuth, bucket: NewPoolBucket(), ctrl: ctrl}
	assert.Panics(t, func() {
		_, _ = trigger.Deliver(ctx, db, &weavetest.Tx{Msg: &TriggerPayoutMsg{PoolID: poolID}})
	})
	assert.Equal(t, false, loadPool(t, db, poolID).Locked)
}

func TestAcquireLock(t *testing.T) {
	db := store.MemStore()
	bucket := NewPoolBucket()
	poolID := createTestPool(t, db, weavetest.RandomAddr(t))

	release, err := acquireLock(db, bucket, poolID)
	assert.Nil(t, err)
	assert.Equal(t, true, loadPool(t, db, poolID).Locked)

	_, err = acquireLock(db, bucket, poolID)
	assert.IsErr(t, ErrReentrancyGuardLocked, err)
	assert.Equal(t, true, loadPool(t, db, poolID).Locked)

	assert.Nil(t, release())
	assert.Equal(t, false, loadPool(t, db, poolID).Locked)

	_, err = acquireLock(db, bucket, weavetest.SequenceID(99))
	assert.IsErr(t, errors.ErrNotFound, err)
}

func createTestPool(t testing.TB, db splitter.KVStore, authority splitter.Address, payees ...splitter.Address) []byte {
	t.Helper()
	h := CreatePoolHandler{auth: testAuth, bucket: NewPoolBucket()}
	tx := &weavetest.Tx{Msg: &CreatePoolMsg{Payees: payees, Authority: authority}}
	res, err := h.Deliver(context.Background(), db, tx)
	if err != nil {
		t.Fatalf("cannot create pool: %s", err)
	}
	return res.Data
}

func deposit(t testing.TB, db splitter.KVStore, ctrl ledger.Controller, from splitter.Condition, poolID []byte, value uint64) {
	t.Helper()
	ctx := testAuth.SetConditions(context.Background(), from)
	tx := &valueTx{Tx: weavetest.Tx{Msg: &DepositMsg{PoolID: poolID}}, value: value}
	d := ledger.NewValueDecorator(testAuth, ctrl)
	if _, err := d.Deliver(ctx, db, tx, DepositHandler{auth: testAuth, bucket: NewPoolBucket()}); err != nil {
		t.Fatalf("cannot deposit: %s", err)
	}
}

func loadPool(t testing.TB, db splitter.ReadOnlyKVStore, poolID []byte) *Pool {
	t.Helper()
	var pool Pool
	if err := NewPoolBucket().One(db, poolID, &pool); err != nil {
		t.Fatalf("cannot load pool: %s", err)
	}
	return &pool
}

func assertBalance(t testing.TB, ctrl ledger.Controller, db splitter.ReadOnlyKVStore, addr splitter.Address, want uint64) {
	t.Helper()
	got, err := ctrl.Balance(db, addr)
	if err != nil {
		t.Fatalf("cannot get balance: %s", err)
	}
	if got != want {
		t.Fatalf("want %d balance, got %d", want, got)
	}
}

func tagValue(res *splitter.DeliverResult, key string) string {
	values := tagValues(res, key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func tagValues(res *splitter.DeliverResult, key string) []string {
	var values []string
	for _, kv := range res.Tags {
		if string(kv.Key) == key {
			values = append(values, string(kv.Value))
		}
	}
	return values
}
