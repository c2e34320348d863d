package ledger

import (
	"context"
	"testing"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/store"
	"github.com/iov-one/splitter/weavetest"
	"github.com/iov-one/splitter/weavetest/assert"
)

type valueTx struct {
	weavetest.Tx
	value uint64
}

func (tx *valueTx) GetValue() uint64 { return tx.value }

type payableMsg struct {
	weavetest.Msg
	to splitter.Address
}

func (m *payableMsg) Beneficiary() splitter.Address { return m.to }

// valueHandler records the call value and the beneficiary balance seen
// by the handler.
type valueHandler struct {
	ctrl    Controller
	to      splitter.Address
	err     error
	value   uint64
	balance uint64
}

func (h *valueHandler) Check(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.CheckResult, error) {
	if err := h.record(ctx, db); err != nil {
		return nil, err
	}
	return &splitter.CheckResult{}, nil
}

func (h *valueHandler) Deliver(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.DeliverResult, error) {
	if err := h.record(ctx, db); err != nil {
		return nil, err
	}
	return &splitter.DeliverResult{}, nil
}

func (h *valueHandler) record(ctx splitter.Context, db splitter.KVStore) error {
	h.value = splitter.GetCallValue(ctx)
	b, err := h.ctrl.Balance(db, h.to)
	if err != nil {
		return err
	}
	h.balance = b
	return h.err
}

func TestValueDecorator(t *testing.T) {
	payer := weavetest.NewCondition()
	target := weavetest.RandomAddr(t)

	cases := map[string]struct {
		signer      splitter.Condition
		tx          splitter.Tx
		handlerErr  error
		wantErr     *errors.Error
		wantValue   uint64
		wantPayer   uint64
		wantTarget  uint64
		wantHandled bool
	}{
		"value is moved to the beneficiary": {
			signer:      payer,
			tx:          &valueTx{Tx: weavetest.Tx{Msg: &payableMsg{to: target}}, value: 30},
			wantValue:   30,
			wantPayer:   70,
			wantTarget:  30,
			wantHandled: true,
		},
		"zero value passes through": {
			signer:      payer,
			tx:          &valueTx{Tx: weavetest.Tx{Msg: &payableMsg{to: target}}},
			wantPayer:   100,
			wantHandled: true,
		},
		"transaction without value support": {
			signer:      payer,
			tx:          &weavetest.Tx{Msg: &weavetest.Msg{}},
			wantPayer:   100,
			wantHandled: true,
		},
		"value sent to a non payable message": {
			signer:    payer,
			tx:        &valueTx{Tx: weavetest.Tx{Msg: &weavetest.Msg{}}, value: 1},
			wantErr:   errors.ErrMsg,
			wantPayer: 100,
		},
		"value without a signer": {
			tx:        &valueTx{Tx: weavetest.Tx{Msg: &payableMsg{to: target}}, value: 1},
			wantErr:   errors.ErrUnauthorized,
			wantPayer: 100,
		},
		"payer cannot afford the value": {
			signer:    payer,
			tx:        &valueTx{Tx: weavetest.Tx{Msg: &payableMsg{to: target}}, value: 101},
			wantErr:   errors.ErrInsufficientAmount,
			wantPayer: 100,
		},
		"failing handler does not keep the value": {
			signer:      payer,
			tx:          &valueTx{Tx: weavetest.Tx{Msg: &payableMsg{to: target}}, value: 30},
			handlerErr:  errors.ErrState,
			wantErr:     errors.ErrState,
			wantValue:   30,
			wantPayer:   100,
			wantHandled: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctrl := NewController()
			auth := &weavetest.Auth{Signer: tc.signer}
			d := NewValueDecorator(auth, ctrl)

			// Check and Deliver behave the same way.
			runs := map[string]func(splitter.Context, splitter.KVStore, *valueHandler) error{
				"check": func(ctx splitter.Context, db splitter.KVStore, h *valueHandler) error {
					_, err := d.Check(ctx, db, tc.tx, h)
					return err
				},
				"deliver": func(ctx splitter.Context, db splitter.KVStore, h *valueHandler) error {
					_, err := d.Deliver(ctx, db, tc.tx, h)
					return err
				},
			}
			for runName, run := range runs {
				t.Run(runName, func(t *testing.T) {
					db := store.MemStore()
					assert.Nil(t, ctrl.Mint(db, payer.Address(), 100))

					h := &valueHandler{ctrl: ctrl, to: target, err: tc.handlerErr}
					err := run(context.Background(), db, h)
					assert.IsErr(t, tc.wantErr, err)

					if tc.wantHandled {
						assert.Equal(t, tc.wantValue, h.value)
						// The handler sees the value already credited.
						assert.Equal(t, tc.wantValue, h.balance)
					}
					assertBalance(t, ctrl, db, payer.Address(), tc.wantPayer)
					assertBalance(t, ctrl, db, target, tc.wantTarget)
				})
			}
		})
	}
}
