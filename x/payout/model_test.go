package payout

import (
	"testing"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/weavetest"
	"github.com/iov-one/splitter/weavetest/assert"
)

func TestPoolValidation(t *testing.T) {
	cases := map[string]struct {
		model      *Pool
		wantErrors map[string]*errors.Error
	}{
		"valid model": {
			model: &Pool{
				Metadata:  &splitter.Metadata{Schema: 1},
				Payees:    []splitter.Address{weavetest.RandomAddr(t), weavetest.RandomAddr(t)},
				Authority: weavetest.RandomAddr(t),
			},
			wantErrors: map[string]*errors.Error{
				"Metadata":  nil,
				"Authority": nil,
				"Payees.0":  nil,
				"Payees.1":  nil,
			},
		},
		"no payees is a valid pool": {
			model: &Pool{
				Metadata:  &splitter.Metadata{Schema: 1},
				Authority: weavetest.RandomAddr(t),
				Locked:    true,
			},
			wantErrors: map[string]*errors.Error{
				"Metadata":  nil,
				"Authority": nil,
			},
		},
		"invalid fields": {
			model: &Pool{
				Payees: []splitter.Address{weavetest.RandomAddr(t), splitter.Address("short")},
			},
			wantErrors: map[string]*errors.Error{
				"Metadata":  errors.ErrMetadata,
				"Authority": errors.ErrEmpty,
				"Payees.0":  nil,
				"Payees.1":  errors.ErrInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.model.Validate()
			for field, want := range tc.wantErrors {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestPoolAddressIsUniquePerPool(t *testing.T) {
	a := PoolAddress(weavetest.SequenceID(1))
	b := PoolAddress(weavetest.SequenceID(2))
	assert.Nil(t, a.Validate())
	if a.Equals(b) {
		t.Fatal("pools must not share an account")
	}
	assert.Equal(t, a, PoolAddress(weavetest.SequenceID(1)))
}

func TestMessageValidation(t *testing.T) {
	cases := map[string]struct {
		msg        splitter.Msg
		wantErrors map[string]*errors.Error
	}{
		"valid create": {
			msg: &CreatePoolMsg{
				Payees:    []splitter.Address{weavetest.RandomAddr(t)},
				Authority: weavetest.RandomAddr(t),
			},
			wantErrors: map[string]*errors.Error{
				"Authority": nil,
				"Payees.0":  nil,
			},
		},
		"create with an invalid payee": {
			msg: &CreatePoolMsg{
				Payees:    []splitter.Address{splitter.Address("x")},
				Authority: weavetest.RandomAddr(t),
			},
			wantErrors: map[string]*errors.Error{
				"Authority": nil,
				"Payees.0":  errors.ErrInput,
			},
		},
		"create without authority": {
			msg: &CreatePoolMsg{},
			wantErrors: map[string]*errors.Error{
				"Authority": errors.ErrEmpty,
			},
		},
		"valid deposit": {
			msg:        &DepositMsg{PoolID: weavetest.SequenceID(1)},
			wantErrors: map[string]*errors.Error{"PoolID": nil},
		},
		"deposit without pool": {
			msg:        &DepositMsg{},
			wantErrors: map[string]*errors.Error{"PoolID": errors.ErrEmpty},
		},
		"calculate with invalid pool": {
			msg:        &CalculatePayoutMsg{PoolID: []byte("abc")},
			wantErrors: map[string]*errors.Error{"PoolID": errors.ErrInput},
		},
		"valid trigger": {
			msg:        &TriggerPayoutMsg{PoolID: weavetest.SequenceID(3)},
			wantErrors: map[string]*errors.Error{"PoolID": nil},
		},
		"trigger without pool": {
			msg:        &TriggerPayoutMsg{},
			wantErrors: map[string]*errors.Error{"PoolID": errors.ErrEmpty},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, want := range tc.wantErrors {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestDepositBeneficiaryIsPoolAccount(t *testing.T) {
	id := weavetest.SequenceID(4)
	msg := DepositMsg{PoolID: id}
	assert.Equal(t, PoolAddress(id), msg.Beneficiary())
}
