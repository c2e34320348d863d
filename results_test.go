package splitter

import (
	"testing"

	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/weavetest/assert"
)

func TestDeliverOrError(t *testing.T) {
	res := &DeliverResult{Data: []byte{1}, Log: "ok"}
	res.AddTag("payout.pool", "0000000000000001")

	resp := DeliverOrError(res, nil, false)
	assert.Equal(t, uint32(0), resp.Code)
	assert.Equal(t, "ok", resp.Log)
	assert.Equal(t, 1, len(resp.Tags))
	assert.Equal(t, "payout.pool", string(resp.Tags[0].Key))

	resp = DeliverOrError(nil, errors.Wrap(errors.ErrUnauthorized, "payout"), false)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), resp.Code)
	assert.Equal(t, "cannot deliver tx: payout: unauthorized", resp.Log)
}

func TestCheckOrError(t *testing.T) {
	res := CheckResult{GasAllocated: 100, Log: "fine"}
	resp := CheckOrError(&res, nil, false)
	assert.Equal(t, uint32(0), resp.Code)
	assert.Equal(t, int64(100), resp.GasWanted)

	// internal errors are redacted outside of the debug mode
	resp = CheckOrError(nil, errors.Wrap(errDemo, "boom"), false)
	assert.Equal(t, uint32(1), resp.Code)
	assert.Equal(t, "cannot check tx: internal error", resp.Log)
}

type demoError struct{}

func (demoError) Error() string { return "demo" }

var errDemo error = demoError{}
