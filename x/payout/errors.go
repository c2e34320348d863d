package payout

import (
	"github.com/iov-one/splitter/errors"
)

// ABCI Response Codes
// payout reserves 30 ~ 39.
var (
	ErrNoPayees              = errors.Register(30, "no payees")
	ErrZeroShare             = errors.Register(31, "zero share")
	ErrTransferFailed        = errors.Register(32, "transfer failed")
	ErrReentrancyGuardLocked = errors.Register(33, "reentrancy guard locked")

	// ErrUnauthorized is returned when the caller is not the pool
	// authority.
	ErrUnauthorized = errors.ErrUnauthorized
)
