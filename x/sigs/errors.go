package sigs

import "github.com/iov-one/splitter/errors"

// x/sigs reserves 20 ~ 29.
var (
	// ErrInvalidSequence is returned when a signature nonce does not match
	// the stored one.
	ErrInvalidSequence = errors.Register(20, "invalid sequence number")
)
