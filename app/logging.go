package app

import (
	"time"

	"github.com/iov-one/splitter"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ splitter.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (Logging) Check(ctx splitter.Context, store splitter.KVStore, tx splitter.Tx, next splitter.Checker) (*splitter.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logCall(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (Logging) Deliver(ctx splitter.Context, store splitter.KVStore, tx splitter.Tx, next splitter.Deliverer) (*splitter.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logCall(ctx, tx, start, resLog, err, false)
	return res, err
}

// logCall writes the message path, the duration and the result of the call.
// An entry is written even for an empty message.
func logCall(ctx splitter.Context, tx splitter.Tx, start time.Time, msg string, err error, lowPrio bool) {
	logger := splitter.GetLogger(ctx).With(
		"path", splitter.GetPath(tx),
		"duration", time.Since(start)/time.Microsecond)

	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
