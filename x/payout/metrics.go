package payout

import (
	"github.com/iov-one/splitter/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	depositsCnt = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "splitter",
		Subsystem: "payout",
		Name:      "deposits_total",
		Help:      "Number of deposits to all pools.",
	})
	depositedAmount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "splitter",
		Subsystem: "payout",
		Name:      "deposited_amount_total",
		Help:      "Value deposited to all pools.",
	})
	distributionsCnt = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "splitter",
		Subsystem: "payout",
		Name:      "distributions_total",
		Help:      "Number of completed payouts.",
	})
	distributedAmount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "splitter",
		Subsystem: "payout",
		Name:      "distributed_amount_total",
		Help:      "Value transferred to payees.",
	})
	failuresCnt = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "splitter",
		Subsystem: "payout",
		Name:      "failures_total",
		Help:      "Number of rejected payouts by reason.",
	}, []string{"reason"})
)

// failureReason returns the metric label for a payout error.
func failureReason(err error) string {
	switch {
	case ErrUnauthorized.Is(err):
		return "unauthorized"
	case ErrReentrancyGuardLocked.Is(err):
		return "locked"
	case ErrNoPayees.Is(err):
		return "no_payees"
	case ErrZeroShare.Is(err):
		return "zero_share"
	case ErrTransferFailed.Is(err):
		return "transfer"
	case errors.ErrNotFound.Is(err):
		return "not_found"
	case errors.ErrMsg.Is(err), errors.ErrInput.Is(err), errors.ErrEmpty.Is(err):
		return "invalid_msg"
	default:
		return "other"
	}
}
