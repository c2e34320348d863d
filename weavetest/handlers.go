package weavetest

import "github.com/iov-one/splitter"

// Handler is a mock implementation of the splitter.Handler interface.
// It counts calls and returns the configured results.
type Handler struct {
	checkCall   int
	CheckResult splitter.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult splitter.DeliverResult
	DeliverErr    error
}

var _ splitter.Handler = (*Handler)(nil)

// Check returns the configured check result.
func (h *Handler) Check(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

// Deliver returns the configured deliver result.
func (h *Handler) Deliver(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
