package splittertest

import "github.com/iov-one/splitter"

// Handler is a handler test double that returns configured results and
// counts the calls.
type Handler struct {
	checkCall   int
	CheckResult splitter.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult splitter.DeliverResult
	DeliverErr    error

	// WriteKey if set is written to the store with WriteValue on every
	// deliver call.
	WriteKey   []byte
	WriteValue []byte
}

var _ splitter.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx splitter.Context, db splitter.KVStore, tx splitter.Tx) (*splitter.DeliverResult, error) {
	h.deliverCall++
	if h.WriteKey != nil {
		if err := db.Set(h.WriteKey, h.WriteValue); err != nil {
			return nil, err
		}
	}
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
