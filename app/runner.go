package app

import (
	"sync"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/store"
	"github.com/tendermint/tendermint/libs/log"
)

// GasPolicy decides how much gas a single call is granted and how much the
// storage access costs.
type GasPolicy interface {
	CallGas(db splitter.ReadOnlyKVStore) (limit uint64, costs store.GasCosts, err error)
}

// Runner executes transactions against the application state. Every
// transaction is executed in its own cache wrap with a fresh gas meter. The
// cache wrap is written only when the handler succeeds, so a failed call
// leaves no trace in the state.
//
// Calls are serialised, a Runner is safe for concurrent use.
type Runner struct {
	mu      sync.Mutex
	store   *CommitStore
	router  *Router
	gas     GasPolicy
	logger  log.Logger
	chainID string
	height  int64
}

// NewRunner loads the latest state of the given store. Gas policy may be nil,
// in which case calls are not metered.
func NewRunner(db splitter.CommitKVStore, router *Router, gas GasPolicy) (*Runner, error) {
	cs, err := NewCommitStore(db)
	if err != nil {
		return nil, err
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	info, err := cs.CommitInfo()
	if err != nil {
		return nil, errors.Wrap(err, "commit info")
	}
	return &Runner{
		store:   cs,
		router:  router,
		gas:     gas,
		logger:  log.NewNopLogger(),
		chainID: chainID,
		height:  info.Version,
	}, nil
}

// WithLogger sets the logger used by the runner and passed to all handlers.
func (r *Runner) WithLogger(logger log.Logger) *Runner {
	r.logger = logger
	return r
}

// ChainID returns the chain id set during the genesis initialization. It is
// empty if the chain was not initialized yet.
func (r *Runner) ChainID() string {
	return r.chainID
}

// InitChain saves the chain id and initializes all extensions using the
// genesis state. It can be done only once for a given store.
func (r *Runner) InitChain(gen *Genesis, init splitter.Initializer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.chainID != "" {
		return errors.Wrapf(errors.ErrState, "genesis already loaded for chain %q", r.chainID)
	}
	cache := r.store.DeliverStore().CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if err := init.FromGenesis(gen.AppState, cache); err != nil {
		cache.Discard()
		return errors.Wrap(err, "genesis")
	}
	if err := cache.Write(); err != nil {
		return err
	}
	r.chainID = gen.ChainID
	r.logger.Info("Genesis loaded", "chainID", gen.ChainID)
	return nil
}

// Deliver executes the transaction. State changes are applied only if the
// handler succeeds. Returned result carries the amount of gas used.
func (r *Runner) Deliver(ctx splitter.Context, tx splitter.Tx) (res *splitter.DeliverResult, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get transaction message")
	}
	h := r.router.Handler(msg.Path())

	cache := r.store.DeliverStore().CacheWrap()
	ctx, db, meter, err := r.prepare(ctx, cache, msg.Path())
	if err != nil {
		cache.Discard()
		return nil, err
	}

	res, err = deliver(ctx, h, db, tx)
	if err != nil {
		cache.Discard()
		splitter.GetLogger(ctx).Info("Deliver failed", "gasUsed", meter.GasConsumed(), "err", err)
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write cache")
	}
	if res == nil {
		res = &splitter.DeliverResult{}
	}
	res.GasUsed = meter.GasConsumed()
	splitter.GetLogger(ctx).Debug("Deliver succeeded", "gasUsed", res.GasUsed)
	return res, nil
}

// Check validates the transaction against the check state. The state is
// never modified.
func (r *Runner) Check(ctx splitter.Context, tx splitter.Tx) (*splitter.CheckResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get transaction message")
	}
	h := r.router.Handler(msg.Path())

	cache := r.store.CheckStore().CacheWrap()
	defer cache.Discard()
	ctx, db, _, err := r.prepare(ctx, cache, msg.Path())
	if err != nil {
		return nil, err
	}
	return check(ctx, h, db, tx)
}

// Commit persists all delivered transactions and moves to the next height.
func (r *Runner) Commit() (splitter.CommitID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.store.Commit()
	if err != nil {
		return id, err
	}
	r.height = id.Version
	r.logger.Info("Commit synced", "height", id.Version, "hash", id.Hash)
	return id, nil
}

// Query calls fn with the current state, including all transactions
// delivered since the last commit. fn must not keep a reference to the store.
func (r *Runner) Query(fn func(db splitter.ReadOnlyKVStore) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.store.DeliverStore())
}

// prepare returns the context and the gas metered store a single call is
// executed with.
func (r *Runner) prepare(ctx splitter.Context, cache splitter.KVCacheWrap, path string) (splitter.Context, splitter.CacheableKVStore, splitter.GasMeter, error) {
	if r.chainID == "" {
		return nil, nil, nil, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	ctx = splitter.WithChainID(ctx, r.chainID)
	ctx = splitter.WithHeight(ctx, r.height+1)
	ctx = splitter.WithLogger(ctx, r.logger.With("path", path))

	if r.gas == nil {
		meter := splitter.NewInfiniteGasMeter()
		return splitter.WithGasMeter(ctx, meter), cache, meter, nil
	}
	limit, costs, err := r.gas.CallGas(cache)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "gas policy")
	}
	meter := splitter.NewGasMeter(limit)
	return splitter.WithGasMeter(ctx, meter), store.WithGas(cache, meter, costs), meter, nil
}

// deliver calls the handler, turning panics into errors.
func deliver(ctx splitter.Context, h splitter.Deliverer, db splitter.KVStore, tx splitter.Tx) (res *splitter.DeliverResult, err error) {
	defer errors.Recover(&err)
	return h.Deliver(ctx, db, tx)
}

// check calls the handler, turning panics into errors.
func check(ctx splitter.Context, h splitter.Checker, db splitter.KVStore, tx splitter.Tx) (res *splitter.CheckResult, err error) {
	defer errors.Recover(&err)
	return h.Check(ctx, db, tx)
}
