package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/app"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/store/iavl"
	"github.com/iov-one/splitter/x/distributor"
	"github.com/iov-one/splitter/x/ledger"
	"github.com/tendermint/tendermint/libs/log"
)

// stateName is the name of the database created in the home directory.
const stateName = "splitter"

// node is the application state opened from the home directory.
type node struct {
	db     *iavl.CommitStore
	runner *app.Runner
	ledger ledger.Controller
	dist   distributor.Controller
	debug  bool
}

// nodeFlags registers the flags shared by all commands that access the
// application state.
func nodeFlags(fl *flag.FlagSet) (home *string, debug *bool) {
	home = fl.String("home", os.ExpandEnv("$HOME/.splitterd"), "Directory the application state is kept in.")
	debug = fl.Bool("debug", false, "Log all application events and include stack traces in errors.")
	return home, debug
}

// openNode loads the application state. Receiver code is not part of the
// state, so every account accepts payments unless listed as not payable.
func openNode(home string, debug bool, notPayable ...splitter.Address) (*node, error) {
	db, err := iavl.NewCommitStore(home, stateName)
	if err != nil {
		return nil, errors.Wrap(err, "open state")
	}

	receivers := ledger.NewReceivers()
	for _, addr := range notPayable {
		receivers.Register(addr, ledger.NotPayable)
	}
	ledgerCtrl := ledger.NewController(receivers)
	distCtrl := distributor.NewController(ledgerCtrl)

	router := app.NewRouter()
	ledger.RegisterRoutes(router, ledgerCtrl)
	distributor.RegisterRoutes(router, distCtrl)

	runner, err := app.NewRunner(db, router, ledger.GasPolicy{})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "runner")
	}
	runner.WithLogger(newLogger(debug))

	return &node{
		db:     db,
		runner: runner,
		ledger: ledgerCtrl,
		dist:   distCtrl,
		debug:  debug,
	}, nil
}

func newLogger(debug bool) log.Logger {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	if debug {
		return logger
	}
	return log.NewFilter(logger, log.AllowError())
}

func (n *node) Close() {
	n.db.Close()
}

// deliver executes a single message authorized by the signer and commits
// the result. Signer may be nil.
func (n *node) deliver(signer splitter.Address, msg splitter.Msg) (*splitter.DeliverResult, error) {
	ctx := context.Background()
	if signer != nil {
		ctx = splitter.WithSigner(ctx, signer)
	}
	res, err := n.runner.Deliver(ctx, app.NewTx(msg))
	if err != nil {
		return nil, n.abciError(err)
	}
	if _, err := n.runner.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit")
	}
	return res, nil
}

// abciError returns an error carrying the ABCI code and log of the given
// error. Internal details are hidden unless running in debug mode.
func (n *node) abciError(err error) error {
	code, info := errors.ABCIInfo(err, n.debug)
	return fmt.Errorf("transaction failed with code %d: %s", code, info)
}
