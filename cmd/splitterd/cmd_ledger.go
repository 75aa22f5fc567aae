package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/app"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/x/distributor"
	"github.com/iov-one/splitter/x/ledger"
)

func cmdInit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Initialize the application state using the genesis file. Ledger configuration,
initial balances and distributors are loaded. A state can be initialized only
once.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl, debugFl = nodeFlags(fl)
		genesisFl       = fl.String("genesis", "", "Path to the genesis file.")
	)
	fl.Parse(args)

	if *genesisFl == "" {
		flagDie("-genesis is required")
	}
	gen, err := app.LoadGenesis(*genesisFl)
	if err != nil {
		return err
	}

	n, err := openNode(*homeFl, *debugFl)
	if err != nil {
		return err
	}
	defer n.Close()

	initializer := splitter.ChainInitializers(ledger.Initializer{}, distributor.Initializer{})
	if err := n.runner.InitChain(gen, initializer); err != nil {
		return errors.Wrap(err, "init chain")
	}
	id, err := n.runner.Commit()
	if err != nil {
		return errors.Wrap(err, "commit")
	}
	fmt.Fprintf(output, "chain %s initialized at height %d with hash %X\n", gen.ChainID, id.Version, id.Hash)
	return nil
}

func cmdSend(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Move funds from the source to the destination account. The source account is
the signer of the transaction. If the destination has a receiver attached, it
is executed with the gas stipend.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl, debugFl = nodeFlags(fl)
		srcFl           = flAddress(fl, "from", "", "Source account address.")
		dstFl           = flAddress(fl, "to", "", "Destination account address.")
		amountFl        = fl.Uint64("amount", 0, "Amount to move.")
	)
	fl.Parse(args)

	msg := ledger.SendMsg{
		Source:      *srcFl,
		Destination: *dstFl,
		Amount:      *amountFl,
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "given data produce an invalid message")
	}

	n, err := openNode(*homeFl, *debugFl)
	if err != nil {
		return err
	}
	defer n.Close()

	res, err := n.deliver(msg.Source, &msg)
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "sent %d from %s to %s, gas used %d\n", msg.Amount, msg.Source, msg.Destination, res.GasUsed)
	return nil
}

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the balance of the given account.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl, debugFl = nodeFlags(fl)
		addrFl          = flAddress(fl, "addr", "", "Account address.")
	)
	fl.Parse(args)

	if err := addrFl.Validate(); err != nil {
		flagDie("invalid -addr: %s", err)
	}

	n, err := openNode(*homeFl, *debugFl)
	if err != nil {
		return err
	}
	defer n.Close()

	var balance uint64
	err = n.runner.Query(func(db splitter.ReadOnlyKVStore) error {
		var err error
		balance, err = n.ledger.Balance(db, *addrFl)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(output, balance)
	return nil
}

// flagDie terminates the program when a command line flag is invalid.
func flagDie(description string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, description+"\n", args...)
	os.Exit(2)
}
