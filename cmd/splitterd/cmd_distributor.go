package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/x/distributor"
)

func cmdCreate(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a distributor owned by the given address. Recipient list order matters,
the same list must be provided to each distribution. On success the ID of the
distributor and the address of its account are printed.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl, debugFl = nodeFlags(fl)
		ownerFl         = flAddress(fl, "owner", "", "Owner of the distributor. The owner signs the transaction.")
		recipientsFl    = flAddressList(fl, "recipients", "Comma separated list of recipient addresses.")
	)
	fl.Parse(args)

	if err := ownerFl.Validate(); err != nil {
		flagDie("invalid -owner: %s", err)
	}
	msg := distributor.CreateMsg{Recipients: *recipientsFl}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "given data produce an invalid message")
	}

	n, err := openNode(*homeFl, *debugFl)
	if err != nil {
		return err
	}
	defer n.Close()

	res, err := n.deliver(*ownerFl, &msg)
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "%x %s\n", res.Data, distributor.DistributorAccount(res.Data))
	return nil
}

func cmdDistribute(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Distribute all funds held by the distributor account between the recipients.
Anyone can request a distribution, but the recipient list must be exactly the
one the distributor was created with.

Accounts accept all payments. Use -not-payable to make the given accounts
reject them; their shares are then refunded to the owner.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl, debugFl = nodeFlags(fl)
		idFl            = flHex(fl, "id", "", "Hex encoded ID of the distributor.")
		callerFl        = flAddress(fl, "caller", "", "Optional signer of the transaction.")
		recipientsFl    = flAddressList(fl, "recipients", "Comma separated list of recipient addresses.")
		notPayableFl    = flAddressList(fl, "not-payable", "Comma separated list of addresses that reject all payments.")
	)
	fl.Parse(args)

	msg := distributor.DistributeMsg{
		DistributorID: *idFl,
		Recipients:    *recipientsFl,
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "given data produce an invalid message")
	}

	n, err := openNode(*homeFl, *debugFl, *notPayableFl...)
	if err != nil {
		return err
	}
	defer n.Close()

	res, err := n.deliver(*callerFl, &msg)
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "distributed, gas used %d\n", res.GasUsed)
	return nil
}

// distributorView is the printable representation of a distributor.
type distributorView struct {
	ID             string           `json:"id"`
	Owner          splitter.Address `json:"owner"`
	RecipientGroup string           `json:"recipient_group"`
	Address        splitter.Address `json:"address"`
	Balance        uint64           `json:"balance"`
}

func cmdShow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the distributor with the given ID, together with the balance of its
account, in JSON format.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl, debugFl = nodeFlags(fl)
		idFl            = flHex(fl, "id", "", "Hex encoded ID of the distributor.")
	)
	fl.Parse(args)

	if len(*idFl) == 0 {
		flagDie("-id is required")
	}

	n, err := openNode(*homeFl, *debugFl)
	if err != nil {
		return err
	}
	defer n.Close()

	var view distributorView
	err = n.runner.Query(func(db splitter.ReadOnlyKVStore) error {
		d, err := n.dist.Get(db, *idFl)
		if err != nil {
			return err
		}
		balance, err := n.ledger.Balance(db, d.Address)
		if err != nil {
			return err
		}
		view = distributorView{
			ID:             hex.EncodeToString(*idFl),
			Owner:          d.Owner,
			RecipientGroup: hex.EncodeToString(d.RecipientGroup),
			Address:        d.Address,
			Balance:        balance,
		}
		return nil
	})
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(view, "", "\t")
	if err != nil {
		return errors.Wrap(err, "cannot serialize")
	}
	_, err = output.Write(append(raw, '\n'))
	return err
}
