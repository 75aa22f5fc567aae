package distributor_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/app"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/splittertest"
	"github.com/iov-one/splitter/store/iavl"
	"github.com/iov-one/splitter/x/distributor"
	"github.com/iov-one/splitter/x/ledger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDistributionScenario(t *testing.T) {
	Convey("Given a distributor funded with 100000000", t, func() {
		owner := splittertest.RandomAddr(t)
		a := splittertest.RandomAddr(t)
		b := splittertest.RandomAddr(t)
		c := splittertest.RandomAddr(t)
		recipients := []splitter.Address{a, b, c}

		receivers := ledger.NewReceivers()
		cash := ledger.NewController(receivers)
		router := app.NewRouter()
		ledger.RegisterRoutes(router, cash)
		distributor.RegisterRoutes(router, distributor.NewController(cash))

		db := iavl.NewMemCommitStore()
		Reset(db.Close)
		runner, err := app.NewRunner(db, router, ledger.GasPolicy{})
		So(err, ShouldBeNil)

		genesis := &app.Genesis{
			ChainID: "test-chain",
			AppState: splitter.Options{
				"cash": json.RawMessage(fmt.Sprintf(`[{"address": %q, "balance": 100000000}]`, owner)),
			},
		}
		So(runner.InitChain(genesis, splitter.ChainInitializers(ledger.Initializer{}, distributor.Initializer{})), ShouldBeNil)

		signedByOwner := splitter.WithSigner(context.Background(), owner)
		res, err := runner.Deliver(signedByOwner, app.NewTx(&distributor.CreateMsg{Recipients: recipients}))
		So(err, ShouldBeNil)
		id := res.Data
		account := distributor.DistributorAccount(id)

		_, err = runner.Deliver(signedByOwner, app.NewTx(&ledger.SendMsg{
			Source:      owner,
			Destination: account,
			Amount:      100000000,
		}))
		So(err, ShouldBeNil)
		_, err = runner.Commit()
		So(err, ShouldBeNil)

		balance := func(addr splitter.Address) uint64 {
			var amount uint64
			err := runner.Query(func(db splitter.ReadOnlyKVStore) error {
				var err error
				amount, err = cash.Balance(db, addr)
				return err
			})
			So(err, ShouldBeNil)
			return amount
		}
		distribute := func(recipients ...splitter.Address) (*splitter.DeliverResult, error) {
			// Anyone can distribute, no signature is needed.
			msg := &distributor.DistributeMsg{DistributorID: id, Recipients: recipients}
			return runner.Deliver(context.Background(), app.NewTx(msg))
		}

		So(balance(account), ShouldEqual, uint64(100000000))
		So(balance(owner), ShouldEqual, uint64(0))

		Convey("When all recipients accept", func() {
			res, err := distribute(a, b, c)
			So(err, ShouldBeNil)
			So(res.GasUsed, ShouldBeGreaterThan, 3*ledger.DefaultConfiguration().TransferCost)

			Convey("The last recipient receives the remainder", func() {
				So(balance(a), ShouldEqual, uint64(33333333))
				So(balance(b), ShouldEqual, uint64(33333333))
				So(balance(c), ShouldEqual, uint64(33333334))
				So(balance(owner), ShouldEqual, uint64(0))
				So(balance(account), ShouldEqual, uint64(0))
			})
		})

		Convey("When the last recipient cannot accept within its stipend", func() {
			receivers.Register(c, splittertest.BurnGas{Amount: distributor.PerRecipientGas + 1})
			_, err := distribute(a, b, c)
			So(err, ShouldBeNil)

			Convey("Its share is refunded to the owner", func() {
				So(balance(a), ShouldEqual, uint64(33333333))
				So(balance(b), ShouldEqual, uint64(33333333))
				So(balance(c), ShouldEqual, uint64(0))
				So(balance(owner), ShouldEqual, uint64(33333334))
			})
		})

		Convey("When the recipient list is empty", func() {
			_, err := distribute()
			So(distributor.ErrEmptyRecipients.Is(err), ShouldBeTrue)
			So(balance(account), ShouldEqual, uint64(100000000))
		})

		Convey("When the recipient list contains a stranger", func() {
			nobody := splittertest.RandomAddr(t)
			_, err := distribute(a, b, nobody)
			So(distributor.ErrInvalidRecipientGroup.Is(err), ShouldBeTrue)

			e, ok := distributor.AsInvalidRecipientGroup(err)
			So(ok, ShouldBeTrue)
			So(e.Expected, ShouldResemble, distributor.Commitment(recipients))
			So(e.Actual, ShouldResemble, distributor.Commitment([]splitter.Address{a, b, nobody}))
			So(balance(account), ShouldEqual, uint64(100000000))
		})

		Convey("When the recipient list is too short", func() {
			_, err := distribute(a, b)
			So(distributor.ErrInvalidRecipientGroup.Is(err), ShouldBeTrue)
			So(balance(account), ShouldEqual, uint64(100000000))
		})

		Convey("When both the last recipient and the owner cannot receive", func() {
			receivers.Register(c, splittertest.BurnGas{Amount: distributor.PerRecipientGas + 1})
			receivers.Register(owner, ledger.NotPayable)
			_, err := distribute(a, b, c)
			So(distributor.ErrOwnerFailedReceive.Is(err), ShouldBeTrue)

			e, ok := distributor.AsOwnerFailedReceive(err)
			So(ok, ShouldBeTrue)
			So(e.Owner, ShouldResemble, owner)
			So(e.Recipient, ShouldResemble, c)
			So(e.Amount, ShouldEqual, uint64(33333334))

			Convey("No value is moved", func() {
				So(balance(a), ShouldEqual, uint64(0))
				So(balance(b), ShouldEqual, uint64(0))
				So(balance(c), ShouldEqual, uint64(0))
				So(balance(owner), ShouldEqual, uint64(0))
				So(balance(account), ShouldEqual, uint64(100000000))
			})
		})

		Convey("When the check is done before delivery", func() {
			res, err := runner.Check(context.Background(), app.NewTx(&distributor.DistributeMsg{
				DistributorID: id,
				Recipients:    recipients,
			}))
			So(err, ShouldBeNil)
			conf := ledger.DefaultConfiguration()
			So(res.GasAllocated, ShouldEqual, 3*(conf.TransferCost+distributor.PerRecipientGas)+conf.TransferCost)
			So(balance(account), ShouldEqual, uint64(100000000))
		})

		Convey("When the check is done with a reordered recipient list", func() {
			_, err := runner.Check(context.Background(), app.NewTx(&distributor.DistributeMsg{
				DistributorID: id,
				Recipients:    []splitter.Address{recipients[2], recipients[1], recipients[0]},
			}))
			So(distributor.ErrInvalidRecipientGroup.Is(err), ShouldBeTrue)
		})

		Convey("When the distributor does not exist", func() {
			msg := &distributor.DistributeMsg{DistributorID: splittertest.SequenceID(42), Recipients: recipients}
			_, err := runner.Deliver(context.Background(), app.NewTx(msg))
			So(errors.ErrNotFound.Is(err), ShouldBeTrue)
		})
	})
}
