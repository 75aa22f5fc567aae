package main

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/splitter/splittertest/assert"
)

const (
	owner = "0102030405060708090A0B0C0D0E0F1011121314"
	alice = "1112131415161718191A1B1C1D1E1F2021222324"
	bob   = "2122232425262728292A2B2C2D2E2F3031323334"
)

func TestSplitterdFlow(t *testing.T) {
	home := initHome(t, `
	{
		"chain_id": "test-chain",
		"app_state": {
			"cash": [
				{"address": "`+owner+`", "balance": 5000}
			]
		}
	}`)
	defer os.RemoveAll(home)

	out := run(t, cmdCreate, "-home", home, "-owner", owner, "-recipients", alice+","+bob)
	fields := strings.Fields(out)
	assert.Equal(t, 2, len(fields))
	id, account := fields[0], fields[1]
	assert.Equal(t, "0000000000000001", id)

	run(t, cmdSend, "-home", home, "-from", owner, "-to", account, "-amount", "1001")
	assert.Equal(t, "3999\n", run(t, cmdBalance, "-home", home, "-addr", owner))
	assert.Equal(t, "1001\n", run(t, cmdBalance, "-home", home, "-addr", account))

	// Recipient list order is part of the commitment.
	var output bytes.Buffer
	err := cmdDistribute(nil, &output, []string{"-home", home, "-id", id, "-recipients", bob + "," + alice})
	if err == nil {
		t.Fatal("distribution with a reordered recipient list must fail")
	}
	assert.True(t, strings.Contains(err.Error(), "code 101"), err.Error())

	run(t, cmdDistribute, "-home", home, "-id", id, "-recipients", alice+","+bob)
	assert.Equal(t, "500\n", run(t, cmdBalance, "-home", home, "-addr", alice))
	assert.Equal(t, "501\n", run(t, cmdBalance, "-home", home, "-addr", bob))

	var view distributorView
	assert.Nil(t, json.Unmarshal([]byte(run(t, cmdShow, "-home", home, "-id", id)), &view))
	assert.Equal(t, id, view.ID)
	assert.Equal(t, owner, view.Owner.String())
	assert.Equal(t, account, view.Address.String())
	assert.Equal(t, uint64(0), view.Balance)
	assert.Equal(t, 64, len(view.RecipientGroup))
}

func TestSplitterdDistributeNotPayable(t *testing.T) {
	home := initHome(t, `
	{
		"chain_id": "test-chain",
		"app_state": {
			"cash": [
				{"address": "`+owner+`", "balance": 5000}
			]
		}
	}`)
	defer os.RemoveAll(home)

	fields := strings.Fields(run(t, cmdCreate, "-home", home, "-owner", owner, "-recipients", alice+","+bob))
	assert.Equal(t, 2, len(fields))
	id, account := fields[0], fields[1]
	run(t, cmdSend, "-home", home, "-from", owner, "-to", account, "-amount", "1001")

	run(t, cmdDistribute, "-home", home, "-id", id, "-recipients", alice+","+bob, "-not-payable", bob)
	assert.Equal(t, "500\n", run(t, cmdBalance, "-home", home, "-addr", alice))
	assert.Equal(t, "0\n", run(t, cmdBalance, "-home", home, "-addr", bob))
	assert.Equal(t, "4500\n", run(t, cmdBalance, "-home", home, "-addr", owner))
	assert.Equal(t, "0\n", run(t, cmdBalance, "-home", home, "-addr", account))
}

func TestSplitterdGenesisDistributor(t *testing.T) {
	home := initHome(t, `
	{
		"chain_id": "test-chain",
		"app_state": {
			"distributor": [
				{"owner": "`+owner+`", "recipients": ["`+alice+`"]}
			]
		}
	}`)
	defer os.RemoveAll(home)

	var view distributorView
	assert.Nil(t, json.Unmarshal([]byte(run(t, cmdShow, "-home", home, "-id", "0000000000000001")), &view))
	assert.Equal(t, owner, view.Owner.String())
}

func TestSplitterdInitTwice(t *testing.T) {
	const genesis = `{"chain_id": "test-chain", "app_state": {"cash": []}}`
	home := initHome(t, genesis)
	defer os.RemoveAll(home)

	path := filepath.Join(home, "genesis.json")
	var output bytes.Buffer
	if err := cmdInit(nil, &output, []string{"-home", home, "-genesis", path}); err == nil {
		t.Fatal("state must not be initialized twice")
	}
}

func TestSplitterdSendInsufficientFunds(t *testing.T) {
	home := initHome(t, `
	{
		"chain_id": "test-chain",
		"app_state": {
			"cash": [
				{"address": "`+owner+`", "balance": 10}
			]
		}
	}`)
	defer os.RemoveAll(home)

	var output bytes.Buffer
	err := cmdSend(nil, &output, []string{"-home", home, "-from", owner, "-to", alice, "-amount", "11"})
	if err == nil {
		t.Fatal("send must fail")
	}
	assert.Equal(t, "10\n", run(t, cmdBalance, "-home", home, "-addr", owner))
	assert.Equal(t, "0\n", run(t, cmdBalance, "-home", home, "-addr", alice))
}

// initHome creates a home directory with the genesis file and initializes
// the state using it.
func initHome(t testing.TB, genesis string) string {
	t.Helper()

	home, err := ioutil.TempDir("", "splitterd-")
	assert.Nil(t, err)
	path := filepath.Join(home, "genesis.json")
	assert.Nil(t, ioutil.WriteFile(path, []byte(genesis), 0600))

	out := run(t, cmdInit, "-home", home, "-genesis", path)
	assert.True(t, strings.HasPrefix(out, "chain test-chain initialized at height 1"), out)
	return home
}

// run executes the command and returns its output. Test fails if the command
// returns an error.
func run(t testing.TB, cmd func(io.Reader, io.Writer, []string) error, args ...string) string {
	t.Helper()
	var output bytes.Buffer
	if err := cmd(nil, &output, args); err != nil {
		t.Fatalf("command failed: %s", err)
	}
	return output.String()
}
