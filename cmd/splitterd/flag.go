package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *splitter.Address {
	var a splitter.Address
	if defaultVal != "" {
		var err error
		a, err = splitter.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return &a
}

// flAddressList returns a value that is being set to the comma separated list
// of addresses given as the command line argument. Order of the addresses is
// preserved.
func flAddressList(fl *flag.FlagSet, name, usage string) *[]splitter.Address {
	var l addressList
	fl.Var(&l, name, usage)
	return (*[]splitter.Address)(&l)
}

type addressList []splitter.Address

func (l addressList) String() string {
	chunks := make([]string, len(l))
	for i, a := range l {
		chunks[i] = a.String()
	}
	return strings.Join(chunks, ",")
}

func (l *addressList) Set(raw string) error {
	var addrs []splitter.Address
	for i, chunk := range strings.Split(raw, ",") {
		a, err := splitter.ParseAddress(strings.TrimSpace(chunk))
		if err != nil {
			return errors.Wrapf(err, "address %d", i)
		}
		addrs = append(addrs, a)
	}
	*l = addrs
	return nil
}

// flHex returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flHex(fl *flag.FlagSet, name, defaultVal, usage string) *[]byte {
	var b []byte
	if defaultVal != "" {
		var err error
		b, err = hex.DecodeString(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q hex encoded flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var((*flagbyte)(&b), name, usage)
	return &b
}

type flagbyte []byte

func (b flagbyte) String() string {
	return hex.EncodeToString(b)
}

func (b *flagbyte) Set(raw string) error {
	val, err := hex.DecodeString(raw)
	if err != nil {
		return err
	}
	*b = val
	return nil
}
