/*
Package splitter defines the interfaces used throughout the ledger, such as:
storage, transactions, handlers and gas metering. It also contains the address
type and the helpers to carry call information in the context.

The distributor itself lives in x/distributor and the native balances it moves
in x/ledger. Look into this package to get a brief overview of the building
blocks those extensions are built upon.
*/
package splitter
