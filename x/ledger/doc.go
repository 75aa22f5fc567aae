/*
Package ledger keeps the native balances of all accounts and moves value
between them.

An account is identified by its address. Accounts are never created
explicitly, an address without any record holds a zero balance.

Code can be attached to an address by registering a Receiver. It is executed
whenever value is transferred to that address and can reject the payment. A
receiver is executed with a limited amount of gas, decided by the party that
makes the transfer. All state changes made by the receiver are rolled back
together with the payment when it fails.
*/
package ledger
