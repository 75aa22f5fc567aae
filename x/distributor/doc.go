/*
Package distributor implements a value distributor that splits its balance
between a fixed, ordered group of recipients.

A distributor does not store the recipient list. Only a commitment (a hash of
the ordered list) is kept and the full list must be provided with every
distribution request. Anyone can request a distribution.

Each recipient is paid with a separate ledger transfer that forwards a small,
fixed amount of gas to the code attached to the recipient address. A payment
that is rejected, or that runs out of the forwarded gas, does not stop the
distribution. All failed amounts are sent to the owner of the distributor in a
single transfer at the end. If the owner cannot receive them either, the whole
distribution fails and no value is moved.
*/
package distributor
