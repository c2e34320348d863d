/*
Package ledger is the host ledger of the chain.

It keeps a single currency balance for every address and is the only place
that moves value between accounts. Other extensions never touch balances
directly. They use a Controller, and receive value attached to a message
through the ValueDecorator.
*/
package ledger
