/*
Package payout implements payment splitting pools.

A pool collects deposits on its own ledger account and, when triggered by its
authority, distributes the whole balance in equal shares to a fixed list of
payees. The first payee receives the division remainder, so a payout never
leaves dust behind.

Distribution is protected by a lock persisted with the pool. A payout that
re-enters the same pool while it is running, for example from a transfer
hook of a payee account, is rejected.
*/
package payout
