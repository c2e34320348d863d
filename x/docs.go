/*
Package x contains the extensions of the splitter application.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together in package app.

  x/sigs    verifies transaction signatures and exposes the signers
  x/ledger  keeps account balances and moves the value attached to a call
  x/payout  splits a pooled balance between a fixed list of payees

Note that protobuf types in exported code will be prefixed by
the package, so follow standard go naming conventions and avoid
stutter. Use eg. `payout.CreatePoolMsg` in place of `payout.PayoutCreatePoolMsg`.
*/
package x
