/*
Package splitter defines the interfaces shared by the payout splitter
application: storage, transactions, messages, handlers and the call context.

The host environment (the chain application in package app) provides the
caller identity through an x.Authenticator, the value attached to a call
through WithCallValue, and durable storage through KVStore. Extensions in the
x/ directory build on top of these contracts. The payout extension (x/payout)
splits a pooled balance between a fixed list of payees.

We pass context through context.Context between app, middleware, and
handlers. For every XYZ of type T that we want to support in Context there
exist two functions:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ panics if the value was previously set to avoid lower-level modules
overwriting the value (eg. height, chain id).
*/
package splitter
