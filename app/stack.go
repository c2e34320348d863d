package app

import (
	"context"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/x"
	"github.com/iov-one/splitter/x/ledger"
	"github.com/iov-one/splitter/x/payout"
	"github.com/iov-one/splitter/x/sigs"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the authentication used by all extensions.
// Verified signers of a transaction are the authenticated callers.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Routes returns a router with routes of all extensions registered.
func Routes(auth x.Authenticator, ctrl ledger.Controller) *Router {
	r := NewRouter()
	payout.RegisterRoutes(r, auth, ctrl)
	return r
}

// Stack wires all decorators around the router. A transaction without
// signatures is accepted, but it cannot carry value nor act as a pool
// authority.
func Stack(ctrl ledger.Controller) splitter.Handler {
	auth := Authenticator()
	return ChainDecorators(
		NewLogging(),
		NewRecovery(),
		sigs.NewDecorator().AllowMissingSigs(),
		ledger.NewValueDecorator(auth, ctrl),
	).WithHandler(Routes(auth, ctrl))
}

// QueryRouter returns a query router with the buckets of all extensions
// registered.
func QueryRouter() splitter.QueryRouter {
	r := splitter.NewQueryRouter()
	r.RegisterAll(
		sigs.RegisterQuery,
		ledger.RegisterQuery,
		payout.RegisterQuery,
	)
	return r
}

// Initializers returns the genesis initializers of all extensions.
func Initializers() splitter.Initializer {
	return ChainInitializers(
		ledger.Initializer{},
		payout.Initializer{},
	)
}

// TxDecoder decodes transactions carrying any of the supported messages.
func TxDecoder() splitter.TxDecoder {
	return NewTxDecoder(
		&payout.CreatePoolMsg{},
		&payout.DepositMsg{},
		&payout.CalculatePayoutMsg{},
		&payout.TriggerPayoutMsg{},
	)
}

// Application returns a ready to use ABCI application on top of given
// store.
func Application(name string, store splitter.CommitKVStore, logger log.Logger, debug bool) BaseApp {
	ctrl := ledger.NewController()
	s := NewStoreApp(name, store, QueryRouter(), context.Background()).
		WithLogger(logger).
		WithInit(Initializers())
	return NewBaseApp(s, TxDecoder(), Stack(ctrl), debug)
}
