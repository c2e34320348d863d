package app

import (
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp adds DeliverTx and CheckTx handlers to the storage and query
// functionality of StoreApp
type BaseApp struct {
	*StoreApp
	decoder splitter.TxDecoder
	handler splitter.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application
func NewBaseApp(store *StoreApp, decoder splitter.TxDecoder, handler splitter.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store.WithDebug(debug),
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx - ABCI - dispatches to the handler. Transactions are
// processed one at a time on the block deliver store.
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return splitter.DeliverTxError(err, b.debug)
	}

	ctx := splitter.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", splitter.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return splitter.DeliverOrError(res, err, b.debug)
}

// CheckTx - ABCI - dispatches to the handler
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return splitter.CheckTxError(err, b.debug)
	}

	ctx := splitter.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", splitter.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return splitter.CheckOrError(res, err, b.debug)
}

// loadTx calls the decoder, and capture any panics
func (b BaseApp) loadTx(txBytes []byte) (tx splitter.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}
