package ledger

import (
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
)

const optKey = "ledger"

// GenesisAccount is used to parse the json from genesis file
type GenesisAccount struct {
	Address splitter.Address `json:"address"`
	Amount  uint64           `json:"amount"`
}

// Initializer fulfils the Initializer interface to load balances from
// the genesis file
type Initializer struct{}

var _ splitter.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis and credit it.
// Listing the same address more than once adds up the amounts.
func (Initializer) FromGenesis(opts splitter.Options, kv splitter.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	ctrl := NewController()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		if err := ctrl.Mint(kv, acct.Address, acct.Amount); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	return nil
}

// RegisterQuery will register the accounts bucket as "/ledger"
func RegisterQuery(qr splitter.QueryRouter) {
	NewBucket().Register("", qr)
}
