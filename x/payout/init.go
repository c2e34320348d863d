package payout

import (
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/gconf"
)

const optKey = "payout"

// GenesisPool is used to parse the json from genesis file
type GenesisPool struct {
	Payees    []splitter.Address `json:"payees"`
	Authority splitter.Address   `json:"authority"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ splitter.Initializer = Initializer{}

// FromGenesis stores the configuration and creates all pools in the order
// they are declared. The first pool gets the ID 1.
func (Initializer) FromGenesis(opts splitter.Options, db splitter.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, packageName, &conf); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "init config")
	}

	var pools []GenesisPool
	if err := opts.ReadOptions(optKey, &pools); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	bucket := NewPoolBucket()
	for i, p := range pools {
		msg := CreatePoolMsg{Payees: p.Payees, Authority: p.Authority}
		if err := msg.Validate(); err != nil {
			return errors.Wrapf(err, "pool #%d", i)
		}
		if conf.MaxPayees > 0 && len(p.Payees) > int(conf.MaxPayees) {
			return errors.Wrapf(errors.ErrInput, "pool #%d: too many payees", i)
		}
		if _, err := createPool(db, bucket, p.Payees, p.Authority); err != nil {
			return errors.Wrapf(err, "pool #%d", i)
		}
	}
	return nil
}
