package app

import (
	"github.com/iov-one/splitter"
)

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...splitter.Initializer) splitter.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []splitter.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts splitter.Options, kv splitter.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
