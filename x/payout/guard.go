package payout

import (
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/orm"
	"github.com/iov-one/splitter/x"
)

// requireAuthority returns an error unless the authority of the pool
// signed the current call.
func requireAuthority(ctx splitter.Context, auth x.Authenticator, pool *Pool) error {
	if !auth.HasAddress(ctx, pool.Authority) {
		return errors.Wrap(ErrUnauthorized, "pool authority signature required")
	}
	return nil
}

// acquireLock marks the pool as running a payout. It fails without writing
// anything if the pool is already locked. The returned release function
// must be called on every exit path, once the payout is done.
func acquireLock(db splitter.KVStore, bucket orm.ModelBucket, poolID []byte) (release func() error, err error) {
	var pool Pool
	if err := bucket.One(db, poolID, &pool); err != nil {
		return nil, errors.Wrap(err, "cannot load pool")
	}
	if pool.Locked {
		return nil, ErrReentrancyGuardLocked
	}
	if err := setLock(db, bucket, poolID, true); err != nil {
		return nil, err
	}
	release = func() error {
		return setLock(db, bucket, poolID, false)
	}
	return release, nil
}

// setLock reloads the pool before writing so that no other field written
// in the meantime is lost.
func setLock(db splitter.KVStore, bucket orm.ModelBucket, poolID []byte, locked bool) error {
	var pool Pool
	if err := bucket.One(db, poolID, &pool); err != nil {
		return errors.Wrap(err, "cannot load pool")
	}
	pool.Locked = locked
	if _, err := bucket.Put(db, poolID, &pool); err != nil {
		return errors.Wrap(err, "cannot save pool")
	}
	return nil
}
