package splitter

import (
	"fmt"
	"strings"
)

// Model is a single key and its raw stored value, as returned to a query
// client.
type Model struct {
	Key   []byte
	Value []byte
}

// Pair returns a model for given key and value.
func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler reads the committed state. The meaning of data, usually the
// key of a single entity, is defined by the handler.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, data []byte) ([]Model, error)
}

// QueryRegister registers the query handlers of one extension.
type QueryRegister func(QueryRouter)

// QueryRouter dispatches a query to the handler registered for its path,
// for example "/pools" or "/ledger".
type QueryRouter struct {
	routes map[string]QueryHandler
}

// NewQueryRouter returns a router without any path registered.
func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// RegisterAll calls every register function with this router.
func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, q := range qr {
		q(r)
	}
}

// Register binds a handler to the path. Paths are absolute and can be
// registered only once, otherwise this function panics. Registration
// happens when the application is built.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if !strings.HasPrefix(path, "/") {
		panic(fmt.Sprintf("query path must start with a slash: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("query path already registered: %q", path))
	}
	r.routes[path] = h
}

// Handler returns the handler registered for the path, or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}
