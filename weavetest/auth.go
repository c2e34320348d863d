package weavetest

import (
	"context"
	"fmt"

	"github.com/iov-one/splitter"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
// You can use either Signer or Signers (or both) attributes to reference
// conditions. Each time all signers (regardless which attribute) are
// considered.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer splitter.Condition

	// Signers represents an authentication of multiple signers.
	Signers []splitter.Condition
}

// GetConditions returns all configured signers, Signer last.
func (a *Auth) GetConditions(splitter.Context) []splitter.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

// HasAddress returns true if any of the signers owns given address.
func (a *Auth) HasAddress(ctx splitter.Context, addr splitter.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

// SetConditions returns a context authenticating given conditions.
func (a *CtxAuth) SetConditions(ctx splitter.Context, permissions ...splitter.Condition) splitter.Context {
	return context.WithValue(ctx, a.Key, permissions)
}

// GetConditions returns conditions stored in the context.
func (a *CtxAuth) GetConditions(ctx splitter.Context) []splitter.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]splitter.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []splitter.Condition got %T", val))
	}
	return conds
}

// HasAddress returns true if any condition stored in the context owns
// given address.
func (a *CtxAuth) HasAddress(ctx splitter.Context, addr splitter.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
