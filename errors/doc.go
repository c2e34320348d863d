/*
Package errors implements custom error interfaces for the splitter
application.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. x/payout registers the
payout domain errors (no payees, zero share, transfer failed, reentrancy
guard locked) on top of the ones declared here.

If you want to register a custom error - use Register(code, description).
To create an error instance, wrap one of the root errors:

	errors.Wrap(errors.ErrNotFound, "pool")
	errors.Wrapf(errors.ErrInput, "payee %d", i)

Code stands for ABCI error code, which allows to distinguish types of errors
on the client side and act accordingly.

Wrapping attaches a stacktrace (github.com/pkg/errors) once, at the lowest
frame possible. Do not create error instances as global variables or you will
get a useless stacktrace.
*/
package errors
