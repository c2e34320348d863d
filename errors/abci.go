package errors

const (
	// SuccessABCICode is the code of a successful ABCI response.
	SuccessABCICode = 0

	// Errors without a registered code are reported with this code and a
	// generic message, so that no internal details reach the client.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log of an ABCI response for given error.
//
// Registered errors keep their code and full description. Any other error,
// and every recovered panic, is reported as an internal error. In debug
// mode the full description of internal errors is returned as well, but a
// panic is never revealed.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessABCICode, ""
	}
	if ErrPanic.Is(err) {
		return internalABCICode, internalABCILog
	}
	if code := abciCode(err); code != internalABCICode {
		return code, err.Error()
	}
	if debug {
		return internalABCICode, err.Error()
	}
	return internalABCICode, internalABCILog
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the first error in the cause chain that
// provides one.
func abciCode(err error) uint32 {
	for err != nil {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalABCICode
}
