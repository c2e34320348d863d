package errors

import (
	"io"
	"testing"
)

var errLocked = Register(3001, "pool locked")

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"success": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"typed nil is a success": {
			err:      (*Error)(nil),
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"registered error keeps its code": {
			err:      errLocked,
			wantCode: 3001,
			wantLog:  "pool locked",
		},
		"context is prepended to the description": {
			err:      Wrapf(Wrap(errLocked, "acquire"), "pool %d", 7),
			wantCode: 3001,
			wantLog:  "pool 7: acquire: pool locked",
		},
		"field error reports the field name": {
			err:      Field("Payees.2", ErrEmpty, ""),
			wantCode: ErrEmpty.ABCICode(),
			wantLog:  `field "Payees.2": value is empty`,
		},
		"io error is hidden": {
			err:      Wrap(io.ErrUnexpectedEOF, "read pool"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"io error is revealed in debug mode": {
			err:      Wrap(io.ErrUnexpectedEOF, "read pool"),
			debug:    true,
			wantCode: internalABCICode,
			wantLog:  "read pool: unexpected EOF",
		},
		"panic is always hidden": {
			err:      Wrap(ErrPanic, "index out of range"),
			debug:    true,
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"error providing its own code": {
			err:      hostErr{},
			wantCode: 42,
			wantLog:  "host refused transfer",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

// hostErr is returned by a host that assigns its own ABCI codes.
type hostErr struct{}

func (hostErr) ABCICode() uint32 { return 42 }

func (hostErr) Error() string { return "host refused transfer" }
