/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration message under the "_c:<pkg>" key.
The initial value is loaded from the genesis file, from the "conf" section:

	{
	  "conf": {
	    "payout": {"max_payees": 100}
	  }
	}

Not being able to read a configuration is a critical condition for the
application. Handlers return the error and refuse to process the message.
*/
package gconf
