package payout

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/gconf"
)

const packageName = "payout"

// Configuration of the payout extension.
type Configuration struct {
	Metadata *splitter.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// MaxPayees limits the number of payees of a newly created pool.
	// Zero means no limit.
	MaxPayees uint32 `protobuf:"varint,2,opt,name=max_payees,json=maxPayees,proto3" json:"max_payees,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

func (c *Configuration) Validate() error {
	return errors.AppendField(nil, "Metadata", c.Metadata.Validate())
}

// loadConf returns the stored configuration. Missing configuration is
// not an error, all limits are disabled then.
func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, packageName, &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		return &Configuration{}, nil
	default:
		return nil, errors.Wrap(err, "load configuration")
	}
}
