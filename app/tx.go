package app

import (
	"reflect"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/crypto"
	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/x/ledger"
	"github.com/iov-one/splitter/x/sigs"
)

// Tx is the transaction envelope. Payload is the serialized message
// routed by Path. Value is the amount moved from the main signer to the
// beneficiary of a payable message.
type Tx struct {
	Path       string               `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Payload    []byte               `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	Value      uint64               `protobuf:"varint,3,opt,name=value,proto3" json:"value,omitempty"`
	Signatures []*sigs.StdSignature `protobuf:"bytes,4,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

var _ sigs.SignedTx = (*Tx)(nil)
var _ sigs.SignedTx = (*decodedTx)(nil)
var _ ledger.ValueTx = (*decodedTx)(nil)

// NewTx returns a transaction carrying given message and value.
func NewTx(msg splitter.Msg, value uint64) (*Tx, error) {
	payload, err := proto.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return &Tx{
		Path:    msg.Path(),
		Payload: payload,
		Value:   value,
	}, nil
}

// Bytes returns the serialized transaction.
func (tx *Tx) Bytes() ([]byte, error) {
	raw, err := proto.Marshal(tx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return raw, nil
}

// GetValue returns the value attached to the message.
func (tx *Tx) GetValue() uint64 {
	return tx.Value
}

// GetSignatures returns all signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the serialized transaction without signatures.
// Every signer signs the same bytes.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	cpy := *tx
	cpy.Signatures = nil
	raw, err := proto.Marshal(&cpy)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return raw, nil
}

// Sign appends a signature of given signer, created for the nonce.
func (tx *Tx) Sign(signer crypto.Signer, chainID string, nonce int64) error {
	sig, err := sigs.SignTx(signer, tx, chainID, nonce)
	if err != nil {
		return err
	}
	tx.Signatures = append(tx.Signatures, sig)
	return nil
}

// NewTxDecoder returns a decoder for transactions carrying one of the given
// message types. The decoded transaction implements splitter.Tx,
// sigs.SignedTx and ledger.ValueTx.
func NewTxDecoder(msgs ...splitter.Msg) splitter.TxDecoder {
	types := make(map[string]reflect.Type, len(msgs))
	for _, m := range msgs {
		t := reflect.TypeOf(m)
		if t.Kind() != reflect.Ptr {
			panic("message prototype must be a pointer")
		}
		types[m.Path()] = t.Elem()
	}

	return func(raw []byte) (splitter.Tx, error) {
		var tx Tx
		if err := proto.Unmarshal(raw, &tx); err != nil {
			return nil, errors.Wrap(errors.ErrMsg, err.Error())
		}
		t, ok := types[tx.Path]
		if !ok {
			return nil, errors.Wrapf(errors.ErrNotFound, "unknown message path %q", tx.Path)
		}
		msg := reflect.New(t).Interface().(splitter.Msg)
		if err := proto.Unmarshal(tx.Payload, msg); err != nil {
			return nil, errors.Wrapf(errors.ErrMsg, "cannot decode %T: %s", msg, err)
		}
		return &decodedTx{Tx: &tx, msg: msg}, nil
	}
}

// decodedTx is a transaction together with its decoded message.
type decodedTx struct {
	*Tx
	msg splitter.Msg
}

// GetMsg returns the message decoded from the payload.
func (tx *decodedTx) GetMsg() (splitter.Msg, error) {
	return tx.msg, nil
}
