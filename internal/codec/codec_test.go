package codec

import (
	"encoding/binary"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/rocketbft/rocket/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCodec_RoundTrip tests encode-then-decode for every supported type tag.
func TestCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		tag     uint16
		message proto.Message
	}{
		{name: "ping", tag: TypePing, message: &pb.TMPing{Type: 1, Seq: 42}},
		{name: "transaction", tag: TypeTransaction, message: &pb.TMTransaction{RawTransaction: []byte{1, 2, 3}, Status: 2}},
		{name: "get ledger", tag: TypeGetLedger, message: &pb.TMGetLedger{Itype: 1, LedgerSeq: 7}},
		{name: "ledger data", tag: TypeLedgerData, message: &pb.TMLedgerData{LedgerHash: []byte{9, 9}, LedgerSeq: 7, Type: 1}},
		{name: "propose set", tag: TypeProposeSet, message: &pb.TMProposeSet{
			ProposeSeq:     3,
			CurrentTxHash:  make([]byte, 32),
			NodePubKey:     []byte{0xaa},
			Signature:      []byte{0xbb},
			CloseTime:      1234,
			PreviousLedger: make([]byte, 32),
		}},
		{name: "status change", tag: TypeStatusChange, message: &pb.TMStatusChange{NewStatus: 1, NewEvent: 2, LedgerSeq: 5}},
		{name: "have transaction set", tag: TypeHaveTransactionSet, message: &pb.TMHaveTransactionSet{Status: 1, Hash: []byte{4, 5}}},
		{name: "validation", tag: TypeValidation, message: &pb.TMValidation{Validation: []byte{7, 8, 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := Encode(tt.message, tt.tag)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(frame), HeaderSize)
			assert.Equal(t, uint32(len(frame)-HeaderSize), binary.BigEndian.Uint32(frame[0:4]))
			assert.Equal(t, tt.tag, binary.BigEndian.Uint16(frame[4:HeaderSize]))

			decoded, tag, err := Decode(frame)
			require.NoError(t, err)
			assert.Equal(t, tt.tag, tag)
			assert.True(t, proto.Equal(tt.message, decoded), "decoded message differs")
		})
	}
}

// TestCodec_DecodeShortFrame tests rejection of frames shorter than the
// header.
func TestCodec_DecodeShortFrame(t *testing.T) {
	_, _, err := Decode([]byte{0, 0, 0})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// TestCodec_DecodeUnknownTag tests rejection of an unsupported type tag.
func TestCodec_DecodeUnknownTag(t *testing.T) {
	frame := make([]byte, HeaderSize)
	binary.BigEndian.PutUint16(frame[4:HeaderSize], 999)

	_, tag, err := Decode(frame)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Equal(t, uint16(999), tag)
}

// TestCodec_DecodeMalformedPayload tests rejection of a payload that does not
// parse as its tagged message kind.
func TestCodec_DecodeMalformedPayload(t *testing.T) {
	frame := make([]byte, HeaderSize+2)
	binary.BigEndian.PutUint32(frame[0:4], 2)
	binary.BigEndian.PutUint16(frame[4:HeaderSize], TypeValidation)
	// Field 1 wire type 2 with a length pointing past the payload end.
	frame[HeaderSize] = 0x0a
	frame[HeaderSize+1] = 0x7f

	_, _, err := Decode(frame)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
