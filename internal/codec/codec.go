// Package codec frames, parses and signs messages of the validator gossip
// protocol. The wire format is a 4-byte big-endian payload length, a 2-byte
// big-endian message type tag and a protobuf payload.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/golang/protobuf/proto"
	"github.com/rocketbft/rocket/pb"
)

// Message type tags as defined by the peer protocol enum. Tags outside this
// set exist on the wire but are never decoded by the controller.
const (
	TypePing               uint16 = 3
	TypeTransaction        uint16 = 30
	TypeGetLedger          uint16 = 31
	TypeLedgerData         uint16 = 32
	TypeProposeSet         uint16 = 33
	TypeStatusChange       uint16 = 34
	TypeHaveTransactionSet uint16 = 35
	TypeValidation         uint16 = 41
)

// HeaderSize is the length of the frame header preceding the payload.
const HeaderSize = 6

// ErrUnsupportedType signals that a frame carries an unknown type tag or a
// payload that does not parse. Callers must treat this as recoverable and
// forward the original bytes unchanged.
var ErrUnsupportedType = errors.New("unsupported message type")

// ErrUnsupportedSignOperation signals a signing attempt on a message kind
// without a defined signed-byte layout. This is a programming error.
var ErrUnsupportedSignOperation = errors.New("unsupported sign operation")

func newMessage(tag uint16) proto.Message {
	switch tag {
	case TypePing:
		return &pb.TMPing{}
	case TypeTransaction:
		return &pb.TMTransaction{}
	case TypeGetLedger:
		return &pb.TMGetLedger{}
	case TypeLedgerData:
		return &pb.TMLedgerData{}
	case TypeProposeSet:
		return &pb.TMProposeSet{}
	case TypeStatusChange:
		return &pb.TMStatusChange{}
	case TypeHaveTransactionSet:
		return &pb.TMHaveTransactionSet{}
	case TypeValidation:
		return &pb.TMValidation{}
	}
	return nil
}

// Decode parses a framed packet into its typed message and type tag.
func Decode(data []byte) (proto.Message, uint16, error) {
	if len(data) < HeaderSize {
		return nil, 0, fmt.Errorf("%w: frame of %d bytes is shorter than the header", ErrUnsupportedType, len(data))
	}
	tag := binary.BigEndian.Uint16(data[4:HeaderSize])
	message := newMessage(tag)
	if message == nil {
		return nil, tag, fmt.Errorf("%w: unknown type tag %d", ErrUnsupportedType, tag)
	}
	if err := proto.Unmarshal(data[HeaderSize:], message); err != nil {
		return nil, tag, fmt.Errorf("%w: payload of type %d does not parse: %v", ErrUnsupportedType, tag, err)
	}
	return message, tag, nil
}

// Encode is the inverse of Decode: it serializes the message and prepends the
// length and type header.
func Encode(message proto.Message, tag uint16) ([]byte, error) {
	payload, err := proto.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("encode type %d: %w", tag, err)
	}
	frame := make([]byte, HeaderSize+len(payload))
	binary.BigEndian.PutUint32(frame[0:4], uint32(len(payload)))
	binary.BigEndian.PutUint16(frame[4:HeaderSize], tag)
	copy(frame[HeaderSize:], payload)
	return frame, nil
}
