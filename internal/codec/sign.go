package codec

import (
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/golang/protobuf/proto"
	"github.com/rocketbft/rocket/pb"
)

// proposalSignPrefix is the fixed protocol prefix of a signed proposal, "PRP\0".
var proposalSignPrefix = []byte{0x50, 0x52, 0x50, 0x00}

// Sign recomputes the signature of a mutated message in place. Only
// TMProposeSet carries a signature the controller can recompute; signing any
// other kind fails with ErrUnsupportedSignOperation.
//
// The canonical signed byte sequence is the protocol prefix, the proposal
// sequence and close time as big-endian u32, then the previous-ledger and
// current-transaction hashes. The digest is the first half of SHA-512, signed
// with deterministic (RFC 6979) secp256k1 ECDSA, so re-signing an unchanged
// message reproduces the same signature.
func Sign(message proto.Message, privateKeyHex string) error {
	propose, ok := message.(*pb.TMProposeSet)
	if !ok {
		return fmt.Errorf("%w: no signed-byte layout for %T", ErrUnsupportedSignOperation, message)
	}

	keyBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return fmt.Errorf("decode private key: %w", err)
	}
	privateKey := secp256k1.PrivKeyFromBytes(keyBytes)

	signed := make([]byte, 0, len(proposalSignPrefix)+8+len(propose.PreviousLedger)+len(propose.CurrentTxHash))
	signed = append(signed, proposalSignPrefix...)
	signed = binary.BigEndian.AppendUint32(signed, propose.ProposeSeq)
	signed = binary.BigEndian.AppendUint32(signed, propose.CloseTime)
	signed = append(signed, propose.PreviousLedger...)
	signed = append(signed, propose.CurrentTxHash...)

	digest := sha512.Sum512(signed)
	signature := ecdsa.Sign(privateKey, digest[:32])
	propose.Signature = signature.Serialize()
	return nil
}
