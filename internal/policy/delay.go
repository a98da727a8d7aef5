package policy

import (
	"fmt"
	"sync"

	"github.com/rocketbft/rocket/internal/codec"
	"github.com/rocketbft/rocket/internal/config"
	"github.com/rocketbft/rocket/pb"
	log "github.com/sirupsen/logrus"
)

// messageTypeCount is the number of consensus message kinds the encoding
// covers: tags 30 through 35 plus validations.
const messageTypeCount = 7

// DelayEncoding replays a fixed action vector. Every (message type, sender,
// receiver) triple maps to one entry of the vector, so a test case is fully
// described by the encoding and can be reproduced exactly.
type DelayEncoding struct {
	env Environment

	mutex    sync.RWMutex
	encoding []int
	nodes    int
}

func createDelayEncoding(params config.Params, env Environment) (Policy, error) {
	encoding, err := params.IntSlice("encoding")
	if err != nil {
		return nil, err
	}
	return &DelayEncoding{env: env, encoding: encoding}, nil
}

// Setup checks the encoding length against the node amount. The vector needs
// one entry per message type and ordered sender/receiver pair.
func (p *DelayEncoding) Setup() error {
	n := p.env.Network.Topology().NodeAmount()
	expected := messageTypeCount * n * (n - 1)
	if len(p.encoding) != expected {
		return fmt.Errorf("encoding has %d entries, want %d for %d nodes", len(p.encoding), expected, n)
	}
	p.mutex.Lock()
	p.nodes = n
	p.mutex.Unlock()
	log.Infof("[DelayEncoding] Loaded encoding for %d nodes", n)
	return nil
}

func (p *DelayEncoding) Stop() {}

// typeIndex maps a wire tag to its slot in the encoding, or -1 for message
// kinds the encoding does not cover.
func typeIndex(tag uint16) int {
	switch {
	case tag >= codec.TypeTransaction && tag <= codec.TypeHaveTransactionSet:
		return int(tag - codec.TypeTransaction)
	case tag == codec.TypeValidation:
		return messageTypeCount - 1
	default:
		return -1
	}
}

func (p *DelayEncoding) HandlePacket(packet *pb.Packet) ([]byte, uint32, uint32) {
	_, tag, err := codec.Decode(packet.Data)
	if err != nil {
		return packet.Data, DeliverAction, 1
	}
	typeID := typeIndex(tag)
	if typeID < 0 {
		return packet.Data, DeliverAction, 1
	}
	fromID, err := p.env.Network.Topology().PortToID(packet.FromPort)
	if err != nil {
		return packet.Data, DeliverAction, 1
	}
	toID, err := p.env.Network.Topology().PortToID(packet.ToPort)
	if err != nil {
		return packet.Data, DeliverAction, 1
	}

	p.mutex.RLock()
	defer p.mutex.RUnlock()
	if p.nodes == 0 {
		return packet.Data, DeliverAction, 1
	}
	// Receivers are numbered 0..n-2 with the sender itself skipped.
	receiverSlot := toID
	if toID > fromID {
		receiverSlot = toID - 1
	}
	index := typeID*p.nodes*(p.nodes-1) + fromID*(p.nodes-1) + receiverSlot
	return packet.Data, uint32(p.encoding[index]), 1
}
