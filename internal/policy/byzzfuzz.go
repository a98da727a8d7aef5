package policy

import (
	"encoding/hex"
	"math/rand"
	"sync"

	"github.com/golang/protobuf/proto"
	"github.com/rocketbft/rocket/internal/codec"
	"github.com/rocketbft/rocket/internal/config"
	"github.com/rocketbft/rocket/internal/utils"
	"github.com/rocketbft/rocket/pb"
	log "github.com/sirupsen/logrus"
)

// networkFault partitions the network during one consensus round.
type networkFault struct {
	round  uint32
	cellOf map[int]int
}

// processFault lets byzantine senders mutate messages to a receiver subset
// during one consensus round.
type processFault struct {
	round     uint32
	receivers map[int]bool
}

// ByzzFuzz injects a bounded number of round-scheduled network and process
// faults, drawn once per iteration. The per-node round is the node's
// validated ledger sequence as tracked by the round tracker, not a
// packet-local clock.
type ByzzFuzz struct {
	env Environment

	mutex         sync.Mutex
	rng           *rand.Rand
	networkFaults []networkFault
	processFaults []processFault
	byzantine     map[int]bool

	// Previously observed field values, the mutation pool for small-scope
	// corruption. Reset per iteration.
	oldProposals    [][]byte
	oldValidations  [][]byte
	oldTransactions [][]byte

	maxRounds         int
	networkFaultCount int
	processFaultCount int
	byzantineCount    int
	smallScope        bool
}

// zeroHash is the large-scope mutation sentinel.
var zeroHash = make([]byte, 32)

func createByzzFuzz(params config.Params, env Environment) (Policy, error) {
	rng, err := newRand(params)
	if err != nil {
		return nil, err
	}
	maxRounds, err := params.Int("rounds")
	if err != nil {
		return nil, err
	}
	networkFaultCount, err := params.Int("network_faults")
	if err != nil {
		return nil, err
	}
	processFaultCount, err := params.Int("process_faults")
	if err != nil {
		return nil, err
	}
	smallScope, err := params.Bool("small_scope")
	if err != nil {
		return nil, err
	}
	byzantineCount, err := params.IntOr("byzantine_nodes", 1)
	if err != nil {
		return nil, err
	}

	p := &ByzzFuzz{
		env:               env,
		rng:               rng,
		byzantine:         make(map[int]bool),
		maxRounds:         maxRounds,
		networkFaultCount: networkFaultCount,
		processFaultCount: processFaultCount,
		byzantineCount:    byzantineCount,
		smallScope:        smallScope,
	}
	env.Tracker.RegisterResetCallback(p.resetIteration)
	return p, nil
}

func (p *ByzzFuzz) Setup() error {
	p.resetIteration()
	return nil
}

func (p *ByzzFuzz) Stop() {}

// resetIteration precomputes the iteration's fault schedule. The schedule is
// immutable afterwards; packet handling only reads it.
func (p *ByzzFuzz) resetIteration() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	n := p.env.Network.Topology().NodeAmount()
	p.oldProposals = nil
	p.oldValidations = nil
	p.oldTransactions = nil
	p.networkFaults = p.networkFaults[:0]
	p.processFaults = p.processFaults[:0]
	p.byzantine = make(map[int]bool, p.byzantineCount)
	if n == 0 {
		return
	}

	for i := 0; i < p.networkFaultCount; i++ {
		round := uint32(1 + p.rng.Intn(p.maxRounds))
		parts := randomPartition(p.rng, n)
		cellOf := make(map[int]int, n)
		for cell, part := range parts {
			for _, id := range part {
				cellOf[id] = cell
			}
		}
		p.networkFaults = append(p.networkFaults, networkFault{round: round, cellOf: cellOf})
		log.Debugf("[ByzzFuzz] Network fault at round %d: %v", round, parts)
	}

	for i := 0; i < p.processFaultCount; i++ {
		round := uint32(1 + p.rng.Intn(p.maxRounds))
		receivers := make(map[int]bool)
		for _, id := range randomSubset(p.rng, n) {
			receivers[id] = true
		}
		p.processFaults = append(p.processFaults, processFault{round: round, receivers: receivers})
		log.Debugf("[ByzzFuzz] Process fault at round %d: %v", round, receivers)
	}

	for _, id := range p.rng.Perm(n)[:min(p.byzantineCount, n)] {
		p.byzantine[id] = true
	}
	log.Debugf("[ByzzFuzz] Selected byzantine nodes: %v", utils.Keys(p.byzantine))
}

func (p *ByzzFuzz) HandlePacket(packet *pb.Packet) ([]byte, uint32, uint32) {
	fromID, err := p.env.Network.Topology().PortToID(packet.FromPort)
	if err != nil {
		return packet.Data, DeliverAction, 1
	}
	toID, err := p.env.Network.Topology().PortToID(packet.ToPort)
	if err != nil {
		return packet.Data, DeliverAction, 1
	}
	senderRound := p.env.Tracker.CurrentRound(fromID)

	message, tag, err := codec.Decode(packet.Data)
	if err == nil {
		p.observe(message)
	}

	p.mutex.Lock()
	dropped := false
	for _, fault := range p.networkFaults {
		if fault.round == senderRound && fault.cellOf[fromID] != fault.cellOf[toID] {
			dropped = true
			break
		}
	}
	mutate := false
	if p.byzantine[fromID] {
		for _, fault := range p.processFaults {
			if fault.round == senderRound && fault.receivers[toID] {
				mutate = true
				break
			}
		}
	}
	p.mutex.Unlock()

	if dropped {
		log.Debugf("[ByzzFuzz] Dropping message from %d to %d, round %d", fromID, toID, senderRound)
		return packet.Data, DropAction, 1
	}
	if !mutate || err != nil {
		return packet.Data, DeliverAction, 1
	}

	mutated, ok := p.corrupt(message, tag)
	if !ok {
		return packet.Data, DeliverAction, 1
	}
	log.Debugf("[ByzzFuzz] Mutated message of type %d from %d to %d, round %d", tag, fromID, toID, senderRound)
	return mutated, DeliverAction, 1
}

// observe feeds the small-scope mutation pool with field values seen on the
// wire.
func (p *ByzzFuzz) observe(message proto.Message) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	switch m := message.(type) {
	case *pb.TMProposeSet:
		p.oldProposals = append(p.oldProposals, m.CurrentTxHash)
	case *pb.TMValidation:
		p.oldValidations = append(p.oldValidations, m.Validation)
	case *pb.TMTransaction:
		p.oldTransactions = append(p.oldTransactions, m.RawTransaction)
	}
}

// replacement picks the mutated field value: a previously observed one under
// small scope, the zero sentinel under large scope or an empty pool.
func (p *ByzzFuzz) replacement(pool [][]byte) []byte {
	if p.smallScope && len(pool) > 0 {
		return pool[p.rng.Intn(len(pool))]
	}
	return zeroHash
}

// corrupt mutates one field of the decoded message depending on its kind and
// re-encodes it. Any re-encode or re-sign failure reports !ok so the caller
// forwards the unmutated original.
func (p *ByzzFuzz) corrupt(message proto.Message, tag uint16) ([]byte, bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	switch m := message.(type) {
	case *pb.TMProposeSet:
		if p.rng.Intn(2) == 0 {
			// The sequence may never go below 1.
			delta := int32(1)
			if m.ProposeSeq > 1 && p.rng.Intn(2) == 0 {
				delta = -1
			}
			m.ProposeSeq = uint32(int32(m.ProposeSeq) + delta)
		} else {
			m.CurrentTxHash = p.replacement(p.oldProposals)
		}
		privateKey, ok := p.env.Network.Topology().PrivateKey(hex.EncodeToString(m.NodePubKey))
		if !ok {
			log.Warnf("[ByzzFuzz] No private key for proposal sender, forwarding original")
			return nil, false
		}
		if err := codec.Sign(m, privateKey); err != nil {
			log.Warnf("[ByzzFuzz] Re-signing mutated proposal failed: %v", err)
			return nil, false
		}
	case *pb.TMValidation:
		m.Validation = p.replacement(p.oldValidations)
	case *pb.TMTransaction:
		m.RawTransaction = p.replacement(p.oldTransactions)
	default:
		return nil, false
	}

	encoded, err := codec.Encode(message, tag)
	if err != nil {
		log.Warnf("[ByzzFuzz] Re-encoding mutated message failed: %v", err)
		return nil, false
	}
	return encoded, true
}
