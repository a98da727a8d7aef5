package policy

import (
	"math/rand"
	"sync"

	"github.com/rocketbft/rocket/internal/codec"
	"github.com/rocketbft/rocket/internal/config"
	"github.com/rocketbft/rocket/internal/utils"
	"github.com/rocketbft/rocket/pb"
	log "github.com/sirupsen/logrus"
)

// Baseline drops or bit-flips packets probabilistically. Corruption is
// restricted to selected byzantine senders past their first round, and a
// corrupted frame is only forwarded when it still decodes.
type Baseline struct {
	env Environment

	mutex     sync.Mutex
	rng       *rand.Rand
	byzantine map[int]bool

	dropProbability    float64
	corruptProbability float64
	byzantineCount     int
	healRound          uint32
}

func createBaseline(params config.Params, env Environment) (Policy, error) {
	rng, err := newRand(params)
	if err != nil {
		return nil, err
	}
	dropProbability, err := params.Float("drop_probability")
	if err != nil {
		return nil, err
	}
	corruptProbability, err := params.Float("corrupt_probability")
	if err != nil {
		return nil, err
	}
	if dropProbability < 0 || corruptProbability < 0 {
		return nil, errNegativeProbabilities(dropProbability, corruptProbability)
	}
	if dropProbability+corruptProbability > 1.0 {
		return nil, errProbabilitySum(dropProbability + corruptProbability)
	}
	byzantineCount, err := params.IntOr("byzantine_nodes", 1)
	if err != nil {
		return nil, err
	}
	healRound, err := params.IntOr("heal_round", 8)
	if err != nil {
		return nil, err
	}

	p := &Baseline{
		env:                env,
		rng:                rng,
		byzantine:          make(map[int]bool),
		dropProbability:    dropProbability,
		corruptProbability: corruptProbability,
		byzantineCount:     byzantineCount,
		healRound:          uint32(healRound),
	}
	env.Tracker.RegisterResetCallback(p.resetIteration)
	return p, nil
}

func (p *Baseline) Setup() error {
	p.resetIteration()
	return nil
}

func (p *Baseline) Stop() {}

// resetIteration re-selects the byzantine senders for the new iteration.
func (p *Baseline) resetIteration() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	n := p.env.Network.Topology().NodeAmount()
	p.byzantine = make(map[int]bool, p.byzantineCount)
	if n == 0 {
		return
	}
	for _, id := range p.rng.Perm(n)[:min(p.byzantineCount, n)] {
		p.byzantine[id] = true
	}
	log.Debugf("[Baseline] Selected byzantine nodes: %v", utils.Keys(p.byzantine))
}

func (p *Baseline) HandlePacket(packet *pb.Packet) ([]byte, uint32, uint32) {
	fromID, err := p.env.Network.Topology().PortToID(packet.FromPort)
	if err != nil {
		return packet.Data, DeliverAction, 1
	}
	toID, err := p.env.Network.Topology().PortToID(packet.ToPort)
	if err != nil {
		return packet.Data, DeliverAction, 1
	}

	round := p.env.Tracker.CurrentRound(fromID)
	if round > p.healRound {
		// Let the network heal at the end of the iteration.
		return packet.Data, DeliverAction, 1
	}

	p.mutex.Lock()
	choice := p.rng.Float64()
	isByzantine := p.byzantine[fromID]
	p.mutex.Unlock()

	switch {
	case choice < p.dropProbability:
		log.Debugf("[Baseline] Dropping message from %d to %d, round %d", fromID, toID, round)
		return packet.Data, DropAction, 1
	case choice < p.dropProbability+p.corruptProbability:
		if !isByzantine || round <= 1 {
			return packet.Data, DeliverAction, 1
		}
		corrupted, ok := p.corrupt(packet.Data)
		if !ok {
			return packet.Data, DeliverAction, 1
		}
		// Never forward an unparsable frame: a failed corruption falls
		// back to the original bytes.
		if _, _, err := codec.Decode(corrupted); err != nil {
			log.Infof("[Baseline] Mutation produced a syntactically incorrect message, forwarding original")
			return packet.Data, DeliverAction, 1
		}
		log.Debugf("[Baseline] Mutating message from %d to %d, round %d", fromID, toID, round)
		return corrupted, DeliverAction, 1
	default:
		return packet.Data, DeliverAction, 1
	}
}

// corrupt flips one random bit in one random payload byte, past the frame
// header.
func (p *Baseline) corrupt(data []byte) ([]byte, bool) {
	if len(data) <= codec.HeaderSize {
		log.Errorf("[Baseline] Message of %d bytes is too short to corrupt past the header", len(data))
		return data, false
	}
	p.mutex.Lock()
	index := codec.HeaderSize + p.rng.Intn(len(data)-codec.HeaderSize)
	bit := byte(1) << p.rng.Intn(8)
	p.mutex.Unlock()

	corrupted := make([]byte, len(data))
	copy(corrupted, data)
	corrupted[index] ^= bit
	return corrupted, true
}
