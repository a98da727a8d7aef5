// Package pipeline turns one intercepted packet into a delivery decision by
// orchestrating replay lookup, partition enforcement and the active fault
// policy.
package pipeline

import (
	"fmt"

	"github.com/rocketbft/rocket/internal/codec"
	"github.com/rocketbft/rocket/internal/network"
	"github.com/rocketbft/rocket/internal/policy"
	"github.com/rocketbft/rocket/internal/rounds"
	"github.com/rocketbft/rocket/pb"
	log "github.com/sirupsen/logrus"
)

// Pipeline processes intercepted packets. One instance is shared by all
// concurrent RPC handlers; the components it orchestrates do their own
// locking.
type Pipeline struct {
	network       *network.Manager
	tracker       *rounds.Tracker
	policy        policy.Policy
	autoPartition bool
}

// CreatePipeline creates a packet pipeline. autoPartition forces a drop for
// pairs the topology marks unreachable, before the policy ever sees the
// packet.
func CreatePipeline(manager *network.Manager, tracker *rounds.Tracker, pol policy.Policy, autoPartition bool) *Pipeline {
	return &Pipeline{
		network:       manager,
		tracker:       tracker,
		policy:        pol,
		autoPartition: autoPartition,
	}
}

// ProcessPacket decides what happens to one intercepted packet: the bytes to
// forward, the action (deliver, delay in ms, or the drop sentinel) and the
// send amount. Decisions are made in order: replay lookup, partition check,
// policy. The original packet is always inspected for a validated-ledger
// signal afterwards, whatever the decision was.
func (p *Pipeline) ProcessPacket(packet *pb.Packet) (final []byte, action uint32, sendAmount uint32, err error) {
	fromID, err := p.network.Topology().PortToID(packet.FromPort)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("resolve sender: %w", err)
	}
	toID, err := p.network.Topology().PortToID(packet.ToPort)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("resolve receiver: %w", err)
	}

	final, action, sendAmount, err = p.decide(packet, fromID, toID)
	if err != nil {
		return nil, 0, 0, err
	}

	p.observeStatus(packet.Data, fromID)
	return final, action, sendAmount, nil
}

func (p *Pipeline) decide(packet *pb.Packet, fromID, toID int) ([]byte, uint32, uint32, error) {
	if p.network.AutoReplay() {
		final, action, ok, err := p.network.MatchIdentical(fromID, toID, packet.Data)
		if err != nil {
			return nil, 0, 0, err
		}
		if ok {
			return final, action, 1, nil
		}
	}
	if p.network.AutoSubsets() {
		final, action, ok, err := p.network.MatchSubsets(fromID, toID, packet.Data)
		if err != nil {
			return nil, 0, 0, err
		}
		if ok {
			return final, action, 1, nil
		}
	}

	final, action, sendAmount, err := p.freshDecision(packet, fromID, toID)
	if err != nil {
		return nil, 0, 0, err
	}

	if p.network.AutoReplay() || p.network.AutoSubsets() {
		if err := p.network.RecordAction(fromID, toID, packet.Data, final, action); err != nil {
			return nil, 0, 0, err
		}
	}
	return final, action, sendAmount, nil
}

func (p *Pipeline) freshDecision(packet *pb.Packet, fromID, toID int) ([]byte, uint32, uint32, error) {
	if p.autoPartition {
		reachable, err := p.network.Topology().Reachable(fromID, toID)
		if err != nil {
			return nil, 0, 0, err
		}
		if !reachable {
			log.Debugf("[Pipeline] Partition drop from %d to %d", fromID, toID)
			return packet.Data, policy.DropAction, 1, nil
		}
	}
	final, action, sendAmount := p.policy.HandlePacket(packet)
	return final, action, sendAmount, nil
}

// observeStatus feeds the round tracker from status-change messages seen on
// the wire. This is passive observation: decode failures are expected for
// most traffic and never affect the delivery decision.
func (p *Pipeline) observeStatus(data []byte, fromID int) {
	message, _, err := codec.Decode(data)
	if err != nil {
		return
	}
	if status, ok := message.(*pb.TMStatusChange); ok {
		p.tracker.OnStatusChange(status, fromID)
	}
}
