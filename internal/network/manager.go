// Package network models the intercepted validator network: the peer
// topology and partition matrix, and the bounded replay history that keeps
// decisions deterministic for repeated and broadcast messages.
package network

import (
	"fmt"
	"sync"

	"github.com/rocketbft/rocket/pb"
)

// SubsetSpec names the broadcast receivers of one sender that should be
// treated as receiving "the same" message for replay purposes. Groups takes
// precedence when set; otherwise Peers is a single flat subset.
type SubsetSpec struct {
	Peers  []int
	Groups [][]int
}

// Manager combines the Topology with the replay buffer matrix and the
// per-sender subset map. One Manager is shared by all concurrent
// packet-handling invocations.
type Manager struct {
	topology *Topology

	autoReplay  bool
	autoSubsets bool

	mutex   sync.RWMutex
	replay  [][]*ReplayBuffer
	subsets map[int]SubsetSpec
}

// CreateManager creates a network manager. autoReplay enables reuse of
// decisions for byte-identical resends; autoSubsets extends that reuse across
// configured broadcast-equivalence subsets.
func CreateManager(autoReplay, autoSubsets bool) *Manager {
	return &Manager{
		topology:    CreateTopology(),
		autoReplay:  autoReplay,
		autoSubsets: autoSubsets,
		subsets:     make(map[int]SubsetSpec),
	}
}

// Topology returns the underlying topology.
func (m *Manager) Topology() *Topology {
	return m.topology
}

// AutoReplay reports whether byte-identical resends reuse previous decisions.
func (m *Manager) AutoReplay() bool {
	return m.autoReplay
}

// AutoSubsets reports whether replay reuse extends across broadcast subsets.
func (m *Manager) AutoSubsets() bool {
	return m.autoSubsets
}

// UpdateNodes rebuilds the topology and all per-iteration replay state from a
// fresh validator node list.
func (m *Manager) UpdateNodes(nodes []*pb.ValidatorNodeInfo) error {
	m.topology.SetNodes(nodes)

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.subsets = make(map[int]SubsetSpec)
	if err := m.rebuildReplayLocked(len(nodes)); err != nil {
		return err
	}
	return nil
}

func (m *Manager) rebuildReplayLocked(n int) error {
	if !m.autoReplay && !m.autoSubsets {
		m.replay = nil
		return nil
	}
	matrix := make([][]*ReplayBuffer, n)
	for i := range matrix {
		matrix[i] = make([]*ReplayBuffer, n)
		for j := range matrix[i] {
			buffer, err := CreateReplayBuffer(n + 1)
			if err != nil {
				return err
			}
			matrix[i][j] = buffer
		}
	}
	m.replay = matrix
	return nil
}

// ResetReplay clears all replay history. Called on every iteration restart;
// replay entries live for exactly one test iteration.
func (m *Manager) ResetReplay() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.rebuildReplayLocked(m.topology.NodeAmount())
}

func (m *Manager) cell(from, to int) (*ReplayBuffer, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if from < 0 || to < 0 || from >= len(m.replay) || to >= len(m.replay) || from == to {
		return nil, fmt.Errorf("%w: replay cell (%d, %d)", ErrInvalidPeer, from, to)
	}
	return m.replay[from][to], nil
}

// RecordAction persists one (initial, final, action) decision for a sender
// and receiver pair.
func (m *Manager) RecordAction(from, to int, initial, final []byte, action uint32) error {
	if !m.autoReplay && !m.autoSubsets {
		return fmt.Errorf("recording actions requires auto replay or auto subsets")
	}
	buffer, err := m.cell(from, to)
	if err != nil {
		return err
	}
	buffer.Record(initial, final, action)
	return nil
}

// MatchIdentical looks for a previous decision on a byte-identical message
// for the literal (from, to) pair.
func (m *Manager) MatchIdentical(from, to int, message []byte) (final []byte, action uint32, ok bool, err error) {
	if !m.autoReplay && !m.autoSubsets {
		return nil, 0, false, fmt.Errorf("matching requires auto replay or auto subsets")
	}
	buffer, err := m.cell(from, to)
	if err != nil {
		return nil, 0, false, err
	}
	final, action, ok = buffer.Match(message)
	return final, action, ok, nil
}

// SetSubsets installs the subset specification for one sender.
func (m *Manager) SetSubsets(peer int, spec SubsetSpec) error {
	if !m.autoSubsets {
		return fmt.Errorf("auto subsets must be enabled to define subsets")
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.subsets[peer] = spec
	return nil
}

// MatchSubsets performs the layered broadcast lookup: within the subset that
// contains the receiver, any peer's previous decision on the same message is
// reused, and the hit is recorded under the literal (from, to) pair so future
// direct matches succeed without the scan. This keeps one logical decision
// consistent across an entire broadcast fan-out.
func (m *Manager) MatchSubsets(from, to int, message []byte) (final []byte, action uint32, ok bool, err error) {
	if !m.autoSubsets {
		return nil, 0, false, fmt.Errorf("auto subsets must be enabled to match subsets")
	}

	m.mutex.RLock()
	spec := m.subsets[from]
	m.mutex.RUnlock()

	groups := spec.Groups
	if len(groups) == 0 && len(spec.Peers) > 0 {
		groups = [][]int{spec.Peers}
	}
	for _, group := range groups {
		final, action, ok, err = m.matchSubsetEntry(from, to, message, group)
		if err != nil {
			return nil, 0, false, err
		}
		if ok {
			return final, action, true, nil
		}
	}
	return message, 0, false, nil
}

func (m *Manager) matchSubsetEntry(from, to int, message []byte, subset []int) (final []byte, action uint32, ok bool, err error) {
	inSubset := false
	for _, peer := range subset {
		if peer == to {
			inSubset = true
			break
		}
	}
	if !inSubset {
		return message, 0, false, nil
	}

	for _, peer := range subset {
		if peer == from {
			continue
		}
		final, action, ok, err = m.MatchIdentical(from, peer, message)
		if err != nil {
			return nil, 0, false, err
		}
		if ok {
			// A hit on the literal cell is already recorded there.
			if peer != to {
				if err := m.RecordAction(from, to, message, final, action); err != nil {
					return nil, 0, false, err
				}
			}
			return final, action, true, nil
		}
	}
	return message, 0, false, nil
}
