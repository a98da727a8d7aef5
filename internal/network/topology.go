package network

import (
	"fmt"
	"sync"

	"github.com/rocketbft/rocket/internal/utils"
	"github.com/rocketbft/rocket/pb"
	log "github.com/sirupsen/logrus"
)

// Topology holds the port-to-id bijection and the symmetric communication
// matrix of the current validator network. Peer ids are dense indices in
// [0, N) assigned in node-list order.
type Topology struct {
	mutex      sync.RWMutex
	nodeAmount int
	portToID   map[uint32]int
	idToPort   map[int]uint32
	matrix     [][]bool
	keys       map[string]string // validator public key hex -> private key hex
}

func CreateTopology() *Topology {
	return &Topology{
		portToID: make(map[uint32]int),
		idToPort: make(map[int]uint32),
		keys:     make(map[string]string),
	}
}

// SetNodes rebuilds the bijection and the key material from a validator node
// list and resets the matrix to one fully connected partition. The swap is
// atomic: stale entries never outlive the node list that produced them.
func (t *Topology) SetNodes(nodes []*pb.ValidatorNodeInfo) {
	portToID := make(map[uint32]int, len(nodes))
	idToPort := make(map[int]uint32, len(nodes))
	keys := make(map[string]string, len(nodes))
	for id, node := range nodes {
		port := node.GetPeer().GetPort()
		portToID[port] = id
		idToPort[id] = port
		if keyData := node.GetKeyData(); keyData != nil {
			keys[keyData.ValidationPublicKey] = keyData.ValidationPrivateKey
		}
	}

	t.mutex.Lock()
	t.nodeAmount = len(nodes)
	t.portToID = portToID
	t.idToPort = idToPort
	t.keys = keys
	t.matrix = fullMatrix(len(nodes))
	t.mutex.Unlock()
	log.Infof("[Topology] Updated network with %d nodes", len(nodes))
}

func fullMatrix(n int) [][]bool {
	matrix := make([][]bool, n)
	for i := range matrix {
		matrix[i] = make([]bool, n)
		for j := range matrix[i] {
			matrix[i][j] = i != j
		}
	}
	return matrix
}

// Partition validates that parts is an exact set-partition of the current
// peer ids and rewrites the matrix symmetrically, overriding any preceding
// connect/disconnect calls. On failure the prior matrix is left untouched.
func (t *Topology) Partition(parts [][]int) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.partitionLocked(parts)
}

func (t *Topology) partitionLocked(parts [][]int) error {
	ids := utils.Flatten(parts)
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if id < 0 || id >= t.nodeAmount || seen[id] {
			return fmt.Errorf("%w: %v is not a partition of [0, %d)", ErrInvalidPartition, parts, t.nodeAmount)
		}
		seen[id] = true
	}
	if len(ids) != t.nodeAmount {
		return fmt.Errorf("%w: %v covers %d of %d peers", ErrInvalidPartition, parts, len(ids), t.nodeAmount)
	}

	matrix := make([][]bool, t.nodeAmount)
	for i := range matrix {
		matrix[i] = make([]bool, t.nodeAmount)
	}
	for _, part := range parts {
		for i := 0; i < len(part); i++ {
			for j := i + 1; j < len(part); j++ {
				matrix[part[i]][part[j]] = true
				matrix[part[j]][part[i]] = true
			}
		}
	}
	t.matrix = matrix
	return nil
}

// ResetCommunications falls back to one fully connected partition.
func (t *Topology) ResetCommunications() {
	t.mutex.Lock()
	t.matrix = fullMatrix(t.nodeAmount)
	t.mutex.Unlock()
}

func (t *Topology) validatePairLocked(a, b int) error {
	if a == b || a < 0 || b < 0 || a >= t.nodeAmount || b >= t.nodeAmount {
		return fmt.Errorf("%w: pair (%d, %d) with %d nodes", ErrInvalidPeer, a, b, t.nodeAmount)
	}
	return nil
}

// Connect allows communication between two peers.
func (t *Topology) Connect(a, b int) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if err := t.validatePairLocked(a, b); err != nil {
		return err
	}
	t.matrix[a][b] = true
	t.matrix[b][a] = true
	return nil
}

// Disconnect disallows communication between two peers.
func (t *Topology) Disconnect(a, b int) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if err := t.validatePairLocked(a, b); err != nil {
		return err
	}
	t.matrix[a][b] = false
	t.matrix[b][a] = false
	return nil
}

// Reachable reports whether from may currently communicate with to.
func (t *Topology) Reachable(from, to int) (bool, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	if err := t.validatePairLocked(from, to); err != nil {
		return false, err
	}
	return t.matrix[from][to], nil
}

// PortToID maps a transport port to its peer id.
func (t *Topology) PortToID(port uint32) (int, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	id, ok := t.portToID[port]
	if !ok {
		return 0, fmt.Errorf("%w: port %d not found in current network", ErrInvalidPeer, port)
	}
	return id, nil
}

// IDToPort maps a peer id to its transport port.
func (t *Topology) IDToPort(id int) (uint32, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	port, ok := t.idToPort[id]
	if !ok {
		return 0, fmt.Errorf("%w: peer id %d not found in current network", ErrInvalidPeer, id)
	}
	return port, nil
}

// NodeAmount returns the number of peers in the current network.
func (t *Topology) NodeAmount() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.nodeAmount
}

// PrivateKey returns the private key paired with a validator public key,
// both hex encoded. Used only for re-signing mutated messages.
func (t *Topology) PrivateKey(publicKey string) (string, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	key, ok := t.keys[publicKey]
	return key, ok
}
