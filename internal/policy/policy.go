// Package policy holds the pluggable fault policies that decide, per packet,
// whether to deliver, delay, drop, duplicate or mutate traffic.
package policy

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/rocketbft/rocket/internal/config"
	"github.com/rocketbft/rocket/internal/network"
	"github.com/rocketbft/rocket/internal/rounds"
	"github.com/rocketbft/rocket/internal/utils"
	"github.com/rocketbft/rocket/pb"
)

// DropAction is the distinguished action value that drops a packet. Any
// other non-zero action is a delay in milliseconds.
const DropAction uint32 = math.MaxUint32

// DeliverAction delivers a packet immediately.
const DeliverAction uint32 = 0

// Policy is one fault-injection strategy. HandlePacket returns the final
// packet bytes, the action and the send amount; it runs concurrently with
// itself, one invocation per in-flight packet.
type Policy interface {
	// Setup is invoked after every network update, before packets flow.
	Setup() error
	HandlePacket(packet *pb.Packet) (data []byte, action uint32, sendAmount uint32)
	// Stop releases background resources and unblocks any waiting handler.
	Stop()
}

// Environment is the capability set handed to every policy.
type Environment struct {
	Network *network.Manager
	Tracker *rounds.Tracker
}

// Constructor builds a policy from its parameter map.
type Constructor func(params config.Params, env Environment) (Policy, error)

// registry maps a strategy name, as given on the command line, to its
// constructor. Strategies are registered here explicitly; there is no
// runtime discovery.
var registry = map[string]Constructor{
	"RandomFuzzer":     createRandomFuzzer,
	"ByzzFuzzBaseline": createBaseline,
	"ByzzFuzz":         createByzzFuzz,
	"DelayEncoding":    createDelayEncoding,
	"PriorityQueue":    createPriorityQueue,
}

// Create instantiates a registered policy by name.
func Create(name string, params config.Params, env Environment) (Policy, error) {
	constructor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q, registered: %v", name, Names())
	}
	return constructor(params, env)
}

// Names lists the registered strategy names.
func Names() []string {
	names := utils.Keys(registry)
	sort.Strings(names)
	return names
}

func errNegativeProbabilities(a, b float64) error {
	return fmt.Errorf("probabilities must be non-negative, got %f and %f", a, b)
}

func errProbabilitySum(sum float64) error {
	return fmt.Errorf("probabilities must sum to at most 1.0, got %f", sum)
}

// newRand builds the policy's random source from the optional "seed"
// parameter, falling back to a random seed.
func newRand(params config.Params) (*rand.Rand, error) {
	seed, err := params.IntOr("seed", 0)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		return rand.New(rand.NewSource(rand.Int63())), nil
	}
	return rand.New(rand.NewSource(int64(seed))), nil
}
