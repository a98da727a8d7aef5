package policy

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/rocketbft/rocket/internal/config"
	"github.com/rocketbft/rocket/pb"
)

// RandomFuzzer drops or delays packets at random, without inspecting them.
type RandomFuzzer struct {
	mutex sync.Mutex
	rng   *rand.Rand

	sendProbability float64
	dropProbability float64
	minDelayMs      int
	maxDelayMs      int
}

func createRandomFuzzer(params config.Params, env Environment) (Policy, error) {
	rng, err := newRand(params)
	if err != nil {
		return nil, err
	}
	dropProbability, err := params.Float("drop_probability")
	if err != nil {
		return nil, err
	}
	delayProbability, err := params.Float("delay_probability")
	if err != nil {
		return nil, err
	}
	minDelayMs, err := params.Int("min_delay_ms")
	if err != nil {
		return nil, err
	}
	maxDelayMs, err := params.Int("max_delay_ms")
	if err != nil {
		return nil, err
	}

	if dropProbability < 0 || delayProbability < 0 {
		return nil, fmt.Errorf("drop and delay probabilities must be non-negative, got drop %f and delay %f", dropProbability, delayProbability)
	}
	if dropProbability+delayProbability > 1.0 {
		return nil, fmt.Errorf("drop and delay probabilities must sum to at most 1.0, got %f", dropProbability+delayProbability)
	}
	if minDelayMs < 0 || maxDelayMs < 0 {
		return nil, fmt.Errorf("delay bounds must be non-negative, got min %d and max %d", minDelayMs, maxDelayMs)
	}
	if minDelayMs > maxDelayMs {
		return nil, fmt.Errorf("min delay %d exceeds max delay %d", minDelayMs, maxDelayMs)
	}

	return &RandomFuzzer{
		rng:             rng,
		sendProbability: 1 - dropProbability - delayProbability,
		dropProbability: dropProbability,
		minDelayMs:      minDelayMs,
		maxDelayMs:      maxDelayMs,
	}, nil
}

func (f *RandomFuzzer) Setup() error { return nil }

func (f *RandomFuzzer) Stop() {}

func (f *RandomFuzzer) HandlePacket(packet *pb.Packet) ([]byte, uint32, uint32) {
	f.mutex.Lock()
	choice := f.rng.Float64()
	delay := f.minDelayMs
	if f.maxDelayMs > f.minDelayMs {
		delay += f.rng.Intn(f.maxDelayMs - f.minDelayMs + 1)
	}
	f.mutex.Unlock()

	switch {
	case choice < f.sendProbability:
		return packet.Data, DeliverAction, 1
	case choice < f.sendProbability+f.dropProbability:
		return packet.Data, DropAction, 1
	default:
		return packet.Data, uint32(delay), 1
	}
}
