package policy

import (
	"fmt"
	"testing"
	"time"

	"github.com/rocketbft/rocket/internal/config"
	"github.com/rocketbft/rocket/internal/network"
	"github.com/rocketbft/rocket/internal/rounds"
	"github.com/rocketbft/rocket/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopProcess struct{}

func (nopProcess) StartNew() error { return nil }
func (nopProcess) Restart() error  { return nil }
func (nopProcess) Stop()           {}

type nopSink struct{}

func (nopSink) StartIteration(int) error                        { return nil }
func (nopSink) LogLedger(int, int, uint32, time.Duration) error { return nil }
func (nopSink) Close() error                                    { return nil }

// newTestEnv builds a policy environment with n known validator nodes on
// peer ports 60000, 60001, ...
func newTestEnv(t *testing.T, n int) Environment {
	t.Helper()
	nodes := make([]*pb.ValidatorNodeInfo, n)
	for i := range nodes {
		nodes[i] = &pb.ValidatorNodeInfo{
			Peer: &pb.SocketAddress{Host: "localhost", Port: uint32(60000 + i)},
			KeyData: &pb.ValidatorKeyData{
				ValidationPublicKey:  fmt.Sprintf("pub-%d", i),
				ValidationPrivateKey: fmt.Sprintf("priv-%d", i),
			},
		}
	}

	manager := network.CreateManager(false, false)
	require.NoError(t, manager.UpdateNodes(nodes))

	tracker, err := rounds.CreateTracker(rounds.Config{
		MaxIterations: 1,
		MaxLedgerSeq:  10,
		Timeout:       time.Minute,
	}, nopProcess{}, nopSink{})
	require.NoError(t, err)
	require.NoError(t, tracker.SetNodes(n))

	return Environment{Network: manager, Tracker: tracker}
}

func testPacket(fromPort, toPort uint32, data []byte) *pb.Packet {
	return &pb.Packet{Data: data, FromPort: fromPort, ToPort: toPort}
}

// TestCreate_UnknownStrategy tests registry lookup failure.
func TestCreate_UnknownStrategy(t *testing.T) {
	_, err := Create("NoSuchStrategy", config.Params{}, newTestEnv(t, 1))
	assert.Error(t, err)
}

// TestNames_ListsAllStrategies tests the registry surface.
func TestNames_ListsAllStrategies(t *testing.T) {
	assert.Equal(t, []string{
		"ByzzFuzz", "ByzzFuzzBaseline", "DelayEncoding", "PriorityQueue", "RandomFuzzer",
	}, Names())
}
