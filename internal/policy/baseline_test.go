package policy

import (
	"testing"

	"github.com/rocketbft/rocket/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineParams(drop, corrupt float64) config.Params {
	return config.Params{
		"seed":                1,
		"drop_probability":    drop,
		"corrupt_probability": corrupt,
	}
}

// TestBaseline_Validation tests rejection of invalid probabilities.
func TestBaseline_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params config.Params
	}{
		{name: "negative drop", params: baselineParams(-0.1, 0.0)},
		{name: "negative corrupt", params: baselineParams(0.0, -0.1)},
		{name: "sum above one", params: baselineParams(0.6, 0.6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := createBaseline(tt.params, newTestEnv(t, 1))
			assert.Error(t, err)
		})
	}
}

// TestBaseline_BenignPassesThrough tests that zero probabilities forward
// every packet byte-identical with immediate delivery.
func TestBaseline_BenignPassesThrough(t *testing.T) {
	baseline, err := createBaseline(baselineParams(0.0, 0.0), newTestEnv(t, 3))
	require.NoError(t, err)
	require.NoError(t, baseline.Setup())

	payload := []byte("consensus payload")
	for i := 0; i < 50; i++ {
		data, action, sendAmount := baseline.HandlePacket(testPacket(60000, 60001, payload))
		assert.Equal(t, payload, data)
		assert.Equal(t, DeliverAction, action)
		assert.Equal(t, uint32(1), sendAmount)
	}
}

// TestBaseline_AlwaysDrop tests that drop probability one yields the drop
// sentinel for every packet.
func TestBaseline_AlwaysDrop(t *testing.T) {
	baseline, err := createBaseline(baselineParams(1.0, 0.0), newTestEnv(t, 3))
	require.NoError(t, err)
	require.NoError(t, baseline.Setup())

	for i := 0; i < 50; i++ {
		_, action, _ := baseline.HandlePacket(testPacket(60000, 60001, []byte("payload")))
		assert.Equal(t, DropAction, action)
	}
}

// TestBaseline_UnknownPortDelivers tests that packets between unknown ports
// bypass fault injection.
func TestBaseline_UnknownPortDelivers(t *testing.T) {
	baseline, err := createBaseline(baselineParams(1.0, 0.0), newTestEnv(t, 2))
	require.NoError(t, err)
	require.NoError(t, baseline.Setup())

	data, action, _ := baseline.HandlePacket(testPacket(59000, 60001, []byte("payload")))
	assert.Equal(t, []byte("payload"), data)
	assert.Equal(t, DeliverAction, action)
}

// TestBaseline_CorruptionInFirstRoundDelivers tests that corruption never
// applies before a sender's second round.
func TestBaseline_CorruptionInFirstRoundDelivers(t *testing.T) {
	params := baselineParams(0.0, 1.0)
	params["byzantine_nodes"] = 3
	baseline, err := createBaseline(params, newTestEnv(t, 3))
	require.NoError(t, err)
	require.NoError(t, baseline.Setup())

	payload := []byte("consensus payload")
	for i := 0; i < 20; i++ {
		data, action, _ := baseline.HandlePacket(testPacket(60000, 60001, payload))
		assert.Equal(t, payload, data)
		assert.Equal(t, DeliverAction, action)
	}
}
