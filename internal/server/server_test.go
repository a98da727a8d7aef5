package server

import (
	"context"
	"testing"
	"time"

	"github.com/rocketbft/rocket/internal/config"
	"github.com/rocketbft/rocket/internal/network"
	"github.com/rocketbft/rocket/internal/pipeline"
	"github.com/rocketbft/rocket/internal/policy"
	"github.com/rocketbft/rocket/internal/rounds"
	"github.com/rocketbft/rocket/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type nopProcess struct{}

func (nopProcess) StartNew() error { return nil }
func (nopProcess) Restart() error  { return nil }
func (nopProcess) Stop()           {}

type nopSink struct{}

func (nopSink) StartIteration(int) error                        { return nil }
func (nopSink) LogLedger(int, int, uint32, time.Duration) error { return nil }
func (nopSink) Close() error                                    { return nil }

// startTestServer brings up the full gRPC surface on an ephemeral port and
// returns a connected client transport.
func startTestServer(t *testing.T) *grpc.ClientConn {
	t.Helper()
	manager := network.CreateManager(false, false)
	tracker, err := rounds.CreateTracker(rounds.Config{
		MaxIterations: 1,
		MaxLedgerSeq:  10,
		Timeout:       time.Minute,
	}, nopProcess{}, nopSink{})
	require.NoError(t, err)

	pol, err := policy.Create("RandomFuzzer", config.Params{
		"drop_probability":  0.0,
		"delay_probability": 0.0,
		"min_delay_ms":      0,
		"max_delay_ms":      0,
	}, policy.Environment{Network: manager, Tracker: tracker})
	require.NoError(t, err)
	pipe := pipeline.CreatePipeline(manager, tracker, pol, true)

	srv, err := CreateServer("localhost:0", pipe, manager, tracker, pol, nil)
	require.NoError(t, err)
	go srv.Serve()
	t.Cleanup(srv.GracefulStop)

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func announceNodes(t *testing.T, conn *grpc.ClientConn, n int) {
	t.Helper()
	nodes := make([]*pb.ValidatorNodeInfo, n)
	for i := range nodes {
		nodes[i] = &pb.ValidatorNodeInfo{
			Peer: &pb.SocketAddress{Host: "localhost", Port: uint32(60000 + i)},
		}
	}
	ack, err := pb.NewNetworkServiceClient(conn).UpdateNetwork(context.Background(), &pb.ValidatorNodeList{Nodes: nodes})
	require.NoError(t, err)
	assert.Equal(t, "ok", ack.Status)
}

// TestServer_SendPacket tests the packet RPC end to end over a real
// transport.
func TestServer_SendPacket(t *testing.T) {
	conn := startTestServer(t)
	announceNodes(t, conn, 2)

	ack, err := pb.NewPacketServiceClient(conn).SendPacket(context.Background(), &pb.Packet{
		Data:     []byte("payload"),
		FromPort: 60000,
		ToPort:   60001,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), ack.Data)
	assert.Equal(t, uint32(0), ack.Action)
	assert.Equal(t, uint32(1), ack.SendAmount)
}

// TestServer_SendPacketRejectsUnknownPort tests RPC error mapping for
// unresolvable senders.
func TestServer_SendPacketRejectsUnknownPort(t *testing.T) {
	conn := startTestServer(t)
	announceNodes(t, conn, 2)

	_, err := pb.NewPacketServiceClient(conn).SendPacket(context.Background(), &pb.Packet{
		Data:     []byte("payload"),
		FromPort: 1,
		ToPort:   60001,
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_UpdateNetworkRejectsEmptyList tests validation of the node
// announcement.
func TestServer_UpdateNetworkRejectsEmptyList(t *testing.T) {
	conn := startTestServer(t)

	_, err := pb.NewNetworkServiceClient(conn).UpdateNetwork(context.Background(), &pb.ValidatorNodeList{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
