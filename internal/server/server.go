// Package server exposes the controller's gRPC surface: the packet service
// called by the interceptor for every intercepted message, and the network
// service called with fresh validator node information at network start.
package server

import (
	"context"
	"fmt"
	"net"

	"github.com/rocketbft/rocket/internal/config"
	"github.com/rocketbft/rocket/internal/network"
	"github.com/rocketbft/rocket/internal/pipeline"
	"github.com/rocketbft/rocket/internal/policy"
	"github.com/rocketbft/rocket/internal/rounds"
	"github.com/rocketbft/rocket/pb"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PacketServer answers the interceptor's per-packet delivery questions.
type PacketServer struct {
	pb.UnimplementedPacketServiceServer
	pipeline *pipeline.Pipeline
}

// SendPacket forwards one intercepted packet through the pipeline and returns
// the delivery decision.
func (s *PacketServer) SendPacket(ctx context.Context, packet *pb.Packet) (*pb.PacketAck, error) {
	final, action, sendAmount, err := s.pipeline.ProcessPacket(packet)
	if err != nil {
		log.Warnf("[SendPacket] Rejected packet from port %d to port %d: %v", packet.FromPort, packet.ToPort, err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	log.Debugf("[SendPacket] Port %d to port %d: action %d, send amount %d", packet.FromPort, packet.ToPort, action, sendAmount)
	return &pb.PacketAck{Data: final, Action: action, SendAmount: sendAmount}, nil
}

// NetworkServer consumes validator node announcements.
type NetworkServer struct {
	pb.UnimplementedNetworkServiceServer
	network       *network.Manager
	tracker       *rounds.Tracker
	policy        policy.Policy
	expectedNodes int
	partition     [][]int
}

// UpdateNetwork rebuilds all per-network state from a fresh validator list:
// topology and replay buffers, the round tracker's node set, the configured
// initial partition and finally the policy's own setup.
func (s *NetworkServer) UpdateNetwork(ctx context.Context, list *pb.ValidatorNodeList) (*pb.ValidatorNodeAck, error) {
	nodes := list.GetNodes()
	if len(nodes) == 0 {
		return nil, status.Errorf(codes.InvalidArgument, "validator node list is empty")
	}
	log.Infof("[UpdateNetwork] Updating network information for %d validator nodes", len(nodes))
	if s.expectedNodes > 0 && len(nodes) != s.expectedNodes {
		log.Warnf("[UpdateNetwork] Announced %d nodes, network config expects %d", len(nodes), s.expectedNodes)
	}

	if err := s.network.UpdateNodes(nodes); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if err := s.tracker.SetNodes(len(nodes)); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if len(s.partition) > 0 {
		if err := s.network.Topology().Partition(s.partition); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}
	if err := s.policy.Setup(); err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	return &pb.ValidatorNodeAck{Status: "ok"}, nil
}

// Server hosts both gRPC services on one transport.
type Server struct {
	grpc     *grpc.Server
	listener net.Listener
}

// CreateServer wires the services and binds the listen address. The tracker
// receives the transport so it can stop it after the final iteration.
func CreateServer(address string, pipe *pipeline.Pipeline, manager *network.Manager, tracker *rounds.Tracker, pol policy.Policy, networkConfig *config.NetworkConfig) (*Server, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	networkServer := &NetworkServer{network: manager, tracker: tracker, policy: pol}
	if networkConfig != nil {
		networkServer.expectedNodes = networkConfig.NumberOfNodes
		networkServer.partition = networkConfig.Partition
	}

	grpcServer := grpc.NewServer()
	pb.RegisterPacketServiceServer(grpcServer, &PacketServer{pipeline: pipe})
	pb.RegisterNetworkServiceServer(grpcServer, networkServer)
	tracker.SetServer(grpcServer)

	return &Server{grpc: grpcServer, listener: listener}, nil
}

// Addr returns the bound listen address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Serve blocks until the transport is stopped.
func (s *Server) Serve() error {
	log.Infof("[Server] Listening on %s", s.listener.Addr())
	return s.grpc.Serve(s.listener)
}

// GracefulStop drains in-flight RPCs and stops the transport.
func (s *Server) GracefulStop() {
	s.grpc.GracefulStop()
}
