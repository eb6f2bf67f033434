package transport

import (
	"context"
	"errors"
	"fmt"
	"net"

	pb "framerelay/api/proto/v1"
	"framerelay/internal/relay"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	grpc *grpc.Server
	lis  net.Listener
}

func StartServer(port int, sender *relay.Sender, hub *Hub) (*Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	s := &Server{
		grpc: grpc.NewServer(),
		lis:  lis,
	}
	pb.RegisterRelayServer(s.grpc, &relayService{sender: sender, hub: hub})
	return s, nil
}

func (s *Server) Serve() error {
	return s.grpc.Serve(s.lis)
}
func (s *Server) Stop() {
	s.grpc.GracefulStop()
}

// ----- service ------------------------------------------------------------

type relayService struct {
	pb.UnimplementedRelayServer
	sender *relay.Sender
	hub    *Hub
}

func (r *relayService) UploadFrame(ctx context.Context, req *pb.FrameRequest) (*pb.UploadAck, error) {
	meta := map[string]string{
		"width":  fmt.Sprintf("%d", req.Width),
		"height": fmt.Sprintf("%d", req.Height),
	}
	err := r.sender.Upload(ctx, meta, req.Pixels)
	switch {
	case err == nil:
		return &pb.UploadAck{}, nil
	case errors.Is(err, relay.ErrMissingMetadata), errors.Is(err, relay.ErrInvalidMetadata):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	default:
		return nil, status.Error(codes.Unavailable, err.Error())
	}
}

func (r *relayService) StreamTransforms(_ *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.TransformUpdate]) error {
	id, ch := r.hub.Subscribe()
	defer r.hub.Unsubscribe(id)
	for {
		select {
		case <-stream.Context().Done():
			return stream.Context().Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			if err := stream.Send(&pb.TransformUpdate{Matrix: m[:]}); err != nil {
				return err
			}
		}
	}
}
