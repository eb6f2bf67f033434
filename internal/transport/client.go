package transport

import (
	"fmt"

	pb "framerelay/api/proto/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial connects a host-side client to a local relay daemon.
func Dial(port int) (pb.RelayClient, error) {
	cc, err := grpc.NewClient(fmt.Sprintf("localhost:%d", port),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return pb.NewRelayClient(cc), nil
}
