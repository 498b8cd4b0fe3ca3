package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/deadswitch/internal/logging"
	pb "github.com/dmitrijs2005/deadswitch/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// TestServe_TCP serves over a real loopback socket, answers one public call,
// then drains when the context ends.
func TestServe_TCP(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewGRPCServer("unused", logging.NewNop(), Services{Switches: &fakeSwitch{height: 12}}, "k")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	callCtx, callCancel := context.WithTimeout(ctx, 2*time.Second)
	defer callCancel()
	resp, err := pb.NewDeadSwitchClient(conn).Ping(callCtx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.Height)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestRun_BadAddress(t *testing.T) {
	srv := NewGRPCServer("127.0.0.1:99999", logging.NewNop(), Services{}, "k")
	assert.Error(t, srv.Run(context.Background()))
}
