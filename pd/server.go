package pd

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/golang/glog"
	"google.golang.org/grpc"

	"github.com/leisurelyrcxf/featherpd/errors"
	"github.com/leisurelyrcxf/featherpd/oracle"
	"github.com/leisurelyrcxf/featherpd/proto/pdpb"
)

type placementDriver struct {
	pdpb.UnimplementedPlacementDriverServer

	oracle  oracle.Oracle
	locator DataLocator
}

func (p *placementDriver) GetTimestamp(ctx context.Context, _ *pdpb.TsoRequest) (*pdpb.TsoResponse, error) {
	ts, err := p.oracle.FetchTimestamp(ctx)
	if err != nil {
		glog.Errorf("fetch timestamp failed: %v", err)
		return &pdpb.TsoResponse{
			Err: pdpb.ToPBError(errors.FromError(err)),
		}, nil
	}
	return &pdpb.TsoResponse{Ts: ts}, nil
}

// GetDataLocation reports locator failures on the status channel instead of
// in-band, there is no success payload to pair them with until a real locator
// lands.
func (p *placementDriver) GetDataLocation(ctx context.Context, req *pdpb.DataLocRequest) (*pdpb.DataLocResponse, error) {
	loc, err := p.locator.Locate(ctx, req.Key)
	if err != nil {
		return nil, errors.ToStatus(errors.FromError(err)).Err()
	}
	return &pdpb.DataLocResponse{Location: loc}, nil
}

type Server struct {
	grpcServer *grpc.Server
	pd         *placementDriver

	port int
	Done chan struct{}
}

// NewServer wires the oracle and the locator behind the PlacementDriver grpc
// service. A nil locator falls back to UnimplementedLocator.
func NewServer(port int, o oracle.Oracle, locator DataLocator) *Server {
	if locator == nil {
		locator = UnimplementedLocator{}
	}
	s := &Server{
		grpcServer: grpc.NewServer(),
		pd: &placementDriver{
			oracle:  o,
			locator: locator,
		},
		port: port,
		Done: make(chan struct{}),
	}
	pdpb.RegisterPlacementDriverServer(s.grpcServer, s.pd)
	return s
}

func (s *Server) Start() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		glog.Errorf("failed to listen: %v", err)
		return err
	}

	go func() {
		defer close(s.Done)

		if err := s.grpcServer.Serve(lis); err != nil {
			glog.Errorf("placement driver serve failed: %v", err)
		} else {
			glog.Infof("placement driver server terminated successfully")
		}
	}()

	time.Sleep(100 * time.Millisecond)
	return nil
}

func (s *Server) Stop() {
	s.grpcServer.Stop()
	<-s.Done
}
