package pd

import (
	"context"

	"google.golang.org/grpc"

	"github.com/leisurelyrcxf/featherpd/errors"
	"github.com/leisurelyrcxf/featherpd/proto/pdpb"
)

type Client struct {
	pd   pdpb.PlacementDriverClient
	conn *grpc.ClientConn
}

func NewClient(serverAddr string) (*Client, error) {
	conn, err := grpc.Dial(serverAddr, grpc.WithInsecure())
	if err != nil {
		return nil, err
	}
	return &Client{
		conn: conn,
		pd:   pdpb.NewPlacementDriverClient(conn),
	}, nil
}

func (c *Client) GetTimestamp(ctx context.Context) (uint64, error) {
	resp, err := c.pd.GetTimestamp(ctx, &pdpb.TsoRequest{})
	if err != nil {
		return 0, errors.FromError(err)
	}
	if resp == nil {
		return 0, errors.Internalf("PDClient::GetTimestamp resp == nil")
	}
	if resp.Err != nil {
		return 0, resp.Err.ToError()
	}
	return resp.Ts, nil
}

func (c *Client) GetDataLocation(ctx context.Context, key []byte) (*pdpb.DataLocation, error) {
	resp, err := c.pd.GetDataLocation(ctx, &pdpb.DataLocRequest{Key: key})
	if err != nil {
		return nil, errors.FromError(err)
	}
	if resp == nil {
		return nil, errors.Internalf("PDClient::GetDataLocation resp == nil")
	}
	if resp.Err != nil {
		return nil, resp.Err.ToError()
	}
	return resp.Location, nil
}

func (c *Client) TargetAddr() string {
	return c.conn.Target()
}

func (c *Client) Close() error {
	return c.conn.Close()
}
