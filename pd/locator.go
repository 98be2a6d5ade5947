package pd

import (
	"context"

	"github.com/leisurelyrcxf/featherpd/errors"
	"github.com/leisurelyrcxf/featherpd/proto/pdpb"
)

// DataLocator resolves which server in the cluster owns a key. The placement
// logic arrives together with the membership and persistence subsystems,
// until then the default locator rejects every lookup.
type DataLocator interface {
	Locate(ctx context.Context, key []byte) (*pdpb.DataLocation, error)
}

type UnimplementedLocator struct{}

func (UnimplementedLocator) Locate(_ context.Context, _ []byte) (*pdpb.DataLocation, error) {
	return nil, errors.Internalf("data location resolution not implemented")
}
