package logical

import (
	"context"

	"github.com/leisurelyrcxf/featherpd/concurrency"
)

// Oracle hands out the dense sequence 1, 2, 3, ... The counter lives in
// process memory only, a restart starts over from zero.
type Oracle struct {
	counter concurrency.AtomicUint64
}

func NewOracle() *Oracle {
	return &Oracle{counter: concurrency.NewAtomicUint64(0)}
}

// FetchTimestamp never fails in process, the error return belongs to the
// oracle.Oracle interface for implementations backed by remote state.
func (o *Oracle) FetchTimestamp(_ context.Context) (uint64, error) {
	return o.counter.Add(1), nil
}
