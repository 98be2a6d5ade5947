package physical

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/leisurelyrcxf/featherpd/errors"
)

// Oracle derives timestamps from the wall clock. lastTimestamp guards against
// coarse clocks and clock jumps so issued values stay strictly increasing.
type Oracle struct {
	sync.Mutex

	lastTimestamp uint64
}

func NewOracle() *Oracle {
	return &Oracle{}
}

func (o *Oracle) FetchTimestamp(_ context.Context) (uint64, error) {
	o.Lock()
	defer o.Unlock()

	i := time.Now().UnixNano()
	if i < 0 {
		return 0, errors.Internalf("time.Now().UnixNano() < 0")
	}
	ts := uint64(i)
	if ts <= o.lastTimestamp {
		ts = o.lastTimestamp + 1
	}
	o.lastTimestamp = ts
	return ts, nil
}

func (o *Oracle) MustFetchTimestamp() uint64 {
	ts, err := o.FetchTimestamp(context.Background())
	if err != nil {
		glog.Fatalf("can't fetch timestamp: %v", err)
	}
	return ts
}
