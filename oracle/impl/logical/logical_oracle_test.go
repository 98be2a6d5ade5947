package logical

import (
	"context"
	"sort"
	"sync"
	"testing"

	testifyassert "github.com/stretchr/testify/assert"

	"github.com/leisurelyrcxf/featherpd/testutils"
)

func TestOracle_FetchTimestamp(t *testing.T) {
	assert := testifyassert.New(t)

	o := NewOracle()
	ctx := context.Background()
	for want := uint64(1); want <= 3; want++ {
		ts, err := o.FetchTimestamp(ctx)
		assert.NoError(err)
		assert.Equal(want, ts)
	}
}

func TestOracle_FetchTimestampConcurrent(t *testing.T) {
	testutils.RunTestForNRounds(t, 10, testOracleFetchTimestampConcurrent)
}

func testOracleFetchTimestampConcurrent(t *testing.T) (b bool) {
	assert := testifyassert.New(t)

	const (
		threadNum        = 64
		fetchesPerThread = 1000
		totalFetches     = threadNum * fetchesPerThread
	)

	o := NewOracle()
	var (
		wg         sync.WaitGroup
		timestamps [threadNum][]uint64
	)
	for i := 0; i < threadNum; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			ctx := context.Background()
			var maxSeen uint64
			for j := 0; j < fetchesPerThread; j++ {
				ts, err := o.FetchTimestamp(ctx)
				if err != nil {
					return
				}
				if ts <= maxSeen {
					return
				}
				maxSeen = ts
				timestamps[i] = append(timestamps[i], ts)
			}
		}(i)
	}
	wg.Wait()

	allTimestamps := make([]int, 0, totalFetches)
	for i := 0; i < threadNum; i++ {
		if !assert.Len(timestamps[i], fetchesPerThread) {
			return
		}
		for _, ts := range timestamps[i] {
			allTimestamps = append(allTimestamps, int(ts))
		}
	}
	sort.Ints(allTimestamps)
	for i := 0; i < len(allTimestamps); i++ {
		if !assert.Equal(i+1, allTimestamps[i]) {
			return
		}
	}
	return true
}
