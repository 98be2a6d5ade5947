package pd

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	testifyassert "github.com/stretchr/testify/assert"

	"github.com/leisurelyrcxf/featherpd/errors"
	"github.com/leisurelyrcxf/featherpd/oracle/impl/logical"
	"github.com/leisurelyrcxf/featherpd/testutils"
)

const testPort = 9999

func newTestServer(assert *testifyassert.Assertions, port int) *Server {
	server := NewServer(port, logical.NewOracle(), nil)
	if !assert.NoError(server.Start()) {
		return nil
	}
	return server
}

func TestClient_GetTimestamp(t *testing.T) {
	assert := testifyassert.New(t)

	server := newTestServer(assert, testPort)
	if server == nil {
		return
	}
	defer server.Stop()

	cli, err := NewClient(fmt.Sprintf("localhost:%d", testPort))
	if !assert.NoError(err) {
		return
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ts1, err := cli.GetTimestamp(ctx)
	assert.NoError(err)
	assert.Equal(uint64(1), ts1)

	ts2, err := cli.GetTimestamp(ctx)
	assert.NoError(err)
	assert.Equal(uint64(2), ts2)

	ts3, err := cli.GetTimestamp(ctx)
	assert.NoError(err)
	assert.Equal(uint64(3), ts3)
}

func TestClient_GetTimestampConcurrent(t *testing.T) {
	testutils.RunTestForNRounds(t, 3, testClientGetTimestampConcurrent)
}

func testClientGetTimestampConcurrent(t *testing.T) (b bool) {
	assert := testifyassert.New(t)

	const (
		threadNum        = 20
		fetchesPerThread = 50
	)

	server := newTestServer(assert, testPort)
	if server == nil {
		return
	}
	defer server.Stop()

	var (
		fetchWg    sync.WaitGroup
		clientErrs [threadNum]error
		timestamps [threadNum][]uint64
	)
	for i := 0; i < threadNum; i++ {
		fetchWg.Add(1)

		go func(i int) {
			defer fetchWg.Done()

			cli, err := NewClient(fmt.Sprintf("localhost:%d", testPort))
			if err != nil {
				clientErrs[i] = err
				return
			}
			defer cli.Close()

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			var maxSeen uint64
			for j := 0; j < fetchesPerThread; j++ {
				ts, err := cli.GetTimestamp(ctx)
				if err != nil {
					clientErrs[i] = err
					return
				}
				if ts <= maxSeen {
					clientErrs[i] = errors.Internalf("timestamp %d not greater than %d", ts, maxSeen)
					return
				}
				maxSeen = ts
				timestamps[i] = append(timestamps[i], ts)
			}
		}(i)
	}
	fetchWg.Wait()

	var allTimestamps []int
	for i := 0; i < threadNum; i++ {
		if !assert.NoError(clientErrs[i]) {
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

type notLeaderOracle struct{}

func (notLeaderOracle) FetchTimestamp(context.Context) (uint64, error) {
	return 0, errors.ErrNotLeader
}

func TestClient_GetTimestampNotLeader(t *testing.T) {
	assert := testifyassert.New(t)

	server := NewServer(testPort, notLeaderOracle{}, nil)
	if !assert.NoError(server.Start()) {
		return
	}
	defer server.Stop()

	cli, err := NewClient(fmt.Sprintf("localhost:%d", testPort))
	if !assert.NoError(err) {
		return
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	_, err = cli.GetTimestamp(ctx)
	if !errors.AssertIsKind(assert, err, errors.KindNotLeader) {
		return
	}
	assert.True(errors.IsNotLeaderErr(err))
	assert.Equal("Not leader", err.Error())
}

func TestClient_GetDataLocation(t *testing.T) {
	assert := testifyassert.New(t)

	server := newTestServer(assert, testPort)
	if server == nil {
		return
	}
	defer server.Stop()

	cli, err := NewClient(fmt.Sprintf("localhost:%d", testPort))
	if !assert.NoError(err) {
		return
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	_, err = cli.GetDataLocation(ctx, []byte("k1"))
	if !errors.AssertIsKind(assert, err, errors.KindInternal) {
		return
	}
	assert.Equal("data location resolution not implemented", err.(*errors.Error).Msg)
}
