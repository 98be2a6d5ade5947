package physical

import (
	"context"
	"testing"

	testifyassert "github.com/stretchr/testify/assert"
)

func TestOracle_FetchTimestamp(t *testing.T) {
	assert := testifyassert.New(t)

	o := NewOracle()
	ctx := context.Background()

	var lastTS uint64
	for i := 0; i < 10000; i++ {
		ts, err := o.FetchTimestamp(ctx)
		if !assert.NoError(err) {
			return
		}
		if !assert.Greater(ts, lastTS) {
			return
		}
		lastTS = ts
	}
}
