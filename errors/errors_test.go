package errors

import (
	"testing"

	testifyassert "github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	assert := testifyassert.New(t)

	var e = (*Error)(nil)
	assert.Equal("<nil>", e.Error())

	assert.Equal("bad key", Valuef("bad key").Error())
	assert.Equal("", Internalf("").Error())
	assert.Equal("invalid port -1", Configf("invalid port %d", -1).Error())

	assert.Equal("Operation aborted", ErrAbort.Error())
	assert.Equal("Read-only transaction", ErrReadOnly.Error())
	assert.Equal("Serialization failure, retry transaction", ErrSerialization.Error())
	assert.Equal("Not leader", ErrNotLeader.Error())
}

func TestKind(t *testing.T) {
	assert := testifyassert.New(t)

	assert.Equal("NotLeader", KindNotLeader.String())
	assert.Equal("[Value]", KindValue.Tag())

	for _, k := range []Kind{KindConfig, KindInternal, KindParse, KindValue} {
		assert.True(k.HasDetail())
	}
	for _, k := range []Kind{KindAbort, KindReadOnly, KindSerialization, KindNotLeader} {
		assert.False(k.HasDetail())
	}
}

func TestEqual(t *testing.T) {
	assert := testifyassert.New(t)

	assert.True(Equal(nil, nil))
	assert.False(Equal(nil, ErrAbort))
	assert.True(Equal(ErrAbort, ErrAbort))
	assert.True(Equal(Valuef("bad key"), Valuef("bad key")))
	assert.True(NotEqual(Valuef("bad key"), Parsef("bad key")))
	assert.True(NotEqual(Internalf("a"), Internalf("b")))
}

func TestErrPolicy(t *testing.T) {
	assert := testifyassert.New(t)

	assert.True(IsRetryableErr(ErrSerialization))
	assert.False(IsRetryableErr(ErrAbort))
	assert.False(IsRetryableErr(nil))

	assert.True(IsNotLeaderErr(ErrNotLeader))
	assert.False(IsNotLeaderErr(ErrSerialization))
}
