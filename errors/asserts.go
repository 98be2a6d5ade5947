package errors

import testifyassert "github.com/stretchr/testify/assert"

var (
	AssertIsErr = func(assert *testifyassert.Assertions, err error, exp *Error) bool {
		return assert.IsType(&Error{}, err) && assert.Equal(exp.Kind, err.(*Error).Kind)
	}
	AssertIsKind = func(assert *testifyassert.Assertions, err error, kind Kind) bool {
		return assert.IsType(&Error{}, err) && assert.Equal(kind, err.(*Error).Kind)
	}
	AssertNilOrErr = func(assert *testifyassert.Assertions, err error, exp *Error) bool {
		if err == nil {
			return true
		}
		return AssertIsErr(assert, err, exp)
	}
)
