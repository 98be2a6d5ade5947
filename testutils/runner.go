package testutils

import "testing"

func RunTestForNRounds(t *testing.T, rounds int, testCase func(t *testing.T) (b bool)) {
	logEvery := rounds / 100
	if logEvery < 1 {
		logEvery = 1
	}
	for i := 0; i < rounds; i++ {
		if !testCase(t) {
			t.Errorf("%s failed @round %d", t.Name(), i)
			return
		}
		if i%logEvery == 0 {
			t.Logf("%s succeeded %d rounds", t.Name(), i)
		}
	}
}
