package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicia-ai/typegraph/compiler"
)

func TestRunThreadsStateAndStopsOnError(t *testing.T) {
	double := func(n int) (int, error) { return n * 2, nil }
	fail := func(int) (int, error) { return 0, assertErr }

	out, err := compiler.Run(1, double, double)
	require.NoError(t, err)
	assert.Equal(t, 4, out)

	_, err = compiler.Run(1, double, fail, double)
	require.Error(t, err)
}

var assertErr = &testError{"boom"}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
