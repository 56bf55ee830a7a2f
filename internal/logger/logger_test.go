package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BuildsLogger(t *testing.T) {
	for _, json := range []bool{true, false} {
		for _, debug := range []bool{true, false} {
			log, err := New(json, debug)
			require.NoError(t, err)
			require.NotNil(t, log)
		}
	}
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "short", TruncateForLog("short", 20))
	assert.Equal(t, "abcde...", TruncateForLog("abcdefghij", 5))
	assert.Equal(t, "", TruncateForLog("anything", 0))
}
