package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	release, err := New("release")
	require.NoError(t, err)
	assert.False(t, release.Core().Enabled(zapcore.DebugLevel))

	dev, err := New("debug")
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))
}

func TestInitSetsGlobal(t *testing.T) {
	saved := Log
	t.Cleanup(func() { Log = saved })

	l, err := Init("debug")
	require.NoError(t, err)
	assert.Same(t, l, Log)
}
