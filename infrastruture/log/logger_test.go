package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-solver/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("plain lines", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", "", &buf)
		require.NoError(t, err)

		l.Info("started")
		l.Warning("slow solve")
		l.Error("boom")

		out := buf.String()
		assert.Contains(t, out, "[APP] [INFO] started\n")
		assert.Contains(t, out, "[APP] [WARNING] slow solve\n")
		assert.Contains(t, out, "[APP] [ERROR] boom\n")
	})

	t.Run("colored prefix", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("SOLVER", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("ready")
		assert.Contains(t, buf.String(), config.ColorCyan+"[SOLVER]"+config.LogColorReset)
		assert.Contains(t, buf.String(), config.LogInfoColor+"[INFO]"+config.LogColorReset+" ready")
	})

	t.Run("nil writer", func(t *testing.T) {
		_, err := New("APP", "", nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})
}
