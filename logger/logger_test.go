package logger

import (
	"bytes"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Lines carry prefix and level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", color.Style{color.FgCyan}, &buf)
		require.NoError(t, err)

		l.Info("generated 10x10 square maze")
		l.Warning("cache unavailable")
		l.Error("save failed")

		out := buf.String()
		assert.Contains(t, out, "[MAZE]")
		assert.Contains(t, out, "[INFO]")
		assert.Contains(t, out, "generated 10x10 square maze")
		assert.Contains(t, out, "[WARNING]")
		assert.Contains(t, out, "cache unavailable")
		assert.Contains(t, out, "[ERROR]")
		assert.Contains(t, out, "save failed")
		assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
	})

	t.Run("Nil writer", func(t *testing.T) {
		_, err := New("MAZE", color.Style{}, nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})
}
