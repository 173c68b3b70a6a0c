package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))

	ctx = WithComponent(ctx, "wm")
	ctx = WithWindow(ctx, 0x1a00003)
	ctx = With(ctx, map[string]any{"line": 3})
	FromContext(ctx).Info().Msg("mapped")

	out := buf.String()
	assert.Contains(t, out, `"component":"wm"`)
	assert.Contains(t, out, `"window":"01a00003"`)
	assert.Contains(t, out, `"line":3`)
}

func TestFromContextWithoutLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}
