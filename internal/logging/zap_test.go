package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZapLogger_WithAndLevels(t *testing.T) {
	var buf bytes.Buffer
	z, err := NewZapLogger(&buf, "info")
	require.NoError(t, err)

	ctx := context.Background()
	child := z.With("flow", "registration")
	child.Debug(ctx, "dropped")
	child.Info(ctx, "kept", "email", "a@b.com")
	child.Warn(ctx, "warned")
	child.Error(ctx, "failed")
	require.NoError(t, z.Sync())

	out := buf.String()
	require.NotContains(t, out, "dropped")
	for _, s := range []string{`"level":"info"`, `"level":"warn"`, `"level":"error"`, `"flow":"registration"`, `"email":"a@b.com"`} {
		require.True(t, strings.Contains(out, s), "expected %s in %s", s, out)
	}
}
