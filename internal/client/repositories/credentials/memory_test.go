package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Roundtrip(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	v, err := r.Get(ctx, "token")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, r.Set(ctx, "token", "abc"))
	v, _ = r.Get(ctx, "token")
	assert.Equal(t, "abc", v)

	require.NoError(t, r.Delete(ctx, "token"))
	v, _ = r.Get(ctx, "token")
	assert.Empty(t, v)

	require.NoError(t, r.Set(ctx, "x", "1"))
	require.NoError(t, r.Clear(ctx))
	v, _ = r.Get(ctx, "x")
	assert.Empty(t, v)
}

var (
	_ Repository = (*MemoryRepository)(nil)
	_ Repository = (*SQLiteRepository)(nil)
	_ Repository = (*RedisRepository)(nil)
)
