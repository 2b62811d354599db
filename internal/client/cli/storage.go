package cli

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/lmsclient/internal/client/client"
	"github.com/dmitrijs2005/lmsclient/internal/client/config"
	"github.com/dmitrijs2005/lmsclient/internal/client/repositories/credentials"

	_ "modernc.org/sqlite"
)

// openRepository opens the configured token storage. The returned close
// function is nil when there is nothing to release.
func openRepository(ctx context.Context, c *config.Config) (credentials.Repository, func() error, error) {
	switch c.Storage {
	case config.StorageMemory:
		return credentials.NewMemoryRepository(), nil, nil

	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis %s: %w", c.RedisAddr, err)
		}
		return credentials.NewRedisRepository(rdb, c.RedisPrefix), rdb.Close, nil

	default:
		db, err := client.InitDatabase(ctx, c.StorageDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite %s: %w", c.StorageDSN, err)
		}
		return credentials.NewSQLiteRepository(db), db.Close, nil
	}
}
