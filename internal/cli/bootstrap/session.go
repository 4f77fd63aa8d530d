package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"Mintopia/internal/cli/repo"
	fsrepo "Mintopia/internal/cli/repo/fs"
	"Mintopia/internal/cli/repo/memory"
	redisrepo "Mintopia/internal/cli/repo/redis"
	"Mintopia/internal/cli/repo/sqlstore"
	"Mintopia/internal/cli/session"
	"Mintopia/internal/config"

	"go.uber.org/zap"
)

func noop() error { return nil }

// OpenKVStore открывает хранилище, выбранное в конфигурации,
// и возвращает (store, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединения.
func OpenKVStore(ctx context.Context, cfg *config.Config) (repo.KVStore, func() error, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return memory.New(), noop, nil

	case config.BackendSQLite:
		path := cfg.ClientDBPath
		if path == "" {
			dir, err := fsrepo.DefaultDir()
			if err != nil {
				return nil, nil, err
			}
			path = filepath.Join(dir, "client.sqlite")
		}
		s, err := sqlstore.OpenSQLite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return s, s.Close, nil

	case config.BackendPostgres:
		s, err := sqlstore.OpenPostgres(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres storage: %w", err)
		}
		return s, s.Close, nil

	case config.BackendRedis:
		s := redisrepo.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return s, s.Close, nil

	default:
		s, err := fsrepo.New(cfg.StorageDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open fs storage: %w", err)
		}
		return s, noop, nil
	}
}

// OpenSession открывает хранилище и загружает из него текущую сессию.
func OpenSession(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*session.Store[any], func() error, error) {
	kv, cleanup, err := OpenKVStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	st, err := session.Open[any](ctx, kv,
		session.WithKey(cfg.SessionKey),
		session.WithLogger(log),
	)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	return st, cleanup, nil
}
