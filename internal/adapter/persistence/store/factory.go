package store

import (
	"context"
	"fmt"

	"estimate_app/internal/config"
	"estimate_app/internal/infrastructure/database"
	"estimate_app/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Open builds the record store selected by STORE_DRIVER. The returned close
// func releases whatever connection the backend holds and is never nil.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (interfaces.IRecordStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case "", "memory":
		log.Info("record store selected", zap.String("driver", "memory"))
		return NewMemoryStore(), noop, nil

	case "file":
		s, err := NewFileStore(cfg.StorePath)
		if err != nil {
			return nil, noop, err
		}
		log.Info("record store selected", zap.String("driver", "file"), zap.String("path", cfg.StorePath))
		return s, noop, nil

	case "sqlite":
		s, err := NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		log.Info("record store selected", zap.String("driver", "sqlite"), zap.String("path", cfg.SQLitePath))
		return s, s.Close, nil

	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, noop, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Info("record store selected", zap.String("driver", "dynamodb"), zap.String("table", cfg.RecordsTable))
		return NewDynamoDBStore(ddb, cfg.RecordsTable), noop, nil

	case "redis":
		rdb, err := database.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("record store selected", zap.String("driver", "redis"), zap.String("prefix", cfg.RedisKeyPrefix))
		return NewRedisStore(rdb, cfg.RedisKeyPrefix), rdb.Close, nil

	default:
		return nil, noop, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
