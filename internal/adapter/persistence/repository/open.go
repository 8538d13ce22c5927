package repository

import (
	"context"
	"fmt"

	"moap_dashboard/internal/config"
	"moap_dashboard/internal/infrastructure/database"
	"moap_dashboard/internal/usecase/interfaces"
)

// OpenKeyValueStore builds the backend selected by cfg.PersistenceDriver. The
// returned close function releases the underlying connection, if any.
func OpenKeyValueStore(ctx context.Context, cfg config.Config) (interfaces.IKeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.PersistenceDriver {
	case config.DriverMemory:
		return NewMemoryKV(), noop, nil

	case config.DriverFile:
		kv, err := NewFileKV(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return kv, noop, nil

	case config.DriverRedis:
		rdb, err := database.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisKV(rdb, ""), rdb.Close, nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		kv, err := NewSQLKV(ctx, db, SQLiteDialect)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return kv, kv.Close, nil

	case config.DriverPostgres:
		db, err := database.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		kv, err := NewSQLKV(ctx, db, PostgresDialect)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return kv, kv.Close, nil

	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		return NewDynamoKV(ddb, cfg.KVTable), noop, nil

	case config.DriverS3:
		client, err := database.ConnectS3(ctx, database.S3Options{Endpoint: cfg.S3Endpoint, PathStyle: cfg.S3PathStyle})
		if err != nil {
			return nil, nil, err
		}
		return NewS3KV(client, cfg.S3Bucket, ""), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown persistence driver %q", cfg.PersistenceDriver)
}
