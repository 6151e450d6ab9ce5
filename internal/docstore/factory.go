package docstore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/trivia-quest/backend/internal/config"
	"github.com/trivia-quest/backend/internal/database"
)

// Open connects the backend named by cfg.Backend. For postgres the
// embedded migrations are applied first.
func Open(ctx context.Context, cfg config.StoreConfig, log zerolog.Logger) (Store, error) {
	switch cfg.Backend {
	case "postgres":
		if err := database.Migrate(cfg.Postgres); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		db, err := database.Connect(cfg.Postgres)
		if err != nil {
			return nil, err
		}
		log.Info().Str("host", cfg.Postgres.Host).Str("db", cfg.Postgres.Name).Msg("Postgres connected")
		return NewPostgresStore(db), nil
	case "mongo":
		client, err := database.NewMongoClient(ctx, cfg.MongoURI, log)
		if err != nil {
			return nil, err
		}
		return NewMongoStore(client, cfg.MongoDB), nil
	case "redis":
		rdb, err := database.NewRedisClient(ctx, cfg.RedisURL, log)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(rdb), nil
	case "memory":
		log.Warn().Msg("Using in-memory document store; data is lost on exit")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Backend)
	}
}
