package bootstrap

import (
	"context"
	"time"

	"football-field-booking/internal/infra/db"
	"football-field-booking/internal/infra/migrate"
	"football-field-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(RunMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// RunMigrations applies pending migrations before the server starts listening.
func RunMigrations(lc fx.Lifecycle, pool *pgxpool.Pool, cfg config.Config) {
	if !cfg.Migration.AutoMigrate {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			m := migrate.NewMigrator(pool)
			defer func() { _ = m.Close() }()
			return m.Up(ctx)
		},
	})
}
