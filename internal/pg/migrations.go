package pg

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/lexqna/lexqna/migrations"
)

// RunMigrations applies the embedded schema migrations through a database/sql
// bridge over the shared pgx pool.
func RunMigrations(pool *pgxpool.Pool) (err error) {
	goose.SetBaseFS(migrations.Migrations)
	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		err = errors.Join(err, db.Close())
	}()

	if err = goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	if version, verr := goose.GetDBVersion(db); verr == nil {
		zap.L().Info("Schema is up to date", zap.Int64("version", version))
	}

	return nil
}
