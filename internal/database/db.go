// Package database opens the MySQL connection pool backing the user,
// scholarship, application and review repositories.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/scholarstream/api/internal/config"
)

// Open builds the pool from the loaded configuration and verifies the
// connection before any repository touches it. Times are parsed into
// time.Time in UTC so deadline and posting timestamps compare consistently
// with the catalog's coercion rules.
func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}

// dsn assembles the driver connection string. The password segment is
// omitted entirely when DB_PASS is empty, which local setups rely on.
func dsn(cfg config.Config) string {
	auth := cfg.DBUser
	if cfg.DBPass != "" {
		auth = cfg.DBUser + ":" + cfg.DBPass
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, cfg.DBHost, cfg.DBPort, cfg.DBName)
}
