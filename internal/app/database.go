package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const (
	dbPingTimeout        = 5 * time.Second
	maxTracedQueryLength = 512
)

// OpenDatabase opens a traced postgres pool and verifies it answers.
func OpenDatabase(cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	return openDatabase(cfg, logger)
}

func openDatabase(cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}

	target := parseDatabaseTarget(cfg.DBURL, cfg.DBDisablePreparedBinary)
	dbName := target.name

	db, err := otelsqlx.Open("postgres", target.dsn,
		otelsql.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("server.address", target.host),
		),
		otelsql.WithDBName(dbName),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database %s: %w", dbName, err)
	}

	logger.Info("database connected", "db_name", dbName, "db_host", target.host, "disable_prepared_binary", cfg.DBDisablePreparedBinary)
	return db, nil
}

// formatDBQueryForTrace collapses whitespace and caps the statement recorded on spans.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}

// MigrationDSN is DB_URL as the migrate CLI should dial it.
func MigrationDSN(cfg config.Config) string {
	return parseDatabaseTarget(cfg.DBURL, cfg.DBDisablePreparedBinary).dsn
}
