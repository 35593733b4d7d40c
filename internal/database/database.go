package database

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/config"
)

// NewClickHouseConnection opens a ClickHouse connection, verifies it with a
// ping, and makes sure the score table exists.
func NewClickHouseConnection(ctx context.Context, cfg config.ClickHouseConfig) (clickhouse.Conn, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{cfg.Addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		DialTimeout: time.Duration(cfg.Timeout) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to ClickHouse: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("clickhouse ping failed: %w", err)
	}

	if err := createTablesIfNotExist(ctx, conn); err != nil {
		return nil, fmt.Errorf("creating score table: %w", err)
	}

	log.Debug("connected to ClickHouse")
	return conn, nil
}

func createTablesIfNotExist(ctx context.Context, conn clickhouse.Conn) error {
	return conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS wallet_credit_scores (
			wallet String,
			score Int32,
			scored_at DateTime
		) ENGINE = MergeTree()
		ORDER BY (scored_at, wallet)
	`)
}
