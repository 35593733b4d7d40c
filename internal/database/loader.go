package database

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	log "github.com/sirupsen/logrus"
)

// ScoreLoader loads computed wallet scores into ClickHouse.
type ScoreLoader struct {
	Conn clickhouse.Conn
}

// NewScoreLoader creates a new ScoreLoader.
func NewScoreLoader(conn clickhouse.Conn) *ScoreLoader {
	return &ScoreLoader{
		Conn: conn,
	}
}

// Load batch-inserts one scoring run. Every row shares the same scoredAt so a
// run can be addressed as a unit afterwards.
func (l *ScoreLoader) Load(ctx context.Context, scores map[string]int, scoredAt time.Time) error {
	batch, err := l.Conn.PrepareBatch(ctx, "INSERT INTO wallet_credit_scores (wallet, score, scored_at)")
	if err != nil {
		return fmt.Errorf("preparing score batch: %w", err)
	}

	for wallet, score := range scores {
		if err := batch.Append(wallet, int32(score), scoredAt); err != nil {
			return fmt.Errorf("appending score for %s: %w", wallet, err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("sending score batch: %w", err)
	}

	log.Infof("stored %d wallet scores in ClickHouse", len(scores))
	return nil
}
