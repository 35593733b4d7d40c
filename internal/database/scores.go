package database

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/models"
)

// FetchTopScores retrieves the best rows of the most recent scoring run,
// filtered to scores of at least minScore.
func FetchTopScores(ctx context.Context, conn clickhouse.Conn, minScore, limit int) ([]models.WalletScore, error) {
	var rows []models.WalletScore
	query := `
        SELECT
            wallet,
            score,
            scored_at
        FROM wallet_credit_scores
        WHERE scored_at = (SELECT max(scored_at) FROM wallet_credit_scores)
          AND score >= ?
        ORDER BY score DESC, wallet ASC
        LIMIT ?
        `

	if err := conn.Select(ctx, &rows, query, int32(minScore), limit); err != nil {
		return nil, fmt.Errorf("querying wallet scores: %w", err)
	}

	return rows, nil
}
