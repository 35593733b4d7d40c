// Package pipeline wires the aggregation and scoring stages together.
package pipeline

import (
	"context"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/aggregator"
	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/models"
	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/scorer"
)

// ScoreAll runs the full two-stage pipeline over an in-memory transaction
// log: fold records into per-wallet summaries, then score each summary.
func ScoreAll(records []models.TransactionRecord) map[string]int {
	summaries := aggregator.NewAggregator().Aggregate(records)
	return scorer.ScoreSummaries(summaries)
}

// ScoreAllParallel is ScoreAll with the aggregation fold sharded across
// goroutines. Scores are identical to ScoreAll for any shard count.
func ScoreAllParallel(ctx context.Context, records []models.TransactionRecord, shards int) (map[string]int, error) {
	summaries, err := aggregator.NewAggregator().AggregateParallel(ctx, records, shards)
	if err != nil {
		return nil, err
	}
	return scorer.ScoreSummaries(summaries), nil
}
