package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/models"
)

func ts(v int64) *int64 {
	return &v
}

func record(wallet, action string, timestamp *int64, amount, price string) models.TransactionRecord {
	return models.TransactionRecord{
		UserWallet: wallet,
		Action:     action,
		Timestamp:  timestamp,
		ActionData: models.ActionData{Amount: amount, AssetPriceUSD: price},
	}
}

// sampleLog crosses three wallet profiles: a clean depositor, a borrower who
// repaid in full, and a liquidated wallet that never repaid.
func sampleLog() []models.TransactionRecord {
	start := int64(1_600_000_000)
	return []models.TransactionRecord{
		record("0xsaver", models.ActionDeposit, ts(start), "5000", "1"),
		record("0xsaver", models.ActionDeposit, ts(start+400*86400), "5000", "1"),

		record("0xborrower", models.ActionDeposit, ts(start), "2000", "1"),
		record("0xborrower", models.ActionBorrow, ts(start+86400), "1000", "1"),
		record("0xborrower", models.ActionRepay, ts(start+2*86400), "1000", "1"),

		record("0xrisky", models.ActionBorrow, ts(start), "1000", "1"),
		record("0xrisky", models.ActionLiquidationCall, ts(start+86400), "500", "1"),

		// Malformed entries are dropped, not fatal.
		record("", models.ActionDeposit, ts(start), "1", "1"),
		record("0xrisky", models.ActionBorrow, ts(start+9*86400), "oops", "1"),
	}
}

func TestScoreAll(t *testing.T) {
	scores := ScoreAll(sampleLog())

	// 0xsaver: 500 + 10 deposit bonus + 150 never borrowed + 20 tenure
	// 0xborrower: 500 + 2 deposit bonus + 150 full repay
	// 0xrisky: 500 - 200 liquidation - 100 weak repay - 75 leverage
	assert.Equal(t, map[string]int{
		"0xsaver":    680,
		"0xborrower": 652,
		"0xrisky":    125,
	}, scores)
}

func TestScoreAllEmptyLog(t *testing.T) {
	assert.Empty(t, ScoreAll(nil))
}

func TestScoreAllParallelMatchesSerial(t *testing.T) {
	records := sampleLog()
	serial := ScoreAll(records)

	for _, shards := range []int{1, 2, 4, 16} {
		parallel, err := ScoreAllParallel(context.Background(), records, shards)
		require.NoError(t, err, "shards=%d", shards)
		assert.Equal(t, serial, parallel, "shards=%d", shards)
	}
}
