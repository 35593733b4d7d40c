package aggregator

import (
	"context"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/models"
)

// progressInterval controls how often the fold logs progress on large logs.
const progressInterval = 10000

type Aggregator interface {
	Aggregate(records []models.TransactionRecord) map[string]*models.WalletSummary
	AggregateParallel(ctx context.Context, records []models.TransactionRecord, shards int) (map[string]*models.WalletSummary, error)
}

// WalletAggregator folds raw transaction records into per-wallet summaries.
type WalletAggregator struct{}

func NewAggregator() *WalletAggregator {
	return &WalletAggregator{}
}

// Aggregate builds one summary per wallet seen in records. Records missing a
// required field, or whose amount or price does not parse as a decimal, are
// skipped without failing the run. Summary updates are commutative, so the
// order of records never changes the result.
func (a *WalletAggregator) Aggregate(records []models.TransactionRecord) map[string]*models.WalletSummary {
	summaries := make(map[string]*models.WalletSummary)
	skipped := 0

	for i, record := range records {
		if (i+1)%progressInterval == 0 {
			log.Infof("processing transaction %d of %d", i+1, len(records))
		}
		if !foldRecord(summaries, record) {
			skipped++
		}
	}

	log.Infof("aggregated %d records into %d wallet summaries (%d skipped)",
		len(records), len(summaries), skipped)
	return summaries
}

// AggregateParallel splits records into contiguous chunks, folds each chunk in
// its own goroutine, and merges the per-shard summaries. The result is
// identical to Aggregate for any shard count. The context only matters for
// cancellation; folding itself cannot fail.
func (a *WalletAggregator) AggregateParallel(ctx context.Context, records []models.TransactionRecord, shards int) (map[string]*models.WalletSummary, error) {
	if shards <= 1 || len(records) <= 1 {
		return a.Aggregate(records), nil
	}
	if shards > len(records) {
		shards = len(records)
	}

	partials := make([]map[string]*models.WalletSummary, shards)
	skips := make([]int, shards)

	g, ctx := errgroup.WithContext(ctx)
	for shard := 0; shard < shards; shard++ {
		shard := shard
		// Balanced partition: every index lands in exactly one shard for
		// any record count, divisible by shards or not.
		start := shard * len(records) / shards
		end := (shard + 1) * len(records) / shards

		g.Go(func() error {
			local := make(map[string]*models.WalletSummary)
			for _, record := range records[start:end] {
				if err := ctx.Err(); err != nil {
					return err
				}
				if !foldRecord(local, record) {
					skips[shard]++
				}
			}
			partials[shard] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[string]*models.WalletSummary)
	skipped := 0
	for i, partial := range partials {
		skipped += skips[i]
		for wallet, summary := range partial {
			if existing, ok := merged[wallet]; ok {
				existing.Merge(summary)
			} else {
				merged[wallet] = summary
			}
		}
	}

	log.Infof("aggregated %d records into %d wallet summaries across %d shards (%d skipped)",
		len(records), len(merged), shards, skipped)
	return merged, nil
}

// foldRecord folds one record into summaries, reporting false when the record
// was skipped. Both decimals are parsed before any summary mutation, so a
// record with a bad amount never touches the wallet's timestamps either.
func foldRecord(summaries map[string]*models.WalletSummary, r models.TransactionRecord) bool {
	if r.UserWallet == "" || r.Action == "" || r.Timestamp == nil ||
		r.ActionData.Amount == "" || r.ActionData.AssetPriceUSD == "" {
		log.Debugf("skipping incomplete record for wallet %q", r.UserWallet)
		return false
	}

	amount, err := decimal.NewFromString(r.ActionData.Amount)
	if err != nil {
		log.Debugf("skipping record for wallet %s: bad amount %q: %v", r.UserWallet, r.ActionData.Amount, err)
		return false
	}
	price, err := decimal.NewFromString(r.ActionData.AssetPriceUSD)
	if err != nil {
		log.Debugf("skipping record for wallet %s: bad asset price %q: %v", r.UserWallet, r.ActionData.AssetPriceUSD, err)
		return false
	}
	usd := amount.Mul(price)

	summary := getOrCreate(summaries, r.UserWallet)
	summary.Observe(*r.Timestamp)

	switch r.Action {
	case models.ActionDeposit:
		summary.DepositCount++
		summary.TotalDepositedUSD = summary.TotalDepositedUSD.Add(usd)
	case models.ActionBorrow:
		summary.BorrowCount++
		summary.TotalBorrowedUSD = summary.TotalBorrowedUSD.Add(usd)
	case models.ActionRepay:
		summary.RepayCount++
		summary.TotalRepaidUSD = summary.TotalRepaidUSD.Add(usd)
	case models.ActionRedeemUnderlying:
		summary.RedeemCount++
	case models.ActionLiquidationCall:
		summary.LiquidationCount++
	default:
		// Unrecognized actions still count as activity for the
		// first/last-seen bounds.
	}

	return true
}

func getOrCreate(summaries map[string]*models.WalletSummary, wallet string) *models.WalletSummary {
	summary, ok := summaries[wallet]
	if !ok {
		summary = models.NewWalletSummary()
		summaries[wallet] = summary
	}
	return summary
}
