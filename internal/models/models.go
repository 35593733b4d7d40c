package models

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Actions the scorer cares about. Matching is exact and case-sensitive: any
// other action still counts as wallet activity but carries no volume.
const (
	ActionDeposit          = "deposit"
	ActionBorrow           = "borrow"
	ActionRepay            = "repay"
	ActionRedeemUnderlying = "redeemunderlying"
	ActionLiquidationCall  = "liquidationcall"
)

// ActionData carries the financial fields of a transaction. Amounts and prices
// stay as strings until the aggregator parses them into exact decimals.
type ActionData struct {
	Amount        string `json:"amount"`
	AssetPriceUSD string `json:"assetPriceUSD"`
}

// TransactionRecord is one entry of a raw Aave V2 transaction log. Timestamp
// is a pointer so a missing field can be told apart from a legitimate unix
// time of zero.
type TransactionRecord struct {
	UserWallet string     `json:"userWallet"`
	Action     string     `json:"action"`
	Timestamp  *int64     `json:"timestamp"`
	ActionData ActionData `json:"actionData"`
}

// WalletSummary accumulates the behavioral features of a single wallet.
// Counts and volumes only ever grow as records are folded in; the USD volumes
// are exact decimals, never floats.
type WalletSummary struct {
	DepositCount     int
	BorrowCount      int
	RepayCount       int
	RedeemCount      int
	LiquidationCount int

	TotalDepositedUSD decimal.Decimal
	TotalBorrowedUSD  decimal.Decimal
	TotalRepaidUSD    decimal.Decimal

	FirstSeen int64
	LastSeen  int64
}

// NewWalletSummary returns an empty summary with the first/last-seen bounds at
// their sentinels, so any real timestamp replaces them.
func NewWalletSummary() *WalletSummary {
	return &WalletSummary{
		FirstSeen: math.MaxInt64,
		LastSeen:  math.MinInt64,
	}
}

// Observe folds a record timestamp into the first/last-seen bounds.
func (s *WalletSummary) Observe(ts int64) {
	if ts < s.FirstSeen {
		s.FirstSeen = ts
	}
	if ts > s.LastSeen {
		s.LastSeen = ts
	}
}

// Observed reports whether at least one record has been folded in.
func (s *WalletSummary) Observed() bool {
	return s.FirstSeen <= s.LastSeen
}

// Merge folds a partial summary for the same wallet into s. Every summary
// update is commutative and associative, so sharded aggregation can merge
// per-shard results and land on the single-pass outcome.
func (s *WalletSummary) Merge(other *WalletSummary) {
	s.DepositCount += other.DepositCount
	s.BorrowCount += other.BorrowCount
	s.RepayCount += other.RepayCount
	s.RedeemCount += other.RedeemCount
	s.LiquidationCount += other.LiquidationCount

	s.TotalDepositedUSD = s.TotalDepositedUSD.Add(other.TotalDepositedUSD)
	s.TotalBorrowedUSD = s.TotalBorrowedUSD.Add(other.TotalBorrowedUSD)
	s.TotalRepaidUSD = s.TotalRepaidUSD.Add(other.TotalRepaidUSD)

	if other.FirstSeen < s.FirstSeen {
		s.FirstSeen = other.FirstSeen
	}
	if other.LastSeen > s.LastSeen {
		s.LastSeen = other.LastSeen
	}
}

// WalletScore is the row shape for one scored wallet.
type WalletScore struct {
	Wallet   string    `ch:"wallet" json:"wallet"`
	Score    int32     `ch:"score" json:"score"`
	ScoredAt time.Time `ch:"scored_at" json:"scored_at"`
}

// SortedScores flattens a score map into rows ordered by score descending,
// wallet ascending, so every output surface lists wallets the same way.
func SortedScores(scores map[string]int) []WalletScore {
	rows := make([]WalletScore, 0, len(scores))
	for wallet, score := range scores {
		rows = append(rows, WalletScore{Wallet: wallet, Score: int32(score)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].Wallet < rows[j].Wallet
	})
	return rows
}
