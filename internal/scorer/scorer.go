package scorer

import (
	"github.com/shopspring/decimal"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/models"
)

// Scoring weights. The values, the strictness of each comparison, and the
// order of the tier checks are fixed business rules.
const (
	BaseScore = 500
	MinScore  = 0
	MaxScore  = 1000

	// One point per whole $1000 of lifetime deposits, capped.
	DepositBonusCap = 200

	// Repayment tiers. Mutually exclusive, highest applicable one wins.
	FullRepayBonus     = 150
	StrongRepayBonus   = 75
	ModerateRepayBonus = 25

	// Tenure bonuses. Mutually exclusive.
	TenureYearBonus     = 20
	TenureHalfYearBonus = 10

	LiquidationPenalty = 200
	WeakRepayPenalty   = 100
	LeveragePenalty    = 75

	longTenureDays = 365
	midTenureDays  = 180
	secondsPerDay  = 86400

	// Borrowing strictly more than 1.5x the repay count reads as
	// over-leveraged behavior.
	borrowRepayCountRatio = 1.5
)

var (
	one            = decimal.NewFromInt(1)
	depositUnitUSD = decimal.NewFromInt(1000)
	depositCap     = decimal.NewFromInt(DepositBonusCap)

	strongRepayRatio   = decimal.RequireFromString("0.75")
	moderateRepayRatio = decimal.RequireFromString("0.5")

	// Borrowed volume above this fraction of deposits counts as leveraged.
	leverageDepositRatio = decimal.RequireFromString("0.75")
)

// Score maps one wallet summary to a credit score in [MinScore, MaxScore].
// It is a pure function of the summary: no other wallet, no record order, no
// hidden state influences the result. A summary that never folded a record
// stays at the neutral base.
func Score(s models.WalletSummary) int {
	if !s.Observed() {
		return BaseScore
	}

	score := BaseScore

	score += depositBonus(s.TotalDepositedUSD)

	switch {
	case repayRatioCmp(s, one) >= 0:
		score += FullRepayBonus
	case repayRatioCmp(s, strongRepayRatio) > 0:
		score += StrongRepayBonus
	case repayRatioCmp(s, moderateRepayRatio) > 0:
		score += ModerateRepayBonus
	}

	if s.LastSeen > 0 {
		tenure := s.LastSeen - s.FirstSeen // seconds
		switch {
		case tenure > longTenureDays*secondsPerDay:
			score += TenureYearBonus
		case tenure > midTenureDays*secondsPerDay:
			score += TenureHalfYearBonus
		}
	}

	score -= LiquidationPenalty * s.LiquidationCount

	if s.TotalBorrowedUSD.IsPositive() && repayRatioCmp(s, moderateRepayRatio) < 0 {
		score -= WeakRepayPenalty
	}

	if s.BorrowCount > 0 && s.TotalBorrowedUSD.GreaterThan(s.TotalDepositedUSD.Mul(leverageDepositRatio)) {
		overBorrowing := float64(s.BorrowCount) > borrowRepayCountRatio*float64(s.RepayCount)
		if repayRatioCmp(s, strongRepayRatio) < 0 || overBorrowing {
			score -= LeveragePenalty
		}
	}

	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// ScoreSummaries scores every wallet in summaries. Summaries are passed to
// Score by value; the input map is never mutated.
func ScoreSummaries(summaries map[string]*models.WalletSummary) map[string]int {
	scores := make(map[string]int, len(summaries))
	for wallet, summary := range summaries {
		scores[wallet] = Score(*summary)
	}
	return scores
}

// depositBonus awards one point per whole $1000 deposited, capped. The
// quotient comes from QuoRem rather than Div, which rounds at a fixed
// precision and could carry a value sitting just under a thousand boundary
// across it.
func depositBonus(deposited decimal.Decimal) int {
	points, _ := deposited.QuoRem(depositUnitUSD, 0)
	if points.GreaterThanOrEqual(depositCap) {
		return DepositBonusCap
	}
	return int(points.IntPart())
}

// repayRatioCmp compares the wallet's repay-to-borrow ratio against threshold,
// returning the usual -1, 0, or 1. With borrowed volume present it
// cross-multiplies instead of dividing, keeping tier boundaries exact.
// A wallet that never borrowed has a perfect ratio by convention; borrow
// records with zero recorded volume leave the ratio at zero.
func repayRatioCmp(s models.WalletSummary, threshold decimal.Decimal) int {
	switch {
	case s.TotalBorrowedUSD.IsPositive():
		return s.TotalRepaidUSD.Cmp(s.TotalBorrowedUSD.Mul(threshold))
	case s.BorrowCount == 0:
		return one.Cmp(threshold)
	default:
		return decimal.Zero.Cmp(threshold)
	}
}
