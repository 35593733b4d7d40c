package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/config"
	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/database"
	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/report"
)

var (
	minScoreFlag = &cli.IntFlag{
		Name:  "min",
		Usage: "Only show wallets with at least this score",
		Value: 0,
	}
	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Maximum number of wallets to show",
		Value: 20,
	}

	queryCmd = &cli.Command{
		Name:   "query",
		Usage:  "Show stored scores from the most recent run",
		Action: runQuery,
		Flags: []cli.Flag{
			minScoreFlag,
			limitFlag,
		},
	}
)

func runQuery(c *cli.Context) error {
	cfg := config.Load()

	conn, err := database.NewClickHouseConnection(c.Context, cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("connecting to ClickHouse: %w", err)
	}
	defer conn.Close()

	rows, err := database.FetchTopScores(c.Context, conn, c.Int(minScoreFlag.Name), c.Int(limitFlag.Name))
	if err != nil {
		return fmt.Errorf("fetching scores: %w", err)
	}

	report.Render(os.Stdout, rows, 0)
	return nil
}
