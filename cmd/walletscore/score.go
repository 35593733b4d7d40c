package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/config"
	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/database"
	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/parser"
	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/pipeline"
	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/report"
	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/storage"
	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/writer"
)

var (
	inputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Path to the transaction log (JSON array)",
		Value:   "user-wallet-transactions.json",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Path of the score file to write",
		Value:   "wallet_credit_scores.json",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Score file format [json, yaml]",
		Value: writer.FormatJSON,
	}
	topFlag = &cli.IntFlag{
		Name:  "top",
		Usage: "How many wallets to show in the summary table",
		Value: 10,
	}
	shardsFlag = &cli.IntFlag{
		Name:  "shards",
		Usage: "Aggregation shards, values above 1 fold the log concurrently",
		Value: 1,
	}
	storeFlag = &cli.BoolFlag{
		Name:  "store",
		Usage: "Insert the scores into ClickHouse",
	}
	uploadFlag = &cli.BoolFlag{
		Name:  "upload",
		Usage: "Upload a CSV of the scores to MinIO",
	}

	scoreCmd = &cli.Command{
		Name:   "score",
		Usage:  "Score every wallet in a transaction log",
		Action: runScore,
		Flags: []cli.Flag{
			inputFlag,
			outputFlag,
			formatFlag,
			topFlag,
			shardsFlag,
			storeFlag,
			uploadFlag,
		},
	}
)

func runScore(c *cli.Context) error {
	ctx := c.Context

	records, err := parser.NewJSONParser().ParseFile(c.String(inputFlag.Name))
	if err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}

	var scores map[string]int
	if shards := c.Int(shardsFlag.Name); shards > 1 {
		scores, err = pipeline.ScoreAllParallel(ctx, records, shards)
		if err != nil {
			return fmt.Errorf("scoring wallets: %w", err)
		}
	} else {
		scores = pipeline.ScoreAll(records)
	}

	out := writer.NewFileWriter(c.String(outputFlag.Name), c.String(formatFlag.Name))
	if err := out.Write(scores); err != nil {
		return fmt.Errorf("writing scores: %w", err)
	}

	rows := report.Top(scores, c.Int(topFlag.Name))
	report.Render(os.Stdout, rows, len(scores)-len(rows))

	if !c.Bool(storeFlag.Name) && !c.Bool(uploadFlag.Name) {
		return nil
	}

	cfg := config.Load()
	scoredAt := time.Now().UTC().Truncate(time.Second)

	if c.Bool(storeFlag.Name) {
		conn, err := database.NewClickHouseConnection(ctx, cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("connecting to ClickHouse: %w", err)
		}
		defer conn.Close()

		if err := database.NewScoreLoader(conn).Load(ctx, scores, scoredAt); err != nil {
			return fmt.Errorf("storing scores: %w", err)
		}
	}

	if c.Bool(uploadFlag.Name) {
		st, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("initializing MinIO storage: %w", err)
		}
		if err := storage.UploadScoresCSV(ctx, st, scores, scoredAt); err != nil {
			return fmt.Errorf("uploading scores: %w", err)
		}
	}

	return nil
}
