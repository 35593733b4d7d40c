package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/api"
	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/config"
	"github.com/ShreyRaut/Aave-V2-Wallet-Credit-Scoring-Model/internal/database"
)

var (
	addrFlag = &cli.StringFlag{
		Name:  "addr",
		Usage: "Address for the score API to listen on",
		Value: ":8080",
	}

	serveCmd = &cli.Command{
		Name:   "serve",
		Usage:  "Serve stored scores over HTTP",
		Action: runServe,
		Flags: []cli.Flag{
			addrFlag,
		},
	}
)

func runServe(c *cli.Context) error {
	cfg := config.Load()

	conn, err := database.NewClickHouseConnection(c.Context, cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("connecting to ClickHouse: %w", err)
	}
	defer conn.Close()

	return api.StartServer(c.String(addrFlag.Name), api.NewServer(conn))
}
