package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/medhedtech/medh-backend/internal/migrate"
)

func main() {
	var (
		mode   string
		api    string
		token  string
		limit  int
		dryRun bool
		outPth string
	)
	flag.StringVar(&mode, "mode", "analyze", "analyze or apply")
	flag.StringVar(&api, "api", "http://localhost:8080", "base URL of the medh API")
	flag.StringVar(&token, "token", os.Getenv("MEDH_MIGRATE_TOKEN"), "admin bearer token")
	flag.IntVar(&limit, "limit", 0, "limit number of legacy docs processed (0 = all)")
	flag.BoolVar(&dryRun, "dry-run", false, "apply only: print mapped payloads without posting")
	flag.StringVar(&outPth, "out", "", "write the report to this file instead of stdout")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client, err := migrate.NewClient(api, token, logger)
	if err != nil {
		fmt.Printf("init client: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if outPth != "" {
		f, err := os.Create(outPth)
		if err != nil {
			fmt.Printf("create %s: %v\n", outPth, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	ctx := context.Background()

	var report any
	switch mode {
	case "analyze":
		report, err = migrate.Analyze(ctx, client, limit)
	case "apply":
		report, err = migrate.Apply(ctx, client, limit, dryRun, out)
	default:
		fmt.Printf("unknown mode %q\n", mode)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("%s: %v\n", mode, err)
		os.Exit(1)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fmt.Printf("write report: %v\n", err)
		os.Exit(1)
	}
}
