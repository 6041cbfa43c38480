package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"livescore-service/internal/config"
	"livescore-service/internal/logging"
	"livescore-service/internal/metrics"
	"livescore-service/internal/sitemap"
	"livescore-service/internal/snapshots"
	"livescore-service/internal/timeutil"
)

const appVersion = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run keeps stderr for errors only; the verbose summary goes to stdout
// so cron output stays pipeable.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sitemap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "verbose output")
	fs.BoolVar(verbose, "verbose", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Load()
	level := os.Getenv("LOG_LEVEL")
	if *verbose {
		level = "debug"
	}
	logger := logging.NewLogger(logging.Config{
		Level:   level,
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "livescore-sitemap",
		Version: appVersion,
	})

	now := time.Now().UTC()
	month := timeutil.FormatMonth(now)

	// This month's fixtures come from the daily snapshots the server
	// poller writes. No snapshots means an empty, still valid, file set.
	store := snapshots.NewFSStore(cfg.Snapshots.Folder)
	monthMatches, err := store.LoadMonth(month)
	if err != nil {
		fmt.Fprintf(stderr, "sitemap: load snapshots: %v\n", err)
		return 1
	}

	refs := make([]sitemap.MatchRef, 0, len(monthMatches))
	for _, m := range monthMatches {
		scheduled, _ := timeutil.ParseDate(m.Date)
		refs = append(refs, sitemap.MatchRef{
			ID:          m.ID,
			Slug:        sitemap.MatchSlug(m.HomeTeam.Name, m.AwayTeam.Name, m.Date),
			ScheduledAt: scheduled,
		})
	}

	gen := sitemap.NewGenerator(cfg.Sitemap.BaseDomain, logger, metrics.NewRecorder())
	res, err := gen.GenerateAll(refs)
	if err != nil {
		fmt.Fprintf(stderr, "sitemap: generate: %v\n", err)
		return 1
	}

	writer := sitemap.NewFileWriter(cfg.Sitemap.OutputDir)
	if err := writer.WriteAll(res.Files); err != nil {
		fmt.Fprintf(stderr, "sitemap: write: %v\n", err)
		return 1
	}

	if *verbose {
		fmt.Fprintf(stdout, "wrote %d sitemap files (%d urls) to %s\n", len(res.Files), res.TotalURLs, writer.Dir())
	}
	return 0
}
