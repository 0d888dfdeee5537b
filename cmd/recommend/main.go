// MovieMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Command recommend prints content-based recommendations for a movie title.
//
//	recommend [-data movies.csv] [-k 20] [-json] <title>
//
// Exit codes: 0 success, 1 catalog or internal error, 2 usage error or
// empty title, 3 no close match.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moviematch/internal/catalog"
	"github.com/tomtom215/moviematch/internal/recommend"
)

const (
	exitOK      = 0
	exitError   = 1
	exitUsage   = 2
	exitNoMatch = 3
)

const (
	msgEmptyQuery = "Please enter a movie name."
	msgNoMatch    = "No close match found. Please try another movie name."
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("recommend", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dataPath := fs.String("data", envOr("MOVIES_CSV", "movies.csv"), "catalog CSV file")
	k := fs.Int("k", recommend.DefaultConfig().DefaultK, "number of recommendations")
	asJSON := fs.Bool("json", false, "print the full response as JSON")
	verbose := fs.Bool("v", false, "log model build details to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: recommend [-data movies.csv] [-k 20] [-json] <title>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if *k < 1 {
		fmt.Fprintln(stderr, "k must be at least 1")
		return exitUsage
	}

	title := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(stderr, msgEmptyQuery)
		return exitUsage
	}

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
	}

	corpus, err := catalog.Load(ctx, *dataPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	cfg := recommend.DefaultConfig()
	cfg.Cache.Enabled = false
	if *k > cfg.MaxK {
		cfg.MaxK = *k
	}
	engine, err := recommend.NewEngine(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	if _, err := engine.Load(ctx, corpus); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	resp, err := engine.Recommend(ctx, recommend.Request{Query: title, K: *k})
	switch {
	case errors.Is(err, recommend.ErrEmptyQuery):
		fmt.Fprintln(stderr, msgEmptyQuery)
		return exitUsage
	case errors.Is(err, recommend.ErrNoMatch):
		fmt.Fprintln(stderr, msgNoMatch)
		return exitNoMatch
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitError
		}
		return exitOK
	}

	printText(stdout, resp)
	return exitOK
}

func printText(w io.Writer, resp *recommend.Response) {
	fmt.Fprintf(w, "Recommendations based on '%s'\n\n", resp.Match.Title)
	for _, item := range resp.Items {
		fmt.Fprintf(w, "%d. %s\n", item.Rank, item.Title)
		fmt.Fprintf(w, "   %s\n", item.Genres)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
