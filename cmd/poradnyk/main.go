// Copyright 2025 Mycostore
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mycostore/poradnyk/ai"
	"github.com/mycostore/poradnyk/ai/openai"
	"github.com/mycostore/poradnyk/chat"
	"github.com/mycostore/poradnyk/feed"
	"github.com/mycostore/poradnyk/relevance"
	"github.com/mycostore/poradnyk/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "poradnyk",
		Usage: "Product advisor for supplement shop catalogs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import a supplier XML feed into the catalog",
				Action:    importCommand,
				ArgsUsage: "<feed.xml>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of products to upsert in each batch",
						Value: 50,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N products",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed batches",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:      "rank",
				Usage:     "Rank catalog products against a free-text query",
				Action:    rankCommand,
				ArgsUsage: "<query...>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:      "chat",
				Usage:     "Answer a customer message with a grounded recommendation",
				Action:    chatCommand,
				ArgsUsage: "<message...>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "ai-host",
						Usage: "Chat service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "ai-model",
						Usage: "Chat model name",
						Value: "qwen2.5:3b",
					},
					&cli.StringFlag{
						Name:  "ai-token",
						Usage: "API token for the chat service",
						Value: "none",
					},
					&cli.IntFlag{
						Name:  "max-tokens",
						Usage: "Reply length bound",
						Value: 600,
					},
					&cli.Float64Flag{
						Name:  "temperature",
						Usage: "Sampling temperature",
						Value: 0.7,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	feedPath := c.Args().First()
	if feedPath == "" {
		return fmt.Errorf("feed file path is required")
	}

	// Open database
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewProductRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	file, err := os.Open(feedPath)
	if err != nil {
		return fmt.Errorf("failed to open feed: %w", err)
	}
	defer file.Close()

	products, err := feed.ParseCatalog(file)
	if err != nil {
		return fmt.Errorf("failed to parse feed: %w", err)
	}

	pipeline, err := feed.NewPipeline(repo,
		feed.WithBatchSize(c.Int("batch-size")),
		feed.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	tracker := feed.NewProgressTracker(os.Stderr, len(products), c.Int("report-interval"))
	tracker.Start()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Feed: %s (%d offers)\n\n", feedPath, len(products))

	stats, err := pipeline.ImportProducts(ctx, products, tracker)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	tracker.Finish()

	fmt.Fprintf(os.Stderr, "Imported %d of %d products (%d failed) in %s\n",
		stats.Imported, stats.Parsed, stats.Failed, tracker.Elapsed().Round(time.Millisecond))
	return nil
}

func rankCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query is required")
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewProductRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	engine, err := relevance.NewEngine()
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	snapshot, err := repo.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ranking := engine.Rank(query, snapshot)
	fmt.Printf("Found %d hits in %d products\n", len(ranking), len(snapshot))
	for i, hit := range ranking {
		fmt.Printf("%d: '%s' (%d)[%0.1f] %0.2f %s\n",
			i, hit.Product.Name, hit.Product.Id, hit.Score, hit.Product.Price, hit.Product.Unit)
	}
	return nil
}

func chatCommand(c *cli.Context) error {
	ctx := context.Background()

	message := strings.Join(c.Args().Slice(), " ")
	if message == "" {
		return fmt.Errorf("message is required")
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewProductRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithModel(c.String("ai-model")),
		ai.WithToken(c.String("ai-token")),
		ai.WithMaxTokens(c.Int("max-tokens")),
		ai.WithTemperature(c.Float64("temperature")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	engine, err := relevance.NewEngine()
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	advisor, err := chat.NewAdvisor(repo, engine, provider.Assistant())
	if err != nil {
		return fmt.Errorf("failed to create advisor: %w", err)
	}

	advice, err := advisor.Advise(ctx, message)
	if err != nil {
		return fmt.Errorf("advise failed: %w", err)
	}

	fmt.Println(advice.Reply)
	if len(advice.Cards) > 0 {
		fmt.Println()
		for _, card := range advice.Cards {
			fmt.Printf("- %s (%0.2f грн)\n", card.Name, card.Price)
		}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
