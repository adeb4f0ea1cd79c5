// Package main is the sherlodoc CLI entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/panglesd/sherlodoc/internal/config"
	"github.com/panglesd/sherlodoc/internal/index"
	"github.com/panglesd/sherlodoc/internal/models"
	"github.com/panglesd/sherlodoc/internal/ranking"
	"github.com/panglesd/sherlodoc/internal/search"
	"github.com/panglesd/sherlodoc/internal/server"
	"github.com/panglesd/sherlodoc/internal/typexpr"
	"github.com/panglesd/sherlodoc/internal/watcher"
	"github.com/panglesd/sherlodoc/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/sherlodoc/config.yaml"

// loadConfig loads config from path. When path is the default, it first
// looks for config.yaml in the current directory (for development); if that
// exists it is used.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				return config.Load(fallback)
			}
		}
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "serve":
		runServe()
	case "index":
		runIndex()
	case "search":
		runSearch()
	case "version", "--version", "-v":
		fmt.Printf("sherlodoc version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: sherlodoc <command> [options]

Commands:
  serve                Start the search API server
  index <file.json>    Import one or more index files
  search <query>       Search the index from the command line
  version              Print version`)
}

// components holds everything a command needs, wired together.
type components struct {
	cfg     *config.Config
	logger  *zap.Logger
	storage index.Storage
	engine  *search.Engine
	loader  *index.Loader
}

func initComponents(configPath string, debug bool) (*components, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := utils.NewLogger(cfg.Debug || debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	storage, err := index.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	scorer := ranking.NewScorer(typexpr.Metric{})
	return &components{
		cfg:     cfg,
		logger:  logger,
		storage: storage,
		engine:  search.NewEngine(storage, scorer, &cfg.Search, logger),
		loader:  index.NewLoader(storage, logger),
	}, nil
}

func (c *components) close() {
	_ = c.storage.Close()
	_ = c.logger.Sync()
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	c, err := initComponents(*configPath, *debug)
	if err != nil {
		fmt.Printf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer c.close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if len(c.cfg.Watch.Directories) > 0 {
		w := watcher.New(c.cfg.Watch.Directories, c.cfg.Watch.Extensions,
			func(path string) {
				if _, err := c.loader.ImportFile(ctx, path); err != nil {
					c.logger.Error("re-import failed", zap.String("path", path), zap.Error(err))
				}
			},
			nil,
			watcher.WithLogger(c.logger),
		)
		if err := w.Start(ctx); err != nil {
			c.logger.Error("failed to start watcher", zap.Error(err))
			os.Exit(1)
		}
		defer w.Stop()
	}

	srv := server.NewServer(c.engine, c.loader, c.storage, &c.cfg.Server, c.logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		c.logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	case sig := <-sigCh:
		c.logger.Info("shutting down", zap.String("signal", sig.String()))
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			c.logger.Error("shutdown failed", zap.Error(err))
		}
	}
}

func runIndex() {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	_ = fs.Parse(os.Args[2:])

	files := fs.Args()
	if len(files) == 0 {
		fmt.Println("Usage: sherlodoc index <file.json>...")
		os.Exit(1)
	}

	c, err := initComponents(*configPath, false)
	if err != nil {
		fmt.Printf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer c.close()

	ctx := context.Background()
	total := 0
	for _, file := range files {
		n, err := c.loader.ImportFile(ctx, file)
		if err != nil {
			fmt.Printf("Failed to import %s: %v\n", file, err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d entries from %s\n", n, file)
		total += n
	}
	fmt.Printf("Done: %d entries\n", total)
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	limit := fs.Int("limit", 10, "maximum number of results")
	pkg := fs.String("pkg", "", "restrict to one package")
	_ = fs.Parse(os.Args[2:])

	if len(fs.Args()) == 0 {
		fmt.Println("Usage: sherlodoc search [options] <query>")
		os.Exit(1)
	}
	queryText := fs.Args()[0]

	c, err := initComponents(*configPath, false)
	if err != nil {
		fmt.Printf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer c.close()

	resp, err := c.engine.Search(context.Background(), &models.SearchQuery{
		Query:   queryText,
		Limit:   *limit,
		PkgName: *pkg,
	})
	if err != nil {
		fmt.Printf("Search failed: %v\n", err)
		os.Exit(1)
	}

	if len(resp.Results) == 0 {
		fmt.Println("No results.")
		return
	}
	fmt.Printf("%d results (%d ms)\n\n", resp.Total, resp.QueryTime)
	for _, r := range resp.Results {
		fmt.Printf("%3d. [%s] %s %s\n", r.Rank, r.Entry.Kind, r.Entry.Name, r.Entry.Rhs)
		if doc := utils.StripTags(r.Entry.DocHTML); doc != "" {
			fmt.Printf("     %s\n", utils.Truncate(doc, 100))
		}
	}
}
