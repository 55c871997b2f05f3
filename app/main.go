package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/lysyi3m/quote-comb/app/api"
	"github.com/lysyi3m/quote-comb/app/catalog"
	"github.com/lysyi3m/quote-comb/app/cfg"
	"github.com/lysyi3m/quote-comb/app/database"
	"github.com/lysyi3m/quote-comb/app/export"
	"github.com/lysyi3m/quote-comb/app/fetcher"
	"github.com/lysyi3m/quote-comb/app/quote"
	"github.com/lysyi3m/quote-comb/app/tasks"
	"github.com/lysyi3m/quote-comb/app/ui"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogging(appCfg.Debug)

	if appCfg.Serve {
		runServe(appCfg)
		return
	}

	os.Exit(runScrape(appCfg))
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}

func runScrape(appCfg *cfg.Cfg) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting scrape", "version", appCfg.Version)

	cat, err := catalog.Load(appCfg.TagsFile)
	if err != nil {
		slog.Error("Failed to load tag catalog", "file", appCfg.TagsFile, "error", err)
		return 1
	}

	selected, pageLimit, err := resolveRun(appCfg, cat)
	if err != nil {
		slog.Error("Failed to resolve tag selection", "error", err)
		return 1
	}
	if len(selected) == 0 {
		slog.Info("No tags selected, nothing to do")
		return 0
	}

	if err := os.MkdirAll(appCfg.OutputDir, 0o755); err != nil {
		slog.Error("Failed to create output directory", "dir", appCfg.OutputDir, "error", err)
		return 1
	}

	index := export.NewIndex()
	loaded, err := index.LoadDir(appCfg.OutputDir)
	if err != nil {
		slog.Error("Failed to scan existing exports", "dir", appCfg.OutputDir, "error", err)
		return 1
	}
	if loaded > 0 {
		slog.Info("Loaded fingerprints from existing exports", "count", loaded)
	}

	// The SQLite archive is optional. When it cannot be opened the run
	// degrades to CSV export only instead of failing.
	var quoteRepo database.QuoteRepository
	var authorRepo database.AuthorRepository

	if !appCfg.NoDatabase {
		db, err := database.NewConnection(appCfg.Database)
		if err != nil {
			slog.Warn("Archive unavailable, continuing with CSV export only", "database", appCfg.Database, "error", err)
		} else {
			defer db.Close()

			if version, _, err := database.RunMigrations(db); err != nil {
				slog.Warn("Archive migrations failed, continuing with CSV export only", "error", err)
			} else {
				slog.Debug("Archive ready", "database", appCfg.Database, "schema_version", version)
				quoteRepo = database.NewQuoteRepository(db)
				authorRepo = database.NewAuthorRepository(db)

				if fingerprints, err := quoteRepo.GetFingerprints(); err != nil {
					slog.Warn("Failed to load archived fingerprints", "error", err)
				} else {
					index.AddAll(fingerprints)
				}
			}
		}
	}

	writer := export.NewWriter(appCfg.OutputDir, index)

	scrapeFetcher := fetcher.New(fetcher.Options{
		UserAgent: appCfg.UserAgent,
		Timeout:   time.Duration(appCfg.Timeout) * time.Second,
		DelayMin:  time.Duration(appCfg.DelayMin * float64(time.Second)),
		DelayMax:  time.Duration(appCfg.DelayMax * float64(time.Second)),
		Retries:   2,
	})
	extractor := quote.NewExtractor()
	filterer := quote.NewFilterer()

	reporter := ui.NewReporter(len(selected))

	slog.Info("Starting scrape tasks", "tags", len(selected), "page_limit", pageLimit, "workers", appCfg.WorkerCount)

	scheduler := tasks.NewScheduler(appCfg.WorkerCount)
	scheduler.Start()

	for _, category := range selected {
		task := tasks.NewScrapeTagTask(category, pageLimit, scrapeFetcher, extractor, filterer, writer, quoteRepo, authorRepo, reporter)
		if err := scheduler.EnqueueTask(task); err != nil {
			slog.Error("Failed to enqueue scrape task", "category", category.Name, "error", err)
		}
	}

	if err := scheduler.Wait(ctx); err != nil {
		slog.Warn("Scrape interrupted", "error", err)
	}

	if appCfg.AuthorBios && authorRepo != nil && ctx.Err() == nil {
		task := tasks.NewAuthorBiosTask(scrapeFetcher, quote.NewBioExtractor(), authorRepo)
		if err := scheduler.EnqueueTask(task); err != nil {
			slog.Error("Failed to enqueue author bio task", "error", err)
		} else if err := scheduler.Wait(ctx); err != nil {
			slog.Warn("Author bio enrichment interrupted", "error", err)
		}
	}

	scheduler.Stop()
	reporter.Stop()

	if err := writer.Close(); err != nil {
		slog.Error("Failed to close export files", "error", err)
	}

	reporter.RenderSummary()

	if reporter.AllFailed() {
		return 1
	}
	return 0
}

// resolveRun determines which categories to scrape and how many pages to
// fetch per category. The --tags flag wins over the interactive menu, and
// a missing terminal falls back to the full catalog.
func resolveRun(appCfg *cfg.Cfg, cat *catalog.Catalog) ([]catalog.Category, int, error) {
	if appCfg.Tags != "" {
		numbers, err := catalog.ParseSelection(appCfg.Tags, cat.Len())
		if err != nil {
			return nil, 0, err
		}
		return cat.Select(numbers), effectivePageLimit(appCfg, appCfg.Pages), nil
	}

	if !ui.IsInteractive() {
		return cat.All(), effectivePageLimit(appCfg, appCfg.Pages), nil
	}

	menu := ui.NewMenu(os.Stdin, os.Stdout)
	selected, err := menu.SelectCategories(cat)
	if err != nil {
		return nil, 0, err
	}

	pages := appCfg.Pages
	if pages < 0 {
		pages, err = menu.AskPageLimit(1)
		if err != nil {
			return nil, 0, err
		}
	}

	return selected, effectivePageLimit(appCfg, pages), nil
}

// effectivePageLimit turns the configured page count into the per-tag
// ceiling handed to scrape tasks. Zero and negative values mean "until a
// page comes back empty", bounded by MaxPages.
func effectivePageLimit(appCfg *cfg.Cfg, pages int) int {
	limit := pages
	if limit <= 0 || limit > appCfg.MaxPages {
		limit = appCfg.MaxPages
	}
	if limit < 1 {
		limit = 1
	}
	return limit
}

func runServe(appCfg *cfg.Cfg) {
	slog.Info("Starting archive server", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.Database)
	if err != nil {
		slog.Error("Failed to open archive", "database", appCfg.Database, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, _, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run archive migrations", "error", err)
		os.Exit(1)
	}
	slog.Debug("Archive ready", "database", appCfg.Database, "schema_version", version)

	handler := api.NewHandler(database.NewQuoteRepository(db), database.NewAuthorRepository(db))
	server := api.NewServer(handler, appCfg.Version)

	// Create HTTP server with timeouts
	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	// Graceful shutdown
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
}
