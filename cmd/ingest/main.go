package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"sort"

	"smartfinance-ai-be/internal/bootstrap"
	"smartfinance-ai-be/internal/config"
	"smartfinance-ai-be/internal/constant"
	"smartfinance-ai-be/internal/pkg/logger"
	"smartfinance-ai-be/internal/service"
	"smartfinance-ai-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	dir := flag.String("dir", cfg.Store.DocumentsDir, "directory holding the knowledge-base files")
	backend := flag.String("store", cfg.Store.Backend, "context store backend (memory or pgvector)")
	dryRun := flag.Bool("dry-run", false, "split files and report chunk counts without writing")
	flag.Parse()

	cfg.Store.Backend = *backend
	ctx := context.Background()

	color.Cyan("📚 SmartFinance knowledge-base ingestion\n")
	color.White("Directory: %s | Store: %s", *dir, cfg.Store.Backend)

	splitter := utils.NewTextSplitter(utils.DefaultChunkSize, utils.DefaultChunkOverlap)

	if *dryRun {
		os.Exit(preview(*dir, splitter))
	}

	if cfg.Store.Backend == "memory" {
		color.Yellow("⚠️  The memory store lives only for this process; the REST server seeds its own at boot.")
	}

	embedder, err := bootstrap.NewEmbeddingProvider(cfg)
	if err != nil {
		color.Red("Failed to create embedding provider: %v", err)
		os.Exit(1)
	}

	contextStore, _, closeStore, err := bootstrap.NewContextStore(ctx, cfg, embedder)
	if err != nil {
		color.Red("Failed to open context store: %v", err)
		os.Exit(1)
	}
	defer closeStore()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	log := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	ingestion := service.NewIngestionService(
		pubSub,
		pubSub,
		constant.IngestDocumentTopic,
		contextStore,
		splitter,
		service.NewEventPublisher(nil, log),
		log,
	)

	report, err := ingestion.SeedDirectory(ctx, *dir)
	if err != nil {
		color.Red("Ingestion failed: %v", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(report.Files))
	for name := range report.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		source := constant.DocumentSources[name]
		color.Green("✅ %s → %s (%d chunks)", name, source.Collection, report.Files[name])
	}
	for _, name := range report.Missed {
		color.Yellow("⏭  %s not found, skipped", name)
	}
	color.Cyan("\nDone: %d chunks written", report.Total)
}

func preview(dir string, splitter *utils.TextSplitter) int {
	names := make([]string, 0, len(constant.DocumentSources))
	for name := range constant.DocumentSources {
		names = append(names, name)
	}
	sort.Strings(names)

	total := 0
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			color.Yellow("⏭  %s: %v", name, err)
			continue
		}
		n := len(splitter.SplitText(string(content)))
		total += n
		color.Green("%s → %s (%d chunks)", name, constant.DocumentSources[name].Collection, n)
	}
	color.Cyan("\nDry run: %d chunks", total)
	return 0
}
