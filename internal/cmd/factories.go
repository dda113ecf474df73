package cmd

import (
	adaptersfs "codetally/internal/adapters/filesystem"
	adaptergit "codetally/internal/adapters/git"
	adapterprogress "codetally/internal/adapters/progress"
	adapterstorage "codetally/internal/adapters/storage"
	"codetally/internal/config"
	"codetally/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	AnalyzerService *services.AnalyzerService
	ScanService     *services.ScanService

	// Adapters
	Registry *adapterprogress.Registry
	Store    *adapterstorage.ReportStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	store, err := adapterstorage.NewReportStore(settings.MaxScansOrDefault())
	if err != nil {
		return nil, err
	}

	registry := adapterprogress.NewRegistry(settings.KeepAliveInterval())
	runner := adaptergit.NewCLIRunner(
		settings.GitBinaryOrDefault(),
		settings.MaxOutputBytesOrDefault(),
		settings.CommandTimeout(),
	)
	history := adaptergit.NewCLIHistory(runner)
	walker := adaptersfs.NewWalker(registry, settings.SkipDirsOrDefault())

	analyzerService := services.NewAnalyzerService(history, registry)
	scanService := services.NewScanService(walker, analyzerService, registry)

	return &Container{
		AnalyzerService: analyzerService,
		Registry:        registry,
		ScanService:     scanService,
		Store:           store,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}
