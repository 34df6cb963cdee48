package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preppal-labs/preppal/internal/adapters/driven/ai"
	"github.com/preppal-labs/preppal/internal/adapters/driven/storage/memory"
	"github.com/preppal-labs/preppal/internal/adapters/driving/httpapi"
	"github.com/preppal-labs/preppal/internal/config"
	"github.com/preppal-labs/preppal/internal/core/services"
	"github.com/preppal-labs/preppal/internal/logger"
	"github.com/preppal-labs/preppal/internal/postprocessors/chunker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the PrepPal HTTP API. Documents live in memory for the
lifetime of the process. AI providers are optional: without an embedding
provider uploads are stored with fallback vectors, and without an LLM
chat and quiz generation return fixed fallback responses.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}

	// Provider failures keep the server usable in degraded mode.
	embedSettings := cfg.EmbeddingSettings()
	embedSvc, err := ai.CreateAndValidateEmbeddingService(&embedSettings)
	if err != nil {
		logger.Warn("embedding provider unavailable, uploads will use fallback vectors: %v", err)
	}
	if embedSvc != nil {
		defer embedSvc.Close()
		logger.Info("embedding provider: %s (%s)", embedSettings.Provider, embedSvc.ModelName())
	}

	llmSettings := cfg.LLMSettings()
	llmSvc, err := ai.CreateAndValidateLLMService(&llmSettings)
	if err != nil {
		logger.Warn("LLM provider unavailable, chat and quiz will return fallback responses: %v", err)
	}
	if llmSvc != nil {
		defer llmSvc.Close()
		logger.Info("LLM provider: %s (%s)", llmSettings.Provider, llmSvc.ModelName())
	}

	store := memory.NewDocumentStore()
	splitter := chunker.New(chunker.WithChunkSize(cfg.Library.ChunkSize))
	embedder := services.NewEmbedder(embedSvc)

	library := services.NewLibraryService(store, splitter, embedder)
	retriever := services.NewRetriever(store, embedder, cfg.Retrieval.TopK)
	answer := services.NewAnswerService(retriever, llmSvc)
	quiz := services.NewQuizService(store, llmSvc)
	planner := services.NewPlannerService()

	deps := httpapi.Deps{
		Library: library,
		Answer:  answer,
		Quiz:    quiz,
		Planner: planner,
	}
	if embedSvc != nil {
		deps.EmbeddingModel = embedSvc.ModelName()
	}
	if llmSvc != nil {
		deps.LLMModel = llmSvc.ModelName()
	}

	server := httpapi.New(httpapi.Config{
		ListenAddr:      cfg.Server.ListenAddr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout(),
	}, deps)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx)
}
