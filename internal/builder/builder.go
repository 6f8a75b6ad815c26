package builder

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/NielsFilter/learnai/internal/api"
	chatapi "github.com/NielsFilter/learnai/internal/api/chat"
	documentapi "github.com/NielsFilter/learnai/internal/api/document"
	projectapi "github.com/NielsFilter/learnai/internal/api/project"
	quizapi "github.com/NielsFilter/learnai/internal/api/quiz"
	songapi "github.com/NielsFilter/learnai/internal/api/song"
	statsapi "github.com/NielsFilter/learnai/internal/api/stats"
	"github.com/NielsFilter/learnai/internal/config"
	"github.com/NielsFilter/learnai/internal/entity"
	"github.com/NielsFilter/learnai/internal/ingest"
	"github.com/NielsFilter/learnai/internal/integration/audio"
	"github.com/NielsFilter/learnai/internal/integration/blobstore"
	"github.com/NielsFilter/learnai/internal/integration/identity"
	"github.com/NielsFilter/learnai/internal/integration/layout"
	"github.com/NielsFilter/learnai/internal/integration/openai"
	"github.com/NielsFilter/learnai/internal/integration/vectorindex"
	"github.com/NielsFilter/learnai/internal/pkg/formatter"
	"github.com/NielsFilter/learnai/internal/pkg/logger"
	"github.com/NielsFilter/learnai/internal/pkg/validator"
	"github.com/NielsFilter/learnai/internal/repository"
	"github.com/NielsFilter/learnai/internal/retrieval"
	chatuc "github.com/NielsFilter/learnai/internal/usecase/chat"
	documentuc "github.com/NielsFilter/learnai/internal/usecase/document"
	projectuc "github.com/NielsFilter/learnai/internal/usecase/project"
	quizuc "github.com/NielsFilter/learnai/internal/usecase/quiz"
	songuc "github.com/NielsFilter/learnai/internal/usecase/song"
	statsuc "github.com/NielsFilter/learnai/internal/usecase/stats"
	"go.uber.org/zap"
)

// languageModel is the full LLM surface, embeddings plus completions.
type languageModel interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Complete(ctx context.Context, messages []entity.Message, temperature float64) (string, error)
}

// chunkIndex is the full vector index surface.
type chunkIndex interface {
	Upsert(ctx context.Context, chunks []entity.Chunk) error
	Query(ctx context.Context, projectID string, vector []float32, topK int) ([]entity.ScoredChunk, error)
	DeleteByFile(ctx context.Context, projectID, filename string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

// byteStore is the full blob store surface.
type byteStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
	List(ctx context.Context, prefix string) ([]string, error)
}

func Build() (*App, error) {
	ctx := context.Background()

	env := flag.String("env", "local", "environment name, selects the .env file")
	flag.Parse()

	cfg, err := config.Load(*env)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	log.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	projectRepo := repository.NewProjectPostgres(db)
	documentRepo := repository.NewDocumentPostgres(db)
	chatRepo := repository.NewChatPostgres(db)
	quizRepo := repository.NewQuizPostgres(db)
	songRepo := repository.NewSongPostgres(db)
	log.Info("Repositories initialized")

	// Initialize external capabilities (with mock support)
	var llm languageModel
	var layoutAnalyzer ingest.LayoutAnalyzer
	var audioGen songuc.AudioGenerator
	var index chunkIndex
	var docsStore, songsStore byteStore
	var gcsClient *storage.Client

	if cfg.EnableMocks {
		log.Info("Using in-process mocks for external capabilities")
		llm = openai.NewMockConnector(log)
		layoutAnalyzer = layout.NewMockConnector(log)
		audioGen = audio.NewMockConnector(log)
		index = vectorindex.NewMemoryIndex()
		docsStore = blobstore.NewMemoryStore()
		songsStore = blobstore.NewMemoryStore()
	} else {
		log.Info("Using real connectors for external capabilities")
		llm = openai.NewConnector(cfg.OpenAICfg, log)
		layoutAnalyzer = layout.NewConnector(cfg.LayoutCfg, log)
		audioGen = audio.NewConnector(cfg.AudioCfg, log)
		index = vectorindex.NewPineconeIndex(cfg.VectorCfg, log)

		gcsClient, err = storage.NewClient(ctx)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("create storage client: %w", err)
		}
		docsStore = blobstore.NewGCSStore(gcsClient, cfg.StorageCfg.DocsBucket, log)
		songsStore = blobstore.NewGCSStore(gcsClient, cfg.StorageCfg.SongsBucket, log)
	}

	// Ingestion pipeline
	extractor := ingest.NewExtractor(layoutAnalyzer)
	summarizer := ingest.NewSummarizer(llm)
	chunker := ingest.NewChunker()
	orchestrator := ingest.NewOrchestrator(extractor, summarizer, chunker, llm, index, documentRepo, projectRepo)

	// Retrieval engine
	engine := retrieval.NewEngine(llm, index, cfg.RetrievalCfg)

	// Validators
	fileValidator := validator.NewFileValidator(cfg.FileUploadCfg)

	// Use cases
	projectUC := projectuc.NewUsecase(
		projectRepo, documentRepo, chatRepo, quizRepo, songRepo,
		index, docsStore, songsStore, orchestrator, fileValidator, log,
	)
	documentUC := documentuc.NewUsecase(projectRepo, documentRepo, index, docsStore, extractor, summarizer, log)
	chatUC := chatuc.NewUsecase(projectRepo, chatRepo, engine, llm, log)
	quizUC := quizuc.NewUsecase(projectRepo, quizRepo, engine, llm, formatter.NewQuizReportFormatter(), log)
	songUC := songuc.NewUsecase(projectRepo, songRepo, engine, llm, audioGen, songsStore, log)
	statsUC := statsuc.NewUsecase(quizRepo, log)
	log.Info("Use cases initialized")

	// Auth
	verifier := identity.NewVerifier(cfg.AuthCfg)

	// API handlers and router
	handlers := &api.Handlers{
		Project:  projectapi.NewHandler(projectUC, cfg.FileUploadCfg),
		Document: documentapi.NewHandler(documentUC),
		Chat:     chatapi.NewHandler(chatUC),
		Quiz:     quizapi.NewHandler(quizUC),
		Song:     songapi.NewHandler(songUC),
		Stats:    statsapi.NewHandler(statsUC),
	}
	router := api.SetupRouter(handlers, verifier, log)
	log.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:    server,
		db:        db,
		gcsClient: gcsClient,
		logger:    log,
	}, nil
}
