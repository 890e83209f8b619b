package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mirfanaieng/resume-tailor-ai/internal/documents"
	"github.com/mirfanaieng/resume-tailor-ai/internal/extract"
	"github.com/mirfanaieng/resume-tailor-ai/internal/keywords"
	"github.com/mirfanaieng/resume-tailor-ai/internal/matches"
	"github.com/mirfanaieng/resume-tailor-ai/internal/pipeline"
	"github.com/mirfanaieng/resume-tailor-ai/internal/render"
	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/config"
	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/metrics"
	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/server/middleware"
	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/server/respond"
	"github.com/mirfanaieng/resume-tailor-ai/internal/shared/storage/db"
	localstore "github.com/mirfanaieng/resume-tailor-ai/internal/shared/storage/object/local"
	"github.com/mirfanaieng/resume-tailor-ai/internal/tailor"
	"github.com/mirfanaieng/resume-tailor-ai/internal/tailor/gemini"
	"github.com/mirfanaieng/resume-tailor-ai/internal/tailor/groq"
	"github.com/mirfanaieng/resume-tailor-ai/internal/tailored"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := localstore.New(cfg.LocalStoreDir)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var ranker keywords.Ranker = keywords.Disabled{}
	if cfg.KeywordFallback {
		ranker = keywords.NewFrequencyRanker()
	}
	extractor := extract.New()
	runner := pipeline.NewRunner(extractor, ranker, cfg.FallbackTopN)

	var docRepo documents.DocumentsRepo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}
	docSvc := &documents.Service{Store: store, Repo: docRepo, Extractor: extractor}
	docHandler := documents.NewHandler(docSvc)

	var matchRepo matches.Repo
	if sqlDB != nil {
		matchRepo = &matches.PGRepo{DB: sqlDB}
	} else {
		matchRepo = matches.NewMemoryRepo()
	}
	matchSvc := &matches.Service{Repo: matchRepo, Docs: docSvc, Runner: runner}
	matchHandler := matches.NewHandler(matchSvc)

	var tailoredRepo tailored.Repo
	if sqlDB != nil {
		tailoredRepo = &tailored.PGRepo{DB: sqlDB}
	} else {
		tailoredRepo = tailored.NewMemoryRepo()
	}
	tailorClient := tailor.Client(tailor.Placeholder{})
	switch cfg.LLMProvider {
	case "groq":
		client, err := groq.NewClient(cfg.GroqAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("groq client unavailable, tailoring disabled: %v", err)
		} else {
			tailorClient = client
		}
	case "gemini":
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			log.Printf("gemini client unavailable, tailoring disabled: %v", err)
		} else {
			tailorClient = client
		}
	}
	tailoredSvc := &tailored.Service{
		Repo:     tailoredRepo,
		Matches:  matchRepo,
		Client:   tailorClient,
		Store:    store,
		Render:   render.NewDocxBuilder(),
		Provider: cfg.LLMProvider,
		Model:    cfg.LLMModel,
	}
	tailoredHandler := tailored.NewHandler(tailoredSvc)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	docHandler.RegisterRoutes(api)
	matchHandler.RegisterRoutes(api)
	tailoredHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
