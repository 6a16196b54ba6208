package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"ecofolio/internal/config"
	"ecofolio/internal/db"
	"ecofolio/internal/email"
	apihttp "ecofolio/internal/http"
	"ecofolio/internal/llm"
	"ecofolio/internal/portfolio"
	"ecofolio/internal/repository"
	"ecofolio/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	if cfg.IsDevelopment() {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	store := portfolio.Default()

	llmClient, err := llm.NewCompleter(ctx, llm.ProviderConfig{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.LLMAPIKey,
		BaseURL:  cfg.LLMBaseURL,
		Model:    cfg.LLMModel,
	}, logger)
	if err != nil {
		logger.Fatal("llm client init", zap.Error(err))
	}
	gateway := service.NewAssistantGateway(llmClient, store, service.GatewayOptions{
		Model:         cfg.LLMModel,
		Temperature:   service.Temperature(cfg.LLMTemperature),
		HistoryWindow: cfg.ChatHistoryWindow,
		Timeout:       cfg.LLMTimeout,
	}, logger)

	var (
		contactRepo repository.ContactRepository
		sender      email.Sender
		ping        func(ctx context.Context) error
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()

		repo := repository.NewPgContactRepository(pool)
		ctxSchema, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := repo.EnsureSchema(ctxSchema); err != nil {
			logger.Warn("contact schema init failed", zap.Error(err))
		}
		cancel()
		contactRepo = repo
		ping = func(ctx context.Context) error { return db.Ping(ctx, pool) }
	}

	if cfg.SMTPHost != "" {
		to := cfg.ContactTo
		if to == "" {
			to = store.Profile().Email
		}
		smtpSender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, to, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			sender = smtpSender
		}
	}
	if contactRepo == nil && sender == nil {
		logger.Warn("contact inbox not configured, submissions will only be logged")
	}
	contactSvc := service.NewContactService(logger, contactRepo, sender)

	router := apihttp.NewRouter(
		logger,
		apihttp.NewPortfolioHandler(logger, store),
		apihttp.NewChatHandler(logger, gateway),
		apihttp.NewContactHandler(logger, contactSvc),
		apihttp.NewHealthHandler(logger, ping),
		cfg.StaticDir,
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("llm_provider", cfg.LLMProvider),
		zap.Bool("static", cfg.StaticDir != ""),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
