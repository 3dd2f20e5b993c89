package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/firehose"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-data-ingestor/internal/api/http"
	"github.com/i474232898/weather-data-ingestor/internal/config"
	"github.com/i474232898/weather-data-ingestor/internal/ingestor"
	"github.com/i474232898/weather-data-ingestor/internal/scheduler"
	"github.com/i474232898/weather-data-ingestor/internal/secrets"
	"github.com/i474232898/weather-data-ingestor/internal/sink"
	"github.com/i474232898/weather-data-ingestor/internal/weather"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	handler, err := buildHandler(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to build handler", "err", err)
		os.Exit(1)
	}

	// Under the Lambda runtime the handler is the whole program; anywhere
	// else we expose a local trigger endpoint and an optional schedule.
	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		lambda.Start(handler.Handle)
		return
	}

	runLocal(cfg, handler, log)
}

// buildHandler wires the collaborators: secret resolver, provider client,
// sink, orchestrator. The AWS config is only loaded when an AWS-backed
// collaborator is actually in play.
func buildHandler(ctx context.Context, cfg *config.AppConfig, log *slog.Logger) (*ingestor.Handler, error) {
	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	needsAWS := cfg.LocalSink != "memory" || cfg.SecretName != ""

	var (
		secretsClient  secrets.SecretsAPI
		firehoseClient sink.FirehoseAPI
	)

	if needsAWS {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		secretsClient = secretsmanager.NewFromConfig(awsCfg)
		firehoseClient = firehose.NewFromConfig(awsCfg)
	}

	resolver := secrets.NewResolver(secretsClient, cfg.SecretName, cfg.APIKey, log)
	provider := weather.NewClient(httpClient, cfg.WeatherAPIURL)

	var recordSink sink.Sink
	if cfg.LocalSink == "memory" {
		log.Info("using in-memory sink")
		recordSink = sink.NewMemorySink()
	} else {
		recordSink = sink.NewFirehosePublisher(firehoseClient, cfg.DeliveryStreamName)
	}

	return ingestor.NewHandler(resolver, provider, recordSink, cfg.DefaultCity, log), nil
}

func runLocal(cfg *config.AppConfig, handler *ingestor.Handler, log *slog.Logger) {
	sched := scheduler.New(handler, cfg.IngestInterval, log)
	if err := sched.Start(); err != nil {
		log.Error("failed to start scheduler", "err", err)
		os.Exit(1)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-data-ingestor",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-data-ingestor",
		})
	})

	httpapi.RegisterRoutes(app, handler)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("fiber server stopped", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("error during shutdown", "err", err)
	}
}
