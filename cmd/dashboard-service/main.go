package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"golang-stock-sentiment/internal/dashboard/config"
	delivery "golang-stock-sentiment/internal/dashboard/delivery/http"
	"golang-stock-sentiment/internal/dashboard/repository"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the sentiment dashboard",
	Run:   runServe,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze TICKER",
	Short: "Runs the sentiment pipeline once and prints the result",
	Args:  cobra.ExactArgs(1),
	Run:   runAnalyze,
}

// app bundles what both commands build from the configuration.
type app struct {
	cfg       *config.Config
	logger    *logger.Logger
	service   service.SentimentService
	modelName string
}

func bootstrap(ctx context.Context) *app {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	loc, err := utils.LoadLocation(cfg.Scraper.TimeZone)
	if err != nil {
		appLogger.Fatal("Invalid scraper time zone", logger.ErrorField(err))
	}

	analyzer, modelName, err := newAnalyzer(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize sentiment analyzer", logger.ErrorField(err), logger.StringField("provider", cfg.Sentiment.Provider))
	}

	newsRepo := repository.NewFinvizRepository(cfg, appLogger)
	sentimentSvc := service.NewSentimentService(cfg, appLogger, newsRepo, analyzer, loc)

	return &app{cfg: cfg, logger: appLogger, service: sentimentSvc, modelName: modelName}
}

// newAnalyzer loads the configured sentiment model once for the process.
func newAnalyzer(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) (repository.SentimentAnalyzer, string, error) {
	switch cfg.Sentiment.Provider {
	case "", common.SentimentProviderVader:
		analyzer, err := repository.NewVaderAnalyzer()
		return analyzer, "VADER", err
	case common.SentimentProviderGemini:
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Sentiment.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		analyzer, err := repository.NewGeminiAnalyzer(cfg, appLogger, genAiClient)
		return analyzer, "Gemini " + cfg.Sentiment.Gemini.Model, err
	default:
		return nil, "", fmt.Errorf("unknown sentiment provider %q", cfg.Sentiment.Provider)
	}
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := bootstrap(ctx)
	defer func() { _ = a.logger.Sync() }()

	a.logger.Info("Starting Dashboard Service",
		logger.Field("name", a.cfg.App.Name),
		logger.StringField("sentiment_model", a.modelName),
	)

	renderer, err := delivery.NewTemplateRenderer()
	if err != nil {
		a.logger.Fatal("Failed to initialize templates", logger.ErrorField(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())

	dashboardHandler := delivery.NewDashboardHandler(a.service, a.logger, a.modelName)
	dashboardHandler.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf("%s:%d", a.cfg.API.Host, a.cfg.API.Port)
		a.logger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	a.logger.Info("Shutting down server...")

	shutdownTimeout, err := time.ParseDuration(a.cfg.API.ShutdownTimeout)
	if err != nil {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		a.logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	a.logger.Info("Server exiting")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := bootstrap(ctx)
	defer func() { _ = a.logger.Sync() }()

	report, err := a.service.Analyze(ctx, args[0])
	if err != nil {
		a.logger.Error("Sentiment analysis failed", logger.ErrorField(err))
		fmt.Fprintln(os.Stderr, common.InvalidTickerMessage)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "datetime\theadline\tneg\tneu\tpos\tsentiment_score")
	for _, h := range report.Headlines {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%.3f\t%.4f\n",
			h.Timestamp.Format("2006-01-02 15:04"), h.Headline, h.Negative, h.Neutral, h.Positive, h.SentimentScore)
	}
	_ = w.Flush()

	fmt.Printf("\n%s\n", service.ChartTitle(report.Ticker, entity.WindowHour))
	for _, b := range report.Hourly {
		fmt.Printf("  %s  n=%d  %.4f\n", b.PeriodStart.Format("2006-01-02 15:04"), b.Count, b.SentimentScore)
	}
	fmt.Printf("\n%s\n", service.ChartTitle(report.Ticker, entity.WindowDay))
	for _, b := range report.Daily {
		fmt.Printf("  %s  n=%d  %.4f\n", b.PeriodStart.Format("2006-01-02"), b.Count, b.SentimentScore)
	}
}

func main() {
	rootCmd := &cobra.Command{Use: "dashboard-service"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, analyzeCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing dashboard-service CLI: %s\n", err)
		os.Exit(1)
	}
}
