package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/cmd"
	httpin "github.com/hodoxnet/kuryemburada-sub000/internal/adapters/in/http"
	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/arearepo"
	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/companyrepo"
	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/courierrepo"
	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/ledgerrepo"
	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/pricingrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgres.Open(dsn(configs)), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "dispatch"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		CommissionRate:        decimalEnv("COMMISSION_RATE", "0.15"),
		CancellationWindow:    minutesEnv("CANCELLATION_WINDOW_MINUTES", 5),
		IntegrationFlatPrice:  decimalEnv("INTEGRATION_FLAT_PRICE", "49.90"),
		GeofenceExemptSources: splitEnv("GEOFENCE_EXEMPT_SOURCES"),

		RedispatchSchedule:            envOr("REDISPATCH_SCHEDULE", "0 * * * * *"),
		RedispatchMaxAge:              minutesEnv("REDISPATCH_MAX_AGE_MINUTES", 10),
		ReconciliationRebuildSchedule: envOr("RECONCILIATION_REBUILD_SCHEDULE", "0 15 0 * * *"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func decimalEnv(key, fallback string) decimal.Decimal {
	v, err := decimal.NewFromString(envOr(key, fallback))
	if err != nil {
		log.Fatalf("Invalid decimal in %s: %v", key, err)
	}
	return v
}

func minutesEnv(key string, fallback int) time.Duration {
	raw := envOr(key, strconv.Itoa(fallback))
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer in %s: %v", key, err)
	}
	return time.Duration(minutes) * time.Minute
}

func splitEnv(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func dsn(c cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&courierrepo.CourierDTO{},
		&companyrepo.CompanyDTO{},
		&arearepo.ServiceAreaDTO{},
		&pricingrepo.RuleDTO{},
		&ledgerrepo.CompanyBalanceDTO{},
		&ledgerrepo.DailyReconciliationDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAcceptOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRateOrderCommandHandler(),
		app.CreateRequestCouriersCommandHandler(),
		app.CreateReviewOrderPricingCommandHandler(),
		app.CreateCompletePaymentCommandHandler(),
		app.CreateGetAvailableOrdersQueryHandler(),
		app.CreateGetCompanyBalanceQueryHandler(),
		app.CreateGetDailyReconciliationsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
