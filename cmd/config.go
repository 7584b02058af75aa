package cmd

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config carries every externally tunable setting of the service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// CommissionRate is the platform's share of every order price.
	CommissionRate decimal.Decimal

	// CancellationWindow bounds how long a company may cancel an order
	// that a courier has already accepted.
	CancellationWindow time.Duration

	// IntegrationFlatPrice is the fixed price applied to orders from
	// geofence-exempt channels.
	IntegrationFlatPrice decimal.Decimal

	// GeofenceExemptSources lists the channel source tags that skip zone
	// resolution.
	GeofenceExemptSources []string

	// RedispatchSchedule is the cron expression of the stale-order sweep,
	// RedispatchMaxAge the pool waiting time that makes an order stale.
	RedispatchSchedule string
	RedispatchMaxAge   time.Duration

	// ReconciliationRebuildSchedule is the cron expression of the nightly
	// bucket rebuild.
	ReconciliationRebuildSchedule string
}
