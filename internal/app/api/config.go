package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/sdk/client"

	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/domains/procurement/domain"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/auth"
	"github.com/Ahamed-Rahman/ZenoFuelStation-ITP-sub000/internal/platform/messaging/rabbitmq"
)

const (
	defaultTokenTTL         = 12 * time.Hour
	defaultSupplierCacheTTL = 5 * time.Minute
)

// Config carries environment-driven settings shared by the station processes.
type Config struct {
	Port              string
	PostgresDSN       string
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
	JWTSecret         string
	TokenTTL          time.Duration
	AMQPURL           string
	AMQPExchange      string
	RedisAddr         string
	SupplierCacheTTL  time.Duration
	Policies          domain.Policies
	AdminEmail        string
	AdminPassword     string
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		JWTSecret:         strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTL:          defaultTokenTTL,
		AMQPURL:           strings.TrimSpace(os.Getenv("AMQP_URL")),
		AMQPExchange:      envDefault("AMQP_EXCHANGE", rabbitmq.DefaultExchange),
		RedisAddr:         strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		SupplierCacheTTL:  defaultSupplierCacheTTL,
		Policies:          domain.DefaultPolicies(),
		AdminEmail:        strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
	}
	if len(cfg.JWTSecret) < auth.MinSecretLength {
		return Config{}, fmt.Errorf("JWT_SECRET must be set and at least %d characters", auth.MinSecretLength)
	}
	hours, err := positiveInt("TOKEN_TTL_HOURS")
	if err != nil {
		return Config{}, err
	}
	if hours > 0 {
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}
	seconds, err := positiveInt("SUPPLIER_CACHE_TTL_SECONDS")
	if err != nil {
		return Config{}, err
	}
	if seconds > 0 {
		cfg.SupplierCacheTTL = time.Duration(seconds) * time.Second
	}
	if err := applyKindPolicy(cfg.Policies, domain.KindFuel, "FUEL"); err != nil {
		return Config{}, err
	}
	if err := applyKindPolicy(cfg.Policies, domain.KindShop, "SHOP"); err != nil {
		return Config{}, err
	}
	if (cfg.AdminEmail == "") != (cfg.AdminPassword == "") {
		return Config{}, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}
	return cfg, nil
}

// applyKindPolicy overrides one kind's stock rules from <PREFIX>_LOW_STOCK_THRESHOLD
// and <PREFIX>_RECONCILE_POLICY.
func applyKindPolicy(policies domain.Policies, kind domain.ItemKind, prefix string) error {
	policy := policies.For(kind)
	if raw := strings.TrimSpace(os.Getenv(prefix + "_LOW_STOCK_THRESHOLD")); raw != "" {
		threshold, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || threshold < 0 {
			return fmt.Errorf("%s_LOW_STOCK_THRESHOLD must be a non-negative integer", prefix)
		}
		policy.LowStockThreshold = threshold
	}
	if raw := strings.TrimSpace(os.Getenv(prefix + "_RECONCILE_POLICY")); raw != "" {
		reconcile, err := domain.ParseReconcilePolicy(raw)
		if err != nil {
			return fmt.Errorf("%s_RECONCILE_POLICY: %w", prefix, err)
		}
		policy.Reconcile = reconcile
	}
	policies[kind] = policy
	return nil
}

// positiveInt returns 0 when key is unset.
func positiveInt(key string) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return value, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
