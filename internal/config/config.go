package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServiceName string
	HTTPAddr    string
	ObsHTTPAddr string
	InstanceID  string
	LogLevel    string

	InventoryProducts int

	MetricsEnabled   bool
	MetricsSink      string
	MetricsNamespace string
	MetricsTimeout   time.Duration
	AWSRegion        string
	KafkaBrokers     []string
	MetricsTopic     string

	TracingEnabled bool
	JaegerURL      string
	TraceSegment   string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	ShutdownTimeout time.Duration
}

// Load reads the backend configuration from the environment.
func Load() *Config {
	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "ecomm-backend"),
		HTTPAddr:    fixPort(getEnv("HTTP_ADDR", getEnv("PORT", ":80"))),
		ObsHTTPAddr: fixPort(getEnv("OBS_HTTP_ADDR", ":9090")),
		InstanceID:  getEnv("INSTANCE_ID", getEnv("HOSTNAME", "")),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		InventoryProducts: getEnvInt("INVENTORY_PRODUCTS", 10000),

		MetricsEnabled:   getEnvBool("METRICS_ENABLED", false),
		MetricsSink:      strings.ToLower(getEnv("METRICS_SINK", "cloudwatch")),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "EcommMetrics"),
		MetricsTimeout:   getEnvDuration("METRICS_TIMEOUT", 5*time.Second),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		KafkaBrokers:     getEnvList("KAFKA_BROKERS", "localhost:9092"),
		MetricsTopic:     getEnv("METRICS_TOPIC", "metric-samples"),

		TracingEnabled: getEnvBool("TRACING_ENABLED", false),
		JaegerURL:      getEnv("JAEGER_URL", "http://localhost:14268/api/traces"),
		TraceSegment:   getEnv("TRACE_SEGMENT", "EcommBackend"),

		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 0),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),

		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// LoadFrontend reads the configuration of the frontend health server.
func LoadFrontend() *Config {
	return &Config{
		ServiceName:     getEnv("SERVICE_NAME", "ecomm-frontend"),
		HTTPAddr:        fixPort(getEnv("HTTP_ADDR", getEnv("PORT", ":80"))),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func fixPort(port string) string {
	if port != "" && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvList splits a comma separated value, dropping blanks around and
// between elements.
func getEnvList(key, fallback string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, fallback), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v == "true"
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
