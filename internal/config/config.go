package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable invalid")

const (
	apiPortEnvKey           = "API_PORT"
	vendingURLEnvKey        = "VENDING_API_URL"
	registryPathEnvKey      = "REGISTRY_PATH"
	snapshotPathEnvKey      = "SNAPSHOT_PATH"
	batchSizeEnvKey         = "COLLECT_BATCH_SIZE"
	batchDelayEnvKey        = "COLLECT_BATCH_DELAY"
	fetchTimeoutEnvKey      = "FETCH_TIMEOUT"
	fetchRPSEnvKey          = "FETCH_RPS"
	snapshotCacheTTLEnvKey  = "SNAPSHOT_CACHE_TTL"
	skipEmptyEnvKey         = "AGGREGATE_SKIP_EMPTY"
	mergeDuplicatesEnvKey   = "AGGREGATE_MERGE_DUPLICATES"
	collationLocaleEnvKey   = "COLLATION_LOCALE"
	logLevelEnvKey          = "LOG_LEVEL"
	defaultVendingURL       = "https://backend.dexrp.io"
	defaultRegistryPath     = "data/codes.json"
	defaultSnapshotPath     = "data/cached-transactions.json"
	defaultBatchSize        = 10
	defaultBatchDelay       = 2 * time.Second
	defaultFetchTimeout     = 30 * time.Second
	defaultSnapshotCacheTTL = time.Minute
	defaultCollationLocale  = "ko"
	defaultLogLevel         = "info"
)

type App struct {
	Port             string
	VendingURL       string
	RegistryPath     string
	SnapshotPath     string
	BatchSize        int
	BatchDelay       time.Duration
	FetchTimeout     time.Duration
	FetchRPS         float64
	SnapshotCacheTTL time.Duration
	SkipEmptyRows    bool
	MergeDuplicates  bool
	CollationLocale  string
	LogLevel         string
}

// NewApp loads an optional .env file and reads the environment. Only the API port is
// required, and only when requirePort is set.
func NewApp(requirePort bool) (App, error) {
	// a missing .env file is fine, the real environment still applies
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok && requirePort {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	batchSize, err := intEnv(batchSizeEnvKey, defaultBatchSize)
	if err != nil {
		return App{}, err
	}

	batchDelay, err := durationEnv(batchDelayEnvKey, defaultBatchDelay)
	if err != nil {
		return App{}, err
	}

	fetchTimeout, err := durationEnv(fetchTimeoutEnvKey, defaultFetchTimeout)
	if err != nil {
		return App{}, err
	}

	fetchRPS, err := floatEnv(fetchRPSEnvKey, 0)
	if err != nil {
		return App{}, err
	}

	cacheTTL, err := durationEnv(snapshotCacheTTLEnvKey, defaultSnapshotCacheTTL)
	if err != nil {
		return App{}, err
	}

	skipEmpty, err := boolEnv(skipEmptyEnvKey, false)
	if err != nil {
		return App{}, err
	}

	mergeDuplicates, err := boolEnv(mergeDuplicatesEnvKey, true)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:             port,
		VendingURL:       stringEnv(vendingURLEnvKey, defaultVendingURL),
		RegistryPath:     stringEnv(registryPathEnvKey, defaultRegistryPath),
		SnapshotPath:     stringEnv(snapshotPathEnvKey, defaultSnapshotPath),
		BatchSize:        batchSize,
		BatchDelay:       batchDelay,
		FetchTimeout:     fetchTimeout,
		FetchRPS:         fetchRPS,
		SnapshotCacheTTL: cacheTTL,
		SkipEmptyRows:    skipEmpty,
		MergeDuplicates:  mergeDuplicates,
		CollationLocale:  stringEnv(collationLocaleEnvKey, defaultCollationLocale),
		LogLevel:         stringEnv(logLevelEnvKey, defaultLogLevel),
	}, nil
}

func stringEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, value)
	}
	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, value)
	}
	return f, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, value)
	}
	return d, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, key, value)
	}
	return b, nil
}
