package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/verdictlab/verdict/internal/domain"
)

// Load reads the .env file specified by VERDICT_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("VERDICT_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func MigrationsPath() string {
	p := os.Getenv("MIGRATIONS_PATH")
	if p == "" {
		return "migrations"
	}
	return p
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// Temporal returns the temporal literals for rule evaluation. Each date can
// be overridden with a yyyy-mm-dd env var; malformed or missing values fall
// back to the defaults.
func Temporal() domain.Temporal {
	t := domain.DefaultTemporal()
	t.DawnOfTime = dateEnv("DAWN_OF_TIME", t.DawnOfTime)
	t.AssessmentStart = dateEnv("ASSESSMENT_START", t.AssessmentStart)
	t.AssessmentEnd = dateEnv("ASSESSMENT_END", t.AssessmentEnd)
	t.Now = dateEnv("ASSESSMENT_NOW", t.Now)
	return t
}

func dateEnv(key string, fallback time.Time) time.Time {
	d, err := time.Parse("2006-01-02", os.Getenv(key))
	if err != nil {
		return fallback
	}
	return d
}
