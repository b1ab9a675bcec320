package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	// database
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// http
	ServerPort int
	JWTSecret  string

	// blob store
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// redis (cache + task queue); empty addr disables both
	RedisAddr     string
	RedisPassword string

	// extraction pipeline
	FFmpegPath        string
	ThumbWidth        int
	ThumbMinSizeBytes int64
	ThumbOffsets      []float64
	ExtractTimeout    time.Duration
	WriteLegacyKeys   bool

	// circuit breaker on the serving read path
	BreakerThreshold   int
	BreakerCooldown    time.Duration
	BreakerCallTimeout time.Duration

	// repair scanner
	RepairRoots   []string
	RepairWorkers int
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	for _, key := range []string{
		"MARIADB_DSN",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"MINIO_BUCKET",
	} {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("MARIADB_MAX_OPEN_CONN", 10)
	viper.SetDefault("MARIADB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("MARIADB_CONN_MAX_LIFETIME", 300)
	viper.SetDefault("FFMPEG_PATH", "ffmpeg")
	viper.SetDefault("THUMB_WIDTH", 480)
	viper.SetDefault("THUMB_MIN_SIZE_BYTES", 1024)
	viper.SetDefault("EXTRACT_TIMEOUT_SECONDS", 30)
	viper.SetDefault("WRITE_LEGACY_KEYS", true)
	viper.SetDefault("BREAKER_THRESHOLD", 3)
	viper.SetDefault("BREAKER_COOLDOWN_SECONDS", 30)
	viper.SetDefault("BREAKER_CALL_TIMEOUT_MS", 800)
	viper.SetDefault("REPAIR_WORKERS", 4)

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,

		ServerPort: viper.GetInt("SERVER_PORT"),
		JWTSecret:  viper.GetString("JWT_SECRET"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		MinioBucket:    viper.GetString("MINIO_BUCKET"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		FFmpegPath:        viper.GetString("FFMPEG_PATH"),
		ThumbWidth:        viper.GetInt("THUMB_WIDTH"),
		ThumbMinSizeBytes: viper.GetInt64("THUMB_MIN_SIZE_BYTES"),
		ThumbOffsets:      parseOffsets(viper.GetString("THUMB_OFFSETS")),
		ExtractTimeout:    time.Duration(viper.GetInt("EXTRACT_TIMEOUT_SECONDS")) * time.Second,
		WriteLegacyKeys:   viper.GetBool("WRITE_LEGACY_KEYS"),

		BreakerThreshold:   viper.GetInt("BREAKER_THRESHOLD"),
		BreakerCooldown:    time.Duration(viper.GetInt("BREAKER_COOLDOWN_SECONDS")) * time.Second,
		BreakerCallTimeout: time.Duration(viper.GetInt("BREAKER_CALL_TIMEOUT_MS")) * time.Millisecond,

		RepairRoots:   splitList(viper.GetString("REPAIR_ROOTS")),
		RepairWorkers: viper.GetInt("REPAIR_WORKERS"),
	}, nil
}

// parseOffsets reads a comma-separated list of seconds, e.g. "1,2,0.5,3,0.1".
// An empty or malformed value falls back to the pipeline's default sequence.
func parseOffsets(raw string) []float64 {
	if raw == "" {
		return nil
	}
	var out []float64
	for _, part := range strings.Split(raw, ",") {
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(part), "%g", &f); err != nil || f < 0 {
			log.Printf("Warning: ignoring malformed THUMB_OFFSETS value %q", raw)
			return nil
		}
		out = append(out, f)
	}
	return out
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
