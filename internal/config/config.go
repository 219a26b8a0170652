package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	YouTube       YouTube       `mapstructure:",squash"`
	Quota         Quota         `mapstructure:",squash"`
	IngestionSync IngestionSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	// zero MaxOpenConns is sized from the ingestion concurrency
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"database_conn_max_idle_time"`
}

// sizePool fills MaxOpenConns from the number of concurrent ingestion jobs.
// Each job can hold one connection for a quota reservation and one for an
// upsert transaction, plus headroom for the admin API.
func (d *Database) sizePool(maxConcurrentJobs int) {
	if d.MaxOpenConns <= 0 {
		if maxConcurrentJobs < 1 {
			maxConcurrentJobs = 1
		}
		d.MaxOpenConns = maxConcurrentJobs*2 + 4
	}
	if d.MaxIdleConns <= 0 || d.MaxIdleConns > d.MaxOpenConns {
		d.MaxIdleConns = d.MaxOpenConns / 2
	}
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// YouTube configures the Data API v3 client. Keys are not configured here:
// they live in google_api_keys and rotate through the quota ledger.
type YouTube struct {
	BaseURL           string        `mapstructure:"youtube_base_url"`
	MaxResults        int64         `mapstructure:"youtube_max_results"`
	RequestTimeout    time.Duration `mapstructure:"youtube_request_timeout"`
	RequestsPerSecond float64       `mapstructure:"youtube_requests_per_second"`
}

// Quota holds the cost model used when reserving quota for a remote call.
type Quota struct {
	DefaultLimit       int `mapstructure:"quota_default_limit"`
	SearchCost         int `mapstructure:"quota_search_cost"`
	VideoCostPerItem   int `mapstructure:"quota_video_cost_per_item"`
	ChannelCostPerItem int `mapstructure:"quota_channel_cost_per_item"`
	ReserveAttempts    int `mapstructure:"quota_reserve_attempts"`
}

type IngestionSync struct {
	CronSchedule      string        `mapstructure:"ingestion_sync_cron"`
	Enabled           bool          `mapstructure:"ingestion_sync_enabled"`
	KeywordItemCap    int           `mapstructure:"ingestion_keyword_item_cap"`
	MaxConcurrentJobs int           `mapstructure:"ingestion_max_concurrent_jobs"`
	CallTimeout       time.Duration `mapstructure:"ingestion_call_timeout"`
	RunTimeout        time.Duration `mapstructure:"ingestion_run_timeout"`
	ChannelBatchSize  int           `mapstructure:"ingestion_channel_batch_size"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/youtube?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 0)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 0)
	viper.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("YOUTUBE_BASE_URL", "https://youtube.googleapis.com/")
	viper.SetDefault("YOUTUBE_MAX_RESULTS", 50) // maximum allowed by search.list
	viper.SetDefault("YOUTUBE_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("YOUTUBE_REQUESTS_PER_SECOND", 5)

	viper.SetDefault("QUOTA_DEFAULT_LIMIT", 10000) // daily units granted per key
	viper.SetDefault("QUOTA_SEARCH_COST", 100)
	viper.SetDefault("QUOTA_VIDEO_COST_PER_ITEM", 1)
	viper.SetDefault("QUOTA_CHANNEL_COST_PER_ITEM", 1)
	viper.SetDefault("QUOTA_RESERVE_ATTEMPTS", 3)

	viper.SetDefault("INGESTION_SYNC_CRON", "0 2 * * *") // every day at 2am
	viper.SetDefault("INGESTION_SYNC_ENABLED", false)
	viper.SetDefault("INGESTION_KEYWORD_ITEM_CAP", 500)
	viper.SetDefault("INGESTION_MAX_CONCURRENT_JOBS", 4)
	viper.SetDefault("INGESTION_CALL_TIMEOUT", "30s")
	viper.SetDefault("INGESTION_RUN_TIMEOUT", "2h")
	viper.SetDefault("INGESTION_CHANNEL_BATCH_SIZE", 50)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)
	config.Database.sizePool(config.IngestionSync.MaxConcurrentJobs)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not get the working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Trying to load .env from: ", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Warn("No .env file found in any known location")
}
