package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string      `yaml:"env" env:"ENV" env-default:"local"`
	StoragePath string      `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`
	HTTP        HTTPConfig  `yaml:"http"`
	Auth        AuthConfig  `yaml:"auth"`
	Email       EmailConfig `yaml:"email"`
	Cron        CronConfig  `yaml:"cron"`
	// FreezeEligibilityAtOpen makes pass/quorum math use the eligible-voter
	// count recorded when a ballot opened instead of a live count, so later
	// voter-list edits stop moving the goalposts.
	FreezeEligibilityAtOpen bool `yaml:"freeze_eligibility_at_open" env:"FREEZE_ELIGIBILITY_AT_OPEN" env-default:"false"`
}

type HTTPConfig struct {
	Port int `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
}

type EmailConfig struct {
	ResendAPIKey string `yaml:"resend_api_key" env:"RESEND_API_KEY"`
	FromAddress  string `yaml:"from_address" env:"EMAIL_FROM" env-default:"Vote <noreply@localhost>"`
	AppURL       string `yaml:"app_url" env:"PUBLIC_APP_URL" env-default:"http://localhost:8080"`
}

type CronConfig struct {
	Secret string `yaml:"secret" env:"CRON_SECRET"`
	// Interval of the in-process trigger; zero disables it, leaving the
	// HTTP endpoint as the only trigger.
	Interval             time.Duration `yaml:"interval" env:"CRON_INTERVAL" env-default:"0"`
	OpenReminderMinutes  int           `yaml:"open_reminder_minutes" env:"OPEN_REMINDER_MINUTES" env-default:"15"`
	CloseReminderMinutes int           `yaml:"close_reminder_minutes" env:"CLOSE_REMINDER_MINUTES" env-default:"15"`
	BatchSize            int           `yaml:"batch_size" env:"BATCH_SIZE" env-default:"50"`
	MaxIterations        int           `yaml:"max_iterations" env:"MAX_ITERATIONS" env-default:"10"`
	DryRun               bool          `yaml:"dry_run" env:"DRY_RUN" env-default:"false"`
}

func Load(path string) *Config {
	var config Config
	err := cleanenv.ReadConfig(path, &config)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &config
}
