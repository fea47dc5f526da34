package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"cleanquote/models"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Property data sources.
	RentCastAPIKey          string `mapstructure:"RENTCAST_API_KEY"`
	RentCastBaseURL         string `mapstructure:"RENTCAST_BASE_URL"`
	ScraperSearchURL        string `mapstructure:"SCRAPER_SEARCH_URL"`
	ScraperUserAgent        string `mapstructure:"SCRAPER_USER_AGENT"`
	ScraperTimeoutSeconds   int    `mapstructure:"SCRAPER_TIMEOUT_SECONDS"`
	PropertyCacheTTLMinutes int    `mapstructure:"PROPERTY_CACHE_TTL_MINUTES"`

	// Checkout.
	StripeKey        string `mapstructure:"STRIPE_KEY"`
	PublicBaseURL    string `mapstructure:"PUBLIC_BASE_URL"`
	CheckoutCurrency string `mapstructure:"CHECKOUT_CURRENCY"`

	// Business calendar.
	WorkStartHour        int    `mapstructure:"WORK_START_HOUR"`
	WorkEndHour          int    `mapstructure:"WORK_END_HOUR"`
	WorkDays             string `mapstructure:"WORK_DAYS"`
	SearchHorizonDays    int    `mapstructure:"SEARCH_HORIZON_DAYS"`
	CalendarTimezone     string `mapstructure:"CALENDAR_TIMEZONE"`
	BookingRetentionDays int    `mapstructure:"BOOKING_RETENTION_DAYS"`
	ReminderLeadHours    int    `mapstructure:"REMINDER_LEAD_HOURS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "cleanquote")
	viper.SetDefault("RENTCAST_API_KEY", "")
	viper.SetDefault("RENTCAST_BASE_URL", "https://api.rentcast.io/v1")
	viper.SetDefault("SCRAPER_SEARCH_URL", "https://www.redfin.com/search?q=%s")
	viper.SetDefault("SCRAPER_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	viper.SetDefault("SCRAPER_TIMEOUT_SECONDS", 15)
	viper.SetDefault("PROPERTY_CACHE_TTL_MINUTES", 1440)
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("PUBLIC_BASE_URL", "")
	viper.SetDefault("CHECKOUT_CURRENCY", "usd")
	viper.SetDefault("WORK_START_HOUR", 9)
	viper.SetDefault("WORK_END_HOUR", 17)
	viper.SetDefault("WORK_DAYS", "1,2,3,4,5")
	viper.SetDefault("SEARCH_HORIZON_DAYS", 30)
	viper.SetDefault("CALENDAR_TIMEZONE", "UTC")
	viper.SetDefault("BOOKING_RETENTION_DAYS", 90)
	viper.SetDefault("REMINDER_LEAD_HOURS", 24)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// CalendarPolicy builds the business calendar policy from the loaded values.
func (c Config) CalendarPolicy() (models.BusinessCalendarPolicy, error) {
	loc, err := time.LoadLocation(c.CalendarTimezone)
	if err != nil {
		return models.BusinessCalendarPolicy{}, fmt.Errorf("invalid CALENDAR_TIMEZONE %q: %w", c.CalendarTimezone, err)
	}
	days, err := ParseWorkDays(c.WorkDays)
	if err != nil {
		return models.BusinessCalendarPolicy{}, err
	}
	policy := models.BusinessCalendarPolicy{
		WorkStartHour:     c.WorkStartHour,
		WorkEndHour:       c.WorkEndHour,
		WorkDays:          days,
		SearchHorizonDays: c.SearchHorizonDays,
		Location:          loc,
	}
	if err := policy.Validate(); err != nil {
		return models.BusinessCalendarPolicy{}, err
	}
	return policy, nil
}

// ParseWorkDays parses a comma separated list of weekday indices (0 = Sunday).
func ParseWorkDays(raw string) (map[time.Weekday]bool, error) {
	days := make(map[time.Weekday]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid WORK_DAYS entry %q", part)
		}
		days[time.Weekday(n)] = true
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("WORK_DAYS must name at least one weekday")
	}
	return days, nil
}

func (c Config) PropertyCacheTTL() time.Duration {
	return time.Duration(c.PropertyCacheTTLMinutes) * time.Minute
}

func (c Config) ScraperTimeout() time.Duration {
	return time.Duration(c.ScraperTimeoutSeconds) * time.Second
}
