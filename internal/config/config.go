package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultCategories is the allowed cost category set used when CATEGORIES is unset.
var DefaultCategories = []string{"food", "health", "housing", "sports", "education"}

// DefaultReportOrder is the order categories appear in monthly reports.
var DefaultReportOrder = []string{"food", "education", "health", "housing", "sports"}

// TeamMember is a single entry of the /api/about listing.
type TeamMember struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Config holds application configuration
type Config struct {
	// Server
	Env      string
	Port     string
	LogLevel string
	GinMode  string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Costs and reports
	Categories    []string
	ReportOrder   []string
	Location      *time.Location
	CreatedAtSkew time.Duration

	Team []TeamMember
}

var appConfig *Config

// Load loads configuration from the environment, reading .env first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	config, err := fromViper(v)
	if err != nil {
		return nil, err
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "costmanager")
	v.SetDefault("DB_PASSWORD", "costmanager")
	v.SetDefault("DB_NAME", "costmanager")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "data/costmanager.db")

	v.SetDefault("CATEGORIES", strings.Join(DefaultCategories, ","))
	v.SetDefault("REPORT_CATEGORY_ORDER", strings.Join(DefaultReportOrder, ","))
	v.SetDefault("REPORT_TIMEZONE", "UTC")
	v.SetDefault("COST_CREATED_AT_SKEW", "5s")
	v.SetDefault("TEAM_MEMBERS", "Emil Davidov;Dor Cohen")
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		Env:      v.GetString("ENV"),
		Port:     v.GetString("PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),
		GinMode:  v.GetString("GIN_MODE"),

		DBDriver:   strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),
		DBPath:     v.GetString("DB_PATH"),

		Team: ParseTeam(v.GetString("TEAM_MEMBERS")),
	}

	config.Categories = SplitList(v.GetString("CATEGORIES"))
	if len(config.Categories) == 0 {
		config.Categories = DefaultCategories
	}
	config.ReportOrder = ResolveReportOrder(SplitList(v.GetString("REPORT_CATEGORY_ORDER")), config.Categories)

	loc, err := time.LoadLocation(v.GetString("REPORT_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE: %w", err)
	}
	config.Location = loc

	skewStr := v.GetString("COST_CREATED_AT_SKEW")
	skew, err := time.ParseDuration(skewStr)
	if err != nil || skew < 0 {
		log.Printf("Warning: invalid COST_CREATED_AT_SKEW value '%s', falling back to 5s\n", skewStr)
		skew = 5 * time.Second
	}
	config.CreatedAtSkew = skew

	return config, nil
}

// SplitList splits a comma separated list, trimming blanks and dropping duplicates.
func SplitList(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}

// ResolveReportOrder keeps the configured order restricted to allowed
// categories and appends allowed categories the order does not mention.
func ResolveReportOrder(order, allowed []string) []string {
	isAllowed := make(map[string]bool, len(allowed))
	for _, c := range allowed {
		isAllowed[c] = true
	}

	resolved := make([]string, 0, len(allowed))
	placed := make(map[string]bool, len(allowed))
	for _, c := range order {
		if isAllowed[c] && !placed[c] {
			resolved = append(resolved, c)
			placed[c] = true
		}
	}
	for _, c := range allowed {
		if !placed[c] {
			resolved = append(resolved, c)
			placed[c] = true
		}
	}
	return resolved
}

// ParseTeam parses "First Last;First Last" into team members.
func ParseTeam(s string) []TeamMember {
	var team []TeamMember
	for _, entry := range strings.Split(s, ";") {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			continue
		}
		member := TeamMember{FirstName: fields[0]}
		if len(fields) > 1 {
			member.LastName = strings.Join(fields[1:], " ")
		}
		team = append(team, member)
	}
	return team
}
