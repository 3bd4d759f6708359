// Package config resolves the effective CLI settings from viper (flags, config file,
// DATAIDEA_* environment) and validates them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dataidea/dataidea-cli/internal/apperr"
	"github.com/dataidea/dataidea-cli/internal/catalog"
	"github.com/dataidea/dataidea-cli/internal/fetcher"
)

// Viper keys shared by the root command and Resolve.
const (
	KeyAPIURL        = "api-url"
	KeyCoursesURL    = "courses-url"
	KeyTimeout       = "timeout"
	KeyLogLevel      = "log-level"
	KeyOutput        = "output"
	KeyAnalyticsFile = "analytics-file"
	KeyPageSize      = "page-size"
	KeyUserAgent     = "user-agent"
)

// Settings are the validated global options.
type Settings struct {
	APIURL        string        `validate:"required,url"`
	CoursesURL    string        `validate:"required,url"`
	Timeout       time.Duration `validate:"gte=0"`
	LogLevel      string        `validate:"oneof=quiet standard debug"`
	Output        string        `validate:"oneof=text json yaml"`
	AnalyticsFile string
	PageSize      int `validate:"gte=1,lte=100"`
	UserAgent     string
}

// Quiet reports whether UI output is suppressed.
func (s *Settings) Quiet() bool { return s.LogLevel == "quiet" }

// Debug reports whether package loggers should write to stderr.
func (s *Settings) Debug() bool { return s.LogLevel == "debug" }

var validate = validator.New()

// SetDefaults registers the fallback values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIURL, fetcher.DefaultBaseURL)
	v.SetDefault(KeyCoursesURL, fetcher.DefaultCoursesBaseURL)
	v.SetDefault(KeyTimeout, 0)
	v.SetDefault(KeyLogLevel, "standard")
	v.SetDefault(KeyOutput, "text")
	v.SetDefault(KeyPageSize, catalog.DefaultPageSize)
	v.SetDefault(KeyUserAgent, fetcher.DefaultUserAgent)
}

// Resolve reads the settings from v. The timeout is configured in seconds.
func Resolve(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		APIURL:        strings.TrimSpace(v.GetString(KeyAPIURL)),
		CoursesURL:    strings.TrimSpace(v.GetString(KeyCoursesURL)),
		Timeout:       time.Duration(v.GetInt(KeyTimeout)) * time.Second,
		LogLevel:      strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		Output:        strings.ToLower(strings.TrimSpace(v.GetString(KeyOutput))),
		AnalyticsFile: strings.TrimSpace(v.GetString(KeyAnalyticsFile)),
		PageSize:      v.GetInt(KeyPageSize),
		UserAgent:     strings.TrimSpace(v.GetString(KeyUserAgent)),
	}
	if s.APIURL == "" {
		s.APIURL = fetcher.DefaultBaseURL
	}
	if s.CoursesURL == "" {
		s.CoursesURL = fetcher.DefaultCoursesBaseURL
	}
	if s.LogLevel == "" {
		s.LogLevel = "standard"
	}
	if s.Output == "" {
		s.Output = "text"
	}
	if s.PageSize == 0 {
		s.PageSize = catalog.DefaultPageSize
	}

	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return nil, apperr.User(strings.Join(msgs, "; "))
		}
		return nil, err
	}
	return s, nil
}

func describe(fe validator.FieldError) string {
	flag := map[string]string{
		"APIURL":     KeyAPIURL,
		"CoursesURL": KeyCoursesURL,
		"Timeout":    KeyTimeout,
		"LogLevel":   KeyLogLevel,
		"Output":     KeyOutput,
		"PageSize":   KeyPageSize,
	}[fe.Field()]
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("invalid --%s %q (expected %s)", flag, fe.Value(), strings.ReplaceAll(fe.Param(), " ", "|"))
	case "url", "required":
		return fmt.Sprintf("invalid --%s %q (expected an absolute URL)", flag, fe.Value())
	default:
		return fmt.Sprintf("invalid --%s %v (%s %s)", flag, fe.Value(), fe.Tag(), fe.Param())
	}
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" when none) into the
// process environment. Missing files are skipped; existing variables win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}
