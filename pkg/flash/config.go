package flash

import (
	"errors"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the defaults a Notifier applies to the bags it creates.
// Fields can be populated from environment variables via LoadConfig.
type Config struct {
	// DefaultContainer is the bag used by the convenience shortcuts.
	DefaultContainer string `env:"FLASH_DEFAULT_CONTAINER" envDefault:"default"`
	// DefaultFormat is the global render format applied when neither the
	// message nor its type carries one. Empty means DefaultFormat constant.
	DefaultFormat string `env:"FLASH_DEFAULT_FORMAT"`
	// KeyPrefix is prepended to the container name to build the store key.
	KeyPrefix string `env:"FLASH_KEY_PREFIX" envDefault:"notifications_"`
	// FlashTTL bounds how long unread payloads survive in TTL-aware stores.
	FlashTTL time.Duration `env:"FLASH_TTL" envDefault:"15m"`
	// CookieName identifies the cookie carrying the per-visitor flash scope
	// set by the HTTP middleware.
	CookieName string `env:"FLASH_COOKIE_NAME" envDefault:"flash_scope"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		DefaultContainer: "default",
		DefaultFormat:    DefaultFormat,
		KeyPrefix:        "notifications_",
		FlashTTL:         DefaultFlashTTL,
		CookieName:       "flash_scope",
	}
}

// LoadConfig populates a Config from environment variables, loading the
// default .env file first when present.
func LoadConfig() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = DefaultFormat
	}

	return cfg, nil
}

// FormatsCatchAll is the FormatMap key consulted when a container has no
// entry of its own.
const FormatsCatchAll = "__"

// FormatMap maps a container name, or the FormatsCatchAll key, to per-type
// default render formats.
type FormatMap map[string]map[Type]string

// ForContainer resolves the per-type defaults for a container, falling back
// to the catch-all entry. The result is nil when neither exists.
func (f FormatMap) ForContainer(name string) map[Type]string {
	if formats, ok := f[name]; ok {
		return formats
	}
	return f[FormatsCatchAll]
}

// FormatsFromYAML decodes a FormatMap from a YAML document of the shape:
//
//	default:
//	  error: '<p class="error">:message</p>'
//	__:
//	  info: ':message'
func FormatsFromYAML(r io.Reader) (FormatMap, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidFormats, err)
	}

	var formats FormatMap
	if err := yaml.Unmarshal(raw, &formats); err != nil {
		return nil, errors.Join(ErrInvalidFormats, err)
	}

	return formats, nil
}
