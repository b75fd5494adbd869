// Package config loads site settings from an optional YAML file and the
// environment. Environment values win over the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/johnretsas/portfolio/internal/scroll"
	"github.com/johnretsas/portfolio/internal/site"
)

// DefaultPath is read when no --config flag is given. It may be missing.
const DefaultPath = "site.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// UnknownPostPolicy decides what /blog/{identifier} shows for an identifier
// that has no post.
type UnknownPostPolicy string

const (
	// UnknownPostNotFound renders the not-found page with status 404.
	UnknownPostNotFound UnknownPostPolicy = "not-found"
	// UnknownPostEmpty renders an empty post view with status 200.
	UnknownPostEmpty UnknownPostPolicy = "empty"
)

type Config struct {
	Site   Site   `yaml:"site"`
	Server Server `yaml:"server"`
	Export Export `yaml:"export"`
	Blog   Blog   `yaml:"blog"`
	Dev    Dev    `yaml:"dev"`
}

type Site struct {
	Title         string `yaml:"title"`
	Author        string `yaml:"author"`
	Email         string `yaml:"email"`
	BasePath      string `yaml:"base_path"`
	AssetPrefix   string `yaml:"asset_prefix"`
	TrailingSlash bool   `yaml:"trailing_slash"`
}

type Server struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Mode is a gin mode; empty leaves GIN_MODE in charge.
	Mode string `yaml:"mode"`
}

type Export struct {
	OutDir string `yaml:"out_dir"`
}

type Blog struct {
	UnknownPost     UnknownPostPolicy `yaml:"unknown_post"`
	ScrollThreshold int               `yaml:"scroll_threshold"`
}

type Dev struct {
	TemplatesDir string        `yaml:"templates_dir"`
	StaticDir    string        `yaml:"static_dir"`
	Debounce     time.Duration `yaml:"debounce"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Site: Site{
			Title:         "John Retsas",
			Author:        "John",
			Email:         "joretsas@gmail.com",
			TrailingSlash: true,
		},
		Server: Server{
			Port: 8080,
		},
		Export: Export{
			OutDir: "out",
		},
		Blog: Blog{
			UnknownPost:     UnknownPostNotFound,
			ScrollThreshold: scroll.DefaultThreshold,
		},
		Dev: Dev{
			TemplatesDir: "web/templates",
			StaticDir:    "web/static",
			Debounce:     100 * time.Millisecond,
		},
	}
}

// Load reads path over the defaults, applies the environment and validates
// the result. A missing DefaultPath is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := cfg.decode(data); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides settings from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, key, v)
		}
		*dst = n
		return nil
	}

	str("HOST", &c.Server.Host)
	if err := num("PORT", &c.Server.Port); err != nil {
		return err
	}
	str("SITE_BASE_PATH", &c.Site.BasePath)
	str("SITE_ASSET_PREFIX", &c.Site.AssetPrefix)
	str("SITE_OUT_DIR", &c.Export.OutDir)
	if v, ok := lookup("SITE_TRAILING_SLASH"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: SITE_TRAILING_SLASH=%q is not a boolean", ErrInvalid, v)
		}
		c.Site.TrailingSlash = b
	}
	if v, ok := lookup("BLOG_UNKNOWN_POST"); ok && v != "" {
		c.Blog.UnknownPost = UnknownPostPolicy(v)
	}
	return num("SCROLL_THRESHOLD", &c.Blog.ScrollThreshold)
}

// Validate checks that the settings can be served.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalid, c.Server.Port)
	}
	switch c.Server.Mode {
	case "", gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("%w: mode must be %q, %q or %q, got %q",
			ErrInvalid, gin.DebugMode, gin.ReleaseMode, gin.TestMode, c.Server.Mode)
	}
	switch c.Blog.UnknownPost {
	case UnknownPostNotFound, UnknownPostEmpty:
	default:
		return fmt.Errorf("%w: unknown_post must be %q or %q, got %q",
			ErrInvalid, UnknownPostNotFound, UnknownPostEmpty, c.Blog.UnknownPost)
	}
	if c.Blog.ScrollThreshold <= 0 {
		return fmt.Errorf("%w: scroll_threshold must be positive, got %d", ErrInvalid, c.Blog.ScrollThreshold)
	}
	if c.Site.BasePath != "" && !strings.HasPrefix(c.Site.BasePath, "/") {
		return fmt.Errorf("%w: base_path %q must start with /", ErrInvalid, c.Site.BasePath)
	}
	if c.Export.OutDir == "" {
		return fmt.Errorf("%w: out_dir is empty", ErrInvalid)
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// URLs returns the link builder for the configured deployment.
func (c *Config) URLs() site.URLs {
	return site.URLs{
		BasePath:      c.Site.BasePath,
		AssetPrefix:   c.Site.AssetPrefix,
		TrailingSlash: c.Site.TrailingSlash,
	}
}
