package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Models   ModelsConfig
	Cache    CacheConfig
	Renderer RendererConfig
	CORS     CORSConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type ModelsConfig struct {
	Dir    string
	Prefix string
	Ext    string

	// ONNX Runtime settings. LibraryPath is optional; input/output names
	// default to the skl2onnx export convention.
	ONNXLibraryPath string
	InputName       string
	OutputName      string
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type RendererConfig struct {
	Enabled bool
	URL     string
	Timeout time.Duration
}

type CORSConfig struct {
	Origins []string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("MODEL_DIR", "./models")
	v.SetDefault("MODEL_PREFIX", "real_estate_model")
	v.SetDefault("MODEL_EXT", ".onnx")
	v.SetDefault("ONNX_LIBRARY_PATH", "")
	v.SetDefault("ONNX_INPUT_NAME", "float_input")
	v.SetDefault("ONNX_OUTPUT_NAME", "variable")
	v.SetDefault("MODEL_CACHE_ENABLED", false)
	v.SetDefault("MODEL_CACHE_TTL", "5m")
	v.SetDefault("RENDERER_ENABLED", false)
	v.SetDefault("RENDERER_URL", "http://localhost:3001")
	v.SetDefault("RENDERER_TIMEOUT", "30s")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cacheTTL, err := time.ParseDuration(v.GetString("MODEL_CACHE_TTL"))
	if err != nil {
		cacheTTL = 5 * time.Minute
	}
	rendererTimeout, err := time.ParseDuration(v.GetString("RENDERER_TIMEOUT"))
	if err != nil {
		rendererTimeout = 30 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Models: ModelsConfig{
			Dir:             v.GetString("MODEL_DIR"),
			Prefix:          v.GetString("MODEL_PREFIX"),
			Ext:             v.GetString("MODEL_EXT"),
			ONNXLibraryPath: v.GetString("ONNX_LIBRARY_PATH"),
			InputName:       v.GetString("ONNX_INPUT_NAME"),
			OutputName:      v.GetString("ONNX_OUTPUT_NAME"),
		},
		Cache: CacheConfig{
			Enabled: v.GetBool("MODEL_CACHE_ENABLED"),
			TTL:     cacheTTL,
		},
		Renderer: RendererConfig{
			Enabled: v.GetBool("RENDERER_ENABLED"),
			URL:     v.GetString("RENDERER_URL"),
			Timeout: rendererTimeout,
		},
		CORS: CORSConfig{
			Origins: splitOrigins(v.GetString("CORS_ORIGINS")),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
