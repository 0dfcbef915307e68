package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Upstream    UpstreamConfig    `mapstructure:"upstream" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
	Ingestion   IngestionConfig   `mapstructure:"ingestion" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// UpstreamConfig describes the events API the client talks to.
type UpstreamConfig struct {
	BaseURL  string            `mapstructure:"base_url" validate:"required,url"`
	Version  string            `mapstructure:"version"`
	Token    string            `mapstructure:"token"`
	Username string            `mapstructure:"username"`
	Password string            `mapstructure:"password"`
	Timeout  int               `mapstructure:"timeout" validate:"required,min=1"` // seconds
	Headers  map[string]string `mapstructure:"headers"`
}

// AggregationConfig holds the volume bucketing policy.
type AggregationConfig struct {
	WindowSize      string `mapstructure:"window_size" validate:"required,oneof=minute hour"`
	CountedEvent    string `mapstructure:"counted_event" validate:"required"`
	UnnamedModelKey string `mapstructure:"unnamed_model_key" validate:"required"`
	NoContentKey    string `mapstructure:"no_content_key" validate:"required"`
}

// IngestionConfig controls how events are paged out of the events API.
type IngestionConfig struct {
	PageSize    int `mapstructure:"page_size" validate:"required,min=1,max=10000"`
	MaxEvents   int `mapstructure:"max_events" validate:"required,min=1"`
	Concurrency int `mapstructure:"concurrency" validate:"required,min=1,max=16"`
	Retries     int `mapstructure:"retries" validate:"min=0,max=10"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}
