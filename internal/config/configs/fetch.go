package configs

import "time"

// Fetch configures how landing pages are downloaded.
type Fetch struct {
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"20s"`
	MaxBytes  int64         `env:"MAX_BYTES" envDefault:"2097152"`
	UserAgent string        `env:"USER_AGENT" envDefault:"adpilot/1.0"`
	RetryMax  int           `env:"RETRY_MAX" envDefault:"0"`
}
