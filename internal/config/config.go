package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`
	}

	Database struct {
		Path string `env:"SQLITE_PATH" envDefault:"forum.db"`
	}

	Auth struct {
		// JWTSecret signs session tokens. It has no default on purpose.
		JWTSecret string `env:"AUTH_JWT_SECRET,required,notEmpty"`
		// TokenTTL is the staleness window: a claim stays trusted this long
		// even if the user is renamed or demoted in the meantime.
		TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"1h"`
	}

	Admin struct {
		Username string `env:"ADMIN_USERNAME" envDefault:"admin"`
		Password string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	}

	Uploads struct {
		Dir       string `env:"UPLOAD_DIR" envDefault:"uploads"`
		URLPrefix string `env:"UPLOAD_URL_PREFIX" envDefault:"/uploads"`
	}
}

// Load reads an optional .env file and parses the environment into Config.
func Load() (*Config, error) {
	// Missing .env is fine; in production the variables are set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
