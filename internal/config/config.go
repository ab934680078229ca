package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/goserg/elocalc/internal/elo"
)

type Elo struct {
	KFactor float64    `toml:"k_factor"`
	CValue  float64    `toml:"c_value"`
	LFactor float64    `toml:"l_factor"`
	Method  elo.Method `toml:"method"`
}

type Server struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port"`
	Debug bool   `toml:"debug_mode"`
}

type Config struct {
	Elo    Elo    `toml:"elo"`
	Server Server `toml:"server"`
}

func Default() Config {
	return Config{
		Elo: Elo{
			KFactor: elo.DefaultK,
			CValue:  elo.DefaultC,
			LFactor: elo.DefaultL,
			Method:  elo.Bonus,
		},
		Server: Server{
			Host: "127.0.0.1",
			Port: 3000,
		},
	}
}

// Load reads the toml file on top of defaults and applies env overrides.
// Empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if _, err := elo.ParseMethod(int(cfg.Elo.Method)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Elo) Calculator() elo.Calculator {
	return elo.New(c.KFactor, c.CValue, c.LFactor)
}

func applyEnv(cfg *Config) error {
	floats := []struct {
		env string
		dst *float64
	}{
		{"ELO_K_FACTOR", &cfg.Elo.KFactor},
		{"ELO_C_VALUE", &cfg.Elo.CValue},
		{"ELO_L_FACTOR", &cfg.Elo.LFactor},
	}
	for _, f := range floats {
		v := os.Getenv(f.env)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", f.env, err)
		}
		*f.dst = parsed
	}
	if v := os.Getenv("ELO_SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ELO_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	return nil
}
