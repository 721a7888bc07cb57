package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-server/internal/util"
)

// Config provides configuration for the hold'em server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	JWT            struct {
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	}
	RecaptchaSecret string `yaml:"recaptchaSecret" envconfig:"recaptcha_secret"`
	Log             struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
		StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
		MinPlayers    int `yaml:"minPlayers" envconfig:"min_players"`
		MaxPlayers    int `yaml:"maxPlayers" envconfig:"max_players"`
	}
	PlayerCreateDelay int `yaml:"playerCreateDelay" envconfig:"player_create_delay"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. The config file is optional unless
// HOLDEM_CONFIG_FILE points somewhere explicit; environment variables always
// win over the file.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) || os.Getenv("HOLDEM_CONFIG_FILE") != "" {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// DefaultConfig returns the out-of-the-box configuration
func DefaultConfig() Config {
	var c Config
	c.PGDSN = "host=localhost port=5432 user=postgres sslmode=disable"
	c.MigrationsPath = "./sql"
	c.JWT.PublicKey = ".keys/public.pem"
	c.JWT.PrivateKey = ".keys/private.key"
	c.Log.Level = "info"
	c.Game.SmallBlind = 10
	c.Game.BigBlind = 20
	c.Game.StartingChips = 1000
	c.Game.MinPlayers = 2
	c.Game.MaxPlayers = 6

	return c
}
