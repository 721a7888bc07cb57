package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_JWT_PRIVATE_KEY", "private2.key")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal("public.pem", cfg.JWT.PublicKey)
	a.Equal("private2.key", cfg.JWT.PrivateKey)
	a.Equal(25, cfg.Game.SmallBlind)
	a.Equal(9, cfg.Game.MaxPlayers)
	a.Equal("debug", cfg.Log.Level)

	// ensure that it's only loaded once
	_ = os.Setenv("HOLDEM_JWT_PRIVATE_KEY", "private3.key")
	// ensure we aren't using a pointer
	cfg.JWT.PrivateKey = "bad"
	cfg = Instance()
	a.Equal("private2.key", cfg.JWT.PrivateKey)
}

func TestDefaults(t *testing.T) {
	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(20, cfg.Game.BigBlind)
	a.Equal(1000, cfg.Game.StartingChips)
	a.Equal("./sql", cfg.MigrationsPath)
}

func TestLoad_missingExplicitFile(t *testing.T) {
	clear := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	assert.Error(t, Load())
}
