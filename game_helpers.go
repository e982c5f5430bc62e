package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/utils"
)

// loadConfig reads the config file, falling back to defaults when it does not exist.
// A file that exists but cannot be used is fatal.
func loadConfig(log *utils.Logger, filename string) utils.Config {
	config, err := utils.LoadConfig(filename)
	if err == nil {
		return config
	}
	if os.IsNotExist(errors.Cause(err)) {
		log.Info("using default configuration (%s not found)", filename)
		return utils.DefaultConfig()
	}
	log.Fatal("%+v", err)
	return config
}

// newRNG returns the process-wide random source, seeded from the wall clock unless a seed is configured
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// displayGameInfo logs the initial game information
func displayGameInfo(log *utils.Logger, config utils.Config, sim *engine.Simulation) {
	log.Info("board: %dx%d | window: %dx%d | update every %s at %d tps",
		config.BoardWidth, config.BoardHeight, config.WindowWidth, config.WindowHeight, config.Interval(), config.TPS)
	log.Info("features: memory pool: %v, parallel: %v", config.UseMemoryPool, config.UseParallel)
	log.Info("initial living cells: %d", sim.Board().CountLivingCells())
	log.Info("close the window to exit")
}
