package main

import (
	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

func main() {
	log := utils.NewLogger()

	// Load configuration - fallback to defaults if file doesn't exist
	config := loadConfig(log, configFile)

	sim := engine.NewSimulationFromConfig(config, newRNG(config.Seed), engine.WithLogger(log))
	displayGameInfo(log, config, sim)

	if err := runWindow(config, newGame(config, sim)); err != nil {
		log.Fatal("%+v", err)
	}
	sim.Close()
}
