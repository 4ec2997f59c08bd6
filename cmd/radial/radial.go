package main

import (
	"log"

	"tableflip.dev/radial/pkg/commands"
	"tableflip.dev/radial/pkg/logging"
)

func main() {
	logging.SetDefault("radial", "dev")
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
