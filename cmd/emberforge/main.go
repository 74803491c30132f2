package main

import (
	"log"

	"github.com/emberforge/emberforge/internal/cli"
)

func main() {
	log.SetPrefix("[EMBERFORGE] ")
	if err := cli.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}
