package main

import (
	"log"

	"github.com/midiiiwo/frozen-haven-api/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
