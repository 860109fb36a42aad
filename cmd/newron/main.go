// Package main provides the newron CLI.
package main

import (
	"log"
	"os"
)

const version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetFlags(0)
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}
