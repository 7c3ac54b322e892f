// Package main is the entry point for the catalog-gateway server.
package main

import (
	"os"

	"github.com/donaldgifford/catalog-gateway/cmd/catalog-gateway/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
