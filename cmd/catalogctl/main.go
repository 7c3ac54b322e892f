// Package main is the entry point for the catalogctl CLI client.
package main

import (
	"github.com/donaldgifford/catalog-gateway/cmd/catalogctl/cmd"
)

func main() {
	cmd.Execute()
}
