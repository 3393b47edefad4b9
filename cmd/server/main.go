// Package main is the entry point for the game master server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bofuri-mj",
	Short: "Game master aid for the BOFURI tabletop campaign",
	Long: `bofuri-mj parses the campaign's markdown compendium (bestiary and
skill tiers), derives monster stats at any level, and resolves dice
combat exchanges over an HTTP API.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
}
