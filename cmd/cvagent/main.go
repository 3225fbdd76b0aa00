// Package main provides the cvagent command line tool, which runs CV text
// extraction, fit analysis and tailoring against local files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvagent",
	Short: "AI CV Agent command line tools",
	Long:  "Extract text from CVs, analyze how well a CV fits a job description and generate tailored CV documents without running the HTTP server.",
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
