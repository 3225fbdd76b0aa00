package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alfredoptarigan/cv-agent/internal/services"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the plain text of a CV (.pdf or .docx)",
	RunE:  runExtract,
}

var extractCVPath string

func init() {
	extractCmd.Flags().StringVar(&extractCVPath, "cv", "", "Path to the CV file")
	_ = extractCmd.MarkFlagRequired("cv")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	text, err := services.NewTextExtractor().ExtractText(extractCVPath)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
