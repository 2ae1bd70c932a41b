// Package main is the entry point for the pdftext CLI.
//
// Run without arguments it reads a base64-encoded PDF from stdin and writes
// a single JSON result line to stdout. The serve subcommand exposes the
// same extraction over HTTP.
package main

import (
	"encoding/json"
	"io"
	"os"

	"pdf-text-extractor/internal/config"
	"pdf-text-extractor/internal/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pdftext",
	Short: "Extract plain text from a base64-encoded PDF",
	Long: `pdftext reads a base64-encoded PDF document from standard input, extracts
the text of every page in order and prints one JSON line to standard output:

  {"success":true,"text":"..."}   or   {"success":false,"error":"..."}

Extraction failures are reported in the JSON result; the exit status is zero
whenever the result line was written.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		container := config.NewContainer()
		return runExtract(cmd.InOrStdin(), cmd.OutOrStdout(), container.StdinExtractionService)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// runExtract reads all of in, extracts, and writes exactly one JSON line to out
func runExtract(in io.Reader, out io.Writer, svc domain.ExtractionService) error {
	result := svc.ExtractFromReader(in)

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
