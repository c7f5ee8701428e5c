package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"alfredoptarigan/cv-tailor/internal/normalizer"
)

func newNormalizeCmd() *cobra.Command {
	var splitSections bool

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Turn a raw model response into tailored CV JSON",
		Long:  "Reads a raw model response from file (or stdin when no file is given) and prints the tailored CV, improvements and summary as JSON.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			processed := normalizer.Normalize(raw)
			if splitSections {
				processed.Improvements = normalizer.SplitEmbeddedSections(processed.Improvements)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(processed); err != nil {
				return fmt.Errorf("failed to encode response: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&splitSections, "split-sections", false, "Split section headings embedded inside improvement items")
	return cmd
}

// readInput returns the content of args[0], or stdin when no file is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}
