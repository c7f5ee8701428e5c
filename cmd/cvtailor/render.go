package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"alfredoptarigan/cv-tailor/internal/services"
)

func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a plain text CV into a DOCX file",
		Long:  "Lays out a plain text CV (file or stdin) as a Word document. Blank lines separate sections and upper case first lines become headings.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			doc, err := services.NewDocxRenderer().Render(text)
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, doc, 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %s (%d bytes)\n", output, len(doc))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Path to output DOCX file (required)")
	if err := cmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	return cmd
}
