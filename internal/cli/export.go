package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"daybook/internal/ics"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the timeline as an iCalendar file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (defaults to stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	list, err := a.engine.Fetch(cmd.Context(), a.project)
	if err != nil {
		return err
	}

	if exportOut == "" {
		return ics.Export(os.Stdout, list)
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := ics.Export(f, list); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", exportOut)
	return nil
}
