package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"daybook/internal/timeline"
)

var finalizeCmd = &cobra.Command{
	Use:   "finalize",
	Short: "Lock the timeline against further changes",
	Long:  "Sets the finalized flag. Finalization is one-way: afterwards every mutation is rejected, while reads and exports keep working.",
	Args:  cobra.NoArgs,
	RunE:  runFinalize,
}

func runFinalize(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	err = a.engine.Finalize(cmd.Context(), a.project)
	if errors.Is(err, timeline.ErrFinalized) {
		fmt.Printf("Project %q is already finalized\n", a.project)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Finalized project %q. The timeline is now read-only.\n", a.project)
	return nil
}
