package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"weighttrack/internal/domain"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a weight record",
	Long: `Delete a weight record by its id, as shown in the first column of
'weighttrack list'.

EXAMPLES:

  weighttrack delete default-user-2026-03-14

CAUTION:

  This permanently deletes the record. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		latest, err := records.Delete(cmd.Context(), id)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Errorf("record not found: %s", id)
		}
		if err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgYellow).Fprintf(out, "✗ Deleted %s\n", id)
		if latest != nil {
			fmt.Fprintf(out, "  latest is now %.1f kg on %s\n", latest.Weight, latest.Date.Format("2006-01-02"))
		} else {
			fmt.Fprintln(out, "  no records left")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
