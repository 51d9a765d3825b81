package cmd

import (
	"github.com/spf13/cobra"

	"github.com/han-tyumi/secret-santa/internal/output"
)

var checkFlags rosterFlags

func init() {
	checkCmd := &cobra.Command{
		Use:   "check [name | name=excluded1,excluded2 ...]",
		Short: "Show every member's possible recipients",
		Long: `Validate a roster and show each member's possible recipients.
Members marked FIRST are resolved first in every draw.

Examples:
  santa check alice=bob bob carol
  santa check -f family.yaml`,
		RunE: runCheck,
	}

	checkFlags.register(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	raw, err := checkFlags.load(args)
	if err != nil {
		return err
	}
	if len(raw.Members) == 0 {
		return errNoMembers
	}

	r, err := checkFlags.build(raw)
	if err != nil {
		return err
	}
	return output.PrintRoster(cmd.OutOrStdout(), r)
}
