package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/han-tyumi/secret-santa/internal/logging"
)

var (
	verbose bool
	logger  logging.Logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "santa",
	Short: "Draw Secret Santa assignments",
	Long: `Draw Secret Santa assignments where nobody gets themselves or
anyone they are excluded from.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.NewCLI(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if l, ok := logger.(*logging.ZapLogger); ok {
			_ = l.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log draw attempts to stderr")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
