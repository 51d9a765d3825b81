package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/han-tyumi/secret-santa/internal/config"
	"github.com/han-tyumi/secret-santa/internal/generator"
	"github.com/han-tyumi/secret-santa/internal/matcher"
	"github.com/han-tyumi/secret-santa/internal/output"
	"github.com/han-tyumi/secret-santa/internal/prompt"
)

var (
	drawFlags   rosterFlags
	outputDir   string
	seed        int64
	attempts    int
	timeout     time.Duration
	workers     int
	interactive bool
)

func init() {
	drawCmd := &cobra.Command{
		Use:   "draw [name | name=excluded1,excluded2 ...]",
		Short: "Draw recipients for every member",
		Long: `Draw a recipient for every member. Nobody draws themselves, anyone
they exclude, or a recipient already drawn by someone else.

Examples:
  santa draw alice=bob bob=alice carol dave
  santa draw -f family.yaml -o ./envelopes
  santa draw -i
  santa draw alice bob carol --seed 42`,
		RunE: runDraw,
	}

	drawFlags.register(drawCmd)
	drawCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Write each recipient to a file named after the member drawing them")
	drawCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for a reproducible draw (0 = random)")
	drawCmd.Flags().IntVar(&attempts, "attempts", generator.DefaultMaxAttempts, "Maximum draws to try before giving up (0 = unlimited)")
	drawCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Give up after this long")
	drawCmd.Flags().IntVar(&workers, "workers", 1, "Draw attempts to run concurrently")
	drawCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for names and exclusions, and offer to redraw")

	rootCmd.AddCommand(drawCmd)
}

func runDraw(cmd *cobra.Command, args []string) error {
	raw, err := drawFlags.load(args)
	if err != nil {
		return err
	}

	var p *prompt.Prompter
	if wantsPrompt(cmd.InOrStdin(), len(raw.Members)) {
		p = prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err := ask(p, raw); err != nil {
			return err
		}
	}
	if len(raw.Members) == 0 {
		return errNoMembers
	}

	r, err := drawFlags.build(raw)
	if err != nil {
		return err
	}
	m, err := matcher.New(r)
	if err != nil {
		return err
	}

	gen := generator.New(m, &generator.Options{
		MaxAttempts: attempts,
		Timeout:     timeout,
		Seed:        seed,
		Workers:     max(workers, 1),
	}, logger)

	for {
		assignment, stats, err := gen.Generate(cmd.Context())
		if err != nil {
			return fmt.Errorf("draw failed: %w", err)
		}
		logger.Debug("draw complete", "members", r.Len(), "attempts", stats.Attempts)

		if err := emit(cmd, assignment); err != nil {
			return err
		}

		if p == nil {
			return nil
		}
		again, err := p.Confirm("Regenerate?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// wantsPrompt reports whether to prompt: when asked to, or when there is
// nothing to draw from and a person is at the keyboard.
func wantsPrompt(in io.Reader, members int) bool {
	if interactive {
		return true
	}
	if members > 0 {
		return false
	}
	f, ok := in.(*os.File)
	return ok && prompt.IsTerminal(f)
}

// ask fills in names and exclusions interactively. Names are only asked for
// when none were given; checklist answers add to any exclusions already set.
func ask(p *prompt.Prompter, raw *config.Roster) error {
	if len(raw.Members) == 0 {
		names, err := p.Names()
		if err != nil {
			return err
		}
		for _, n := range names {
			if err := raw.AddMember(n); err != nil {
				return err
			}
		}
	}

	exclusions, err := p.Exclusions(raw.Members)
	if err != nil {
		return err
	}
	for member, excluded := range exclusions {
		if err := raw.Exclude(member, excluded...); err != nil {
			return err
		}
	}
	return nil
}

func emit(cmd *cobra.Command, a matcher.Assignment) error {
	if outputDir == "" {
		return output.Print(cmd.OutOrStdout(), a)
	}

	if err := output.WriteFiles(outputDir, a); err != nil {
		return fmt.Errorf("failed to write assignments: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d assignment(s) to %s\n", len(a), outputDir)
	return nil
}
