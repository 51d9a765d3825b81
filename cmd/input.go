package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/han-tyumi/secret-santa/internal/config"
	"github.com/han-tyumi/secret-santa/internal/roster"
)

var errNoMembers = errors.New("no members given: pass names, --config, or --interactive")

// rosterFlags are shared by every command that builds a roster.
type rosterFlags struct {
	configFile string
	symmetric  bool
	strict     bool
}

func (f *rosterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configFile, "config", "f", "", "YAML roster file with members and exclusions")
	cmd.Flags().BoolVar(&f.symmetric, "symmetric", false, "Apply every exclusion in both directions")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject exclusions naming unknown members")
}

// load merges the roster file with positional "name" or "name=a,b" arguments.
func (f *rosterFlags) load(args []string) (*config.Roster, error) {
	raw := &config.Roster{}
	if f.configFile != "" {
		file, err := config.Load(f.configFile)
		if err != nil {
			return nil, err
		}
		raw = file
	}

	fromArgs, err := config.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if err := raw.Merge(fromArgs); err != nil {
		return nil, err
	}
	raw.Symmetric = raw.Symmetric || f.symmetric
	return raw, nil
}

func (f *rosterFlags) build(raw *config.Roster) (*roster.Roster, error) {
	opts := []roster.Option{roster.WithLogger(logger)}
	if f.strict {
		opts = append(opts, roster.WithStrict())
	}

	r, err := roster.New(raw.Members, raw.ExclusionMap(), opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}
	return r, nil
}
