package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/games/chase/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Validate a directory of stage files",
	Long: `Parse and validate every stage file in a directory, the same way
'chase play --stages <dir>' loads them.

Examples:
  chase check ./my-stages`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	stages, err := levels.NewLoader(args[0]).LoadAll()
	if err != nil {
		return err
	}

	for _, s := range stages {
		m, err := s.Validate()
		if err != nil {
			return fmt.Errorf("stage %s: %w", s.ID, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok  %-6s %-16s %3d pellets, %d ghosts\n", s.ID, s.Name, m.Remaining(), len(s.Ghosts))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d stages valid\n", len(stages))
	return nil
}
