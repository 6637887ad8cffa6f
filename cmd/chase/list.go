package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/games/chase/levels"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and stage packs",
	Long:  `Shows every registered game and the stages of each built-in pack.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Stage packs:")
	for _, name := range levels.Packs() {
		stages, err := levels.Pack(name)
		if err != nil {
			fmt.Printf("  %s: %v\n", name, err)
			continue
		}
		fmt.Printf("  %s\n", name)
		for _, s := range stages {
			fmt.Printf("    %-4s %-16s %dx%d, %d ghosts\n", s.ID, s.Name, stageWidth(s.Rows), len(s.Rows), len(s.Ghosts))
		}
	}

	fmt.Println()
	fmt.Println("Run 'chase play <id>' to play a game.")
}

func stageWidth(rows []string) int {
	w := 0
	for _, r := range rows {
		w = max(w, len([]rune(r)))
	}
	return w
}
