package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"sceneline/internal/extract"
	"sceneline/internal/langslot"
)

// newInspectCommand walks a single source document without writing anything,
// showing how each dialogue line was resolved. Debug aid for the selection
// heuristic.
func newInspectCommand(ctx *commandContext) *cobra.Command {
	var maxTextWidth int

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show per-line extraction decisions for one source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			name := args[0]
			data, err := os.ReadFile(filepath.Join(cfg.Paths.SourceDir, name))
			if err != nil {
				return fmt.Errorf("read source %s: %w", name, err)
			}
			decoder := json.NewDecoder(bytes.NewReader(data))
			decoder.UseNumber()
			var doc any
			if err := decoder.Decode(&doc); err != nil {
				return fmt.Errorf("parse source %s: %w", name, err)
			}

			resolver := extract.NewResolver(cfg.Extract)
			var rows [][]string
			result := resolver.WalkObserved(doc, func(sceneIndex, lineIndex int, _ any, line extract.Line) {
				rows = append(rows, inspectRow(sceneIndex, lineIndex, line, maxTextWidth))
			})

			out := cmd.OutOrStdout()
			if !result.HasScenes {
				fmt.Fprintf(out, "%s has no scenes.\n", name)
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Scene", "Line", "Character", "Text", "Source"},
				rows, !isTerminal(out), 1, 2))
			fmt.Fprintf(out, "%d scene(s), %d line(s), %d selection payload(s).\n",
				result.Scenes, result.Lines, result.Selects)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxTextWidth, "text-width", 40, "Truncate text cells to this many characters (0 disables)")
	return cmd
}

func inspectRow(sceneIndex, lineIndex int, line extract.Line, maxTextWidth int) []string {
	character := "-"
	if line.Character != nil {
		character = *line.Character
	}
	text := "-"
	if line.Text != nil {
		text = truncate(*line.Text, maxTextWidth)
	}
	source := "unresolved"
	switch {
	case line.Slot >= 0:
		source = fmt.Sprintf("%s via %s", langslot.Name(line.Slot), line.Strategy)
	case line.Strategy != "":
		source = line.Strategy
	}
	return []string{
		strconv.Itoa(sceneIndex),
		strconv.Itoa(lineIndex),
		character,
		text,
		source,
	}
}
