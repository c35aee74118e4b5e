package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sceneline/internal/extract"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract transcripts for manifest files modified since the last run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			store, err := ctx.openJournal()
			if err != nil {
				return err
			}
			defer store.Close()

			driver := extract.NewDriver(cfg, logger, store)
			report, err := driver.Run(cmd.Context(), force)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, extractSummary(report))
			}

			out := cmd.OutOrStdout()
			if len(report.Files) == 0 {
				fmt.Fprintln(out, "Nothing to extract; no manifest file changed since the last run.")
				return nil
			}
			processed, skipped := 0, 0
			for _, file := range report.Files {
				if file.Skipped {
					skipped++
				} else {
					processed++
				}
			}
			fmt.Fprintf(out, "Extracted %d file(s), skipped %d without scenes in %s.\n",
				processed, skipped, report.Duration.Round(timePrecision))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Reprocess every manifest file regardless of the last extraction time")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit a JSON run summary")
	return cmd
}

type fileSummary struct {
	Name    string `json:"name"`
	Scenes  int    `json:"scenes"`
	Lines   int    `json:"lines"`
	Selects int    `json:"selects"`
	Skipped bool   `json:"skipped"`
}

type runSummary struct {
	ID           string        `json:"id"`
	StartedAt    string        `json:"started_at"`
	DurationMS   int64         `json:"duration_ms"`
	StampUpdated bool          `json:"stamp_updated"`
	Files        []fileSummary `json:"files"`
}

func extractSummary(report *extract.RunReport) runSummary {
	summary := runSummary{
		ID:           report.ID,
		StartedAt:    report.StartedAt.UTC().Format(timeFormat),
		DurationMS:   report.Duration.Milliseconds(),
		StampUpdated: report.StampUpdated,
		Files:        []fileSummary{},
	}
	for _, file := range report.Files {
		summary.Files = append(summary.Files, fileSummary{
			Name:    file.Name,
			Scenes:  file.Scenes,
			Lines:   file.Lines,
			Selects: file.Selects,
			Skipped: file.Skipped,
		})
	}
	return summary
}
