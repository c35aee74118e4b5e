package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"sceneline/internal/extract"
	"sceneline/internal/manifest"
)

type fileStatus struct {
	Name     string `json:"name"`
	Exists   bool   `json:"exists"`
	Modified string `json:"modified,omitempty"`
	Pending  bool   `json:"pending"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which manifest files would be extracted on the next run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			names, err := manifest.Read(cfg.Paths.Manifest)
			if err != nil {
				return err
			}

			stamp := extract.Stamp{Path: cfg.Paths.Stamp}
			stampTime, haveStamp, err := stamp.ModTime()
			if err != nil {
				return err
			}

			statuses := make([]fileStatus, 0, len(names))
			for _, name := range names {
				status := fileStatus{Name: name}
				info, err := os.Stat(filepath.Join(cfg.Paths.SourceDir, name))
				if err != nil {
					if !errors.Is(err, fs.ErrNotExist) {
						return fmt.Errorf("stat source %s: %w", name, err)
					}
				} else {
					status.Exists = true
					status.Modified = info.ModTime().Format(timeFormat)
					status.Pending = !haveStamp || info.ModTime().After(stampTime)
				}
				statuses = append(statuses, status)
			}

			if jsonOut {
				return writeJSON(cmd, struct {
					Stamp string       `json:"last_extract,omitempty"`
					Files []fileStatus `json:"files"`
				}{
					Stamp: formatStampTime(stampTime, haveStamp),
					Files: statuses,
				})
			}

			out := cmd.OutOrStdout()
			if haveStamp {
				fmt.Fprintf(out, "Last extraction: %s (%s ago)\n",
					stampTime.Format(timeFormat), time.Since(stampTime).Round(time.Second))
			} else {
				fmt.Fprintln(out, "No extraction recorded yet; every existing file is pending.")
			}

			rows := make([][]string, 0, len(statuses))
			pending := 0
			for _, status := range statuses {
				rows = append(rows, statusRow(status))
				if status.Pending {
					pending++
				}
			}
			fmt.Fprintln(out, renderTable([]string{"File", "Modified", "State"}, rows, !isTerminal(out)))
			fmt.Fprintf(out, "%d of %d file(s) pending.\n", pending, len(statuses))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit status as JSON")
	return cmd
}

func statusRow(status fileStatus) []string {
	switch {
	case !status.Exists:
		return []string{status.Name, "-", "missing"}
	case status.Pending:
		return []string{status.Name, status.Modified, "pending"}
	default:
		return []string{status.Name, status.Modified, "up to date"}
	}
}

func formatStampTime(stampTime time.Time, haveStamp bool) string {
	if !haveStamp {
		return ""
	}
	return stampTime.Format(timeFormat)
}
