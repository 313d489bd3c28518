package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"orgbook-backend/internal/config"

	"github.com/spf13/cobra"
)

func newImportCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "import <pipeline> <file>",
		Short: "Run an import pipeline against a sheet or CODEOWNERS file",
		Long: "Pipelines: skills, components, codeowners, employees, topics, teams.\n" +
			"Sheets may be .csv or .xlsx; codeowners takes a JSON or YAML document.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()

			directory, closeStorage, err := openDirectory(cfg, nil)
			if err != nil {
				return err
			}
			defer closeStorage()

			result, err := directory.Import(args[0], f, filepath.Base(args[1]))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
}

func newMergeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <source-id> <target-id>",
		Short: "Merge one employee into another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, closeStorage, err := openDirectory(cfg, nil)
			if err != nil {
				return err
			}
			defer closeStorage()

			merged, err := directory.MergeEmployees(args[0], args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), merged)
		},
	}
}

func newDeleteDepartmentCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-department <name>",
		Short: "Delete every employee in a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, closeStorage, err := openDirectory(cfg, nil)
			if err != nil {
				return err
			}
			defer closeStorage()

			removed := directory.DeleteDepartment(args[0])
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"department": args[0],
				"removed":    removed,
			})
		},
	}
}

// Summary is the output of the summary command
type Summary struct {
	Employees   int      `json:"employees"`
	Topics      int      `json:"topics"`
	Teams       int      `json:"teams"`
	Departments []string `json:"departments"`
	Managers    []string `json:"managers"`
}

func newSummaryCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print collection sizes, departments and managers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, closeStorage, err := openDirectory(cfg, nil)
			if err != nil {
				return err
			}
			defer closeStorage()

			snap := directory.Snapshot()
			return writeJSON(cmd.OutOrStdout(), Summary{
				Employees:   len(snap.Employees),
				Topics:      len(snap.Topics),
				Teams:       len(snap.Teams),
				Departments: snap.Departments(),
				Managers:    snap.Managers(),
			})
		},
	}
}
