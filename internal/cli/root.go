// Package cli holds the orgbook command tree: the HTTP server plus one-shot
// maintenance commands that run against the configured storage.
package cli

import (
	"encoding/json"
	"io"

	"orgbook-backend/internal/config"
	"orgbook-backend/internal/metrics"
	"orgbook-backend/internal/repository"
	"orgbook-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree bound to cfg
func NewRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "orgbook",
		Short:         "Employee, topic and team directory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newServeCmd(cfg),
		newImportCmd(cfg),
		newMergeCmd(cfg),
		newDeleteDepartmentCmd(cfg),
		newSummaryCmd(cfg),
		newSeedCmd(cfg),
	)
	return cmd
}

// openDirectory opens the configured storage and loads a directory service
// over it. The returned close func releases the storage.
func openDirectory(cfg *config.Config, collector *metrics.Collector) (*service.DirectoryService, func() error, error) {
	storage, err := OpenStorage(cfg)
	if err != nil {
		return nil, nil, err
	}

	repo := repository.NewDirectoryRepository(storage)
	return service.NewDirectoryService(repo, validator.New(), collector), storage.Close, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
