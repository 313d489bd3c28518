package service

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"orgbook-backend/internal/database/models"
	apperrors "orgbook-backend/internal/errors"
	"orgbook-backend/internal/imports"
)

// Import pipeline names accepted by Import
const (
	PipelineSkills     = "skills"
	PipelineComponents = "components"
	PipelineCodeOwners = "codeowners"
	PipelineEmployees  = "employees"
	PipelineTopics     = "topics"
	PipelineTeams      = "teams"
)

// Pipelines lists every import pipeline in the order they are documented
var Pipelines = []string{
	PipelineSkills,
	PipelineComponents,
	PipelineCodeOwners,
	PipelineEmployees,
	PipelineTopics,
	PipelineTeams,
}

// ImportResult summarises one import batch. It is informational only; rows
// that cannot be used are skipped and never fail the batch.
type ImportResult struct {
	Pipeline         string `json:"pipeline"`
	RowsRead         int    `json:"rowsRead"`
	RowsSkipped      int    `json:"rowsSkipped"`
	EmployeesCreated int    `json:"employeesCreated"`
	TopicsCreated    int    `json:"topicsCreated"`
	TeamsCreated     int    `json:"teamsCreated"`
	EdgesCreated     int    `json:"edgesCreated"`
}

// Import reads an uploaded file in the format the pipeline expects and runs it
func (s *DirectoryService) Import(pipeline string, r io.Reader, filename string) (*ImportResult, error) {
	pipeline = strings.ToLower(strings.TrimSpace(pipeline))
	if !slices.Contains(Pipelines, pipeline) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownPipeline, pipeline)
	}

	if pipeline == PipelineCodeOwners {
		doc, err := imports.ParseCodeOwners(r, filename)
		if err != nil {
			return nil, err
		}
		return s.ImportCodeOwners(doc), nil
	}

	rows, err := imports.ReadSheet(r, filename)
	if err != nil {
		return nil, err
	}

	switch pipeline {
	case PipelineSkills:
		return s.ImportSkills(rows), nil
	case PipelineComponents:
		return s.ImportComponents(rows), nil
	case PipelineEmployees:
		return s.ImportEmployees(rows), nil
	case PipelineTopics:
		return s.ImportTopics(rows), nil
	default:
		return s.ImportTeams(rows), nil
	}
}

// runImport applies one pipeline as a single snapshot transition
func (s *DirectoryService) runImport(pipeline string, fn func(cur *models.Snapshot, result *ImportResult) (*models.Snapshot, changeSet)) *ImportResult {
	result := &ImportResult{Pipeline: pipeline}

	_, _ = s.apply("import_"+pipeline, func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		next, changed := fn(cur, result)
		return next, changed, nil
	})

	if s.metrics != nil {
		s.metrics.RecordImport(pipeline, result.RowsRead, result.RowsSkipped)
	}
	s.log.WithFields(map[string]interface{}{
		"pipeline":          pipeline,
		"rows_read":         result.RowsRead,
		"rows_skipped":      result.RowsSkipped,
		"employees_created": result.EmployeesCreated,
		"topics_created":    result.TopicsCreated,
		"teams_created":     result.TeamsCreated,
		"edges_created":     result.EdgesCreated,
	}).Info("Import completed")

	return result
}

// newImportedEmployee is the record find-or-create pipelines create for an
// unknown person
func newImportedEmployee(name string) models.Employee {
	return models.Employee{
		ID:         models.NewEmployeeID(),
		Name:       name,
		Department: models.UnassignedDepartment,
		Topics:     []string{},
		Teams:      []string{},
	}
}
