package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"orgbook-backend/internal/config"
	"orgbook-backend/internal/database/models"
	"orgbook-backend/internal/logger"
	"orgbook-backend/internal/normalize"
	"orgbook-backend/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// seedFile is one YAML document of seed data. Any section may be absent.
type seedFile struct {
	Employees []seedEmployee `yaml:"employees"`
	Topics    []seedTopic    `yaml:"topics"`
	Teams     []seedTeam     `yaml:"teams"`
}

type seedEmployee struct {
	Name       string   `yaml:"name"`
	JobTitle   string   `yaml:"job_title"`
	Department string   `yaml:"department"`
	ReportsTo  string   `yaml:"reports_to"`
	Topics     []string `yaml:"topics,omitempty"`
	Teams      []string `yaml:"teams,omitempty"`
}

type seedTopic struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Link        string `yaml:"link,omitempty"`
}

type seedTeam struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	ChannelLink string `yaml:"teams_link,omitempty"`
}

// SeedResult counts what a seed run created
type SeedResult struct {
	EmployeesCreated int      `json:"employeesCreated"`
	TopicsCreated    int      `json:"topicsCreated"`
	TeamsCreated     int      `json:"teamsCreated"`
	EdgesCreated     int      `json:"edgesCreated"`
	Unresolved       []string `json:"unresolved,omitempty"`
}

func newSeedCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <dir>",
		Short: "Load initial employees, topics and teams from YAML files",
		Long: "Every .yaml/.yml file under dir may hold employees, topics and teams sections.\n" +
			"Records whose name already exists are reused, so seeding twice is harmless.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadSeedFiles(args[0])
			if err != nil {
				return err
			}

			directory, closeStorage, err := openDirectory(cfg, nil)
			if err != nil {
				return err
			}
			defer closeStorage()

			result, err := seed(directory, data)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
}

// loadSeedFiles merges every YAML file under dir in walk order
func loadSeedFiles(dir string) (*seedFile, error) {
	merged := &seedFile{}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := strings.ToLower(filepath.Ext(path)); ext != ".yaml" && ext != ".yml" {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file seedFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		merged.Employees = append(merged.Employees, file.Employees...)
		merged.Topics = append(merged.Topics, file.Topics...)
		merged.Teams = append(merged.Teams, file.Teams...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load seed data: %w", err)
	}
	return merged, nil
}

// seed creates the topics, teams and employees in data that do not exist yet
// and links employees to the topics and teams they name
func seed(directory service.DirectoryServiceInterface, data *seedFile) (*SeedResult, error) {
	log := logger.New().WithComponent("seed")
	result := &SeedResult{}

	topicIDs := map[string]string{}
	for _, t := range directory.Topics() {
		topicIDs[strings.ToLower(strings.TrimSpace(t.Name))] = t.ID
	}
	for _, t := range data.Topics {
		key := strings.ToLower(strings.TrimSpace(t.Name))
		if _, ok := topicIDs[key]; ok {
			continue
		}
		created, err := directory.CreateTopic(&service.TopicRequest{Name: t.Name, Description: t.Description, Link: t.Link})
		if err != nil {
			return nil, fmt.Errorf("seed topic %q: %w", t.Name, err)
		}
		topicIDs[key] = created.ID
		result.TopicsCreated++
	}

	teamIDs := map[string]string{}
	for _, t := range directory.Teams() {
		teamIDs[strings.ToLower(strings.TrimSpace(t.Name))] = t.ID
	}
	for _, t := range data.Teams {
		key := strings.ToLower(strings.TrimSpace(t.Name))
		if _, ok := teamIDs[key]; ok {
			continue
		}
		created, err := directory.CreateTeam(&service.TeamRequest{Name: t.Name, Description: t.Description, ChannelLink: t.ChannelLink})
		if err != nil {
			return nil, fmt.Errorf("seed team %q: %w", t.Name, err)
		}
		teamIDs[key] = created.ID
		result.TeamsCreated++
	}

	for _, e := range data.Employees {
		employee, err := findOrCreateEmployee(directory, e, result)
		if err != nil {
			return nil, err
		}

		for _, link := range []struct {
			kind  models.ItemKind
			names []string
			ids   map[string]string
		}{
			{models.KindTopic, e.Topics, topicIDs},
			{models.KindTeam, e.Teams, teamIDs},
		} {
			for _, name := range link.names {
				id, ok := link.ids[strings.ToLower(strings.TrimSpace(name))]
				if !ok {
					result.Unresolved = append(result.Unresolved, fmt.Sprintf("%s: %s %q", e.Name, link.kind, name))
					continue
				}
				if models.ContainsID(employee.Items(link.kind), id) {
					continue
				}
				if err := directory.Link(employee.ID, id, link.kind); err != nil {
					return nil, fmt.Errorf("seed link %s -> %s: %w", e.Name, name, err)
				}
				employee = employee.WithItems(link.kind, models.AddID(employee.Items(link.kind), id))
				result.EdgesCreated++
			}
		}
	}

	log.WithFields(map[string]interface{}{
		"employees_created": result.EmployeesCreated,
		"topics_created":    result.TopicsCreated,
		"teams_created":     result.TeamsCreated,
		"edges_created":     result.EdgesCreated,
		"unresolved":        len(result.Unresolved),
	}).Info("Seed completed")

	return result, nil
}

func findOrCreateEmployee(directory service.DirectoryServiceInterface, e seedEmployee, result *SeedResult) (models.Employee, error) {
	for _, existing := range directory.Snapshot().Employees {
		if normalize.SameName(existing.Name, e.Name) {
			return existing, nil
		}
	}

	created, err := directory.CreateEmployee(&service.EmployeeRequest{
		Name:       e.Name,
		JobTitle:   e.JobTitle,
		Department: e.Department,
		ReportsTo:  e.ReportsTo,
	})
	if err != nil {
		return models.Employee{}, fmt.Errorf("seed employee %q: %w", e.Name, err)
	}
	result.EmployeesCreated++
	return created, nil
}
