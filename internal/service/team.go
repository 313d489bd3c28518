package service

import (
	"slices"

	"orgbook-backend/internal/database/models"
)

// CreateTeam adds a team with an empty member set
func (s *DirectoryService) CreateTeam(req *TeamRequest) (models.Team, error) {
	req.trim()
	if err := s.validateRequest("team", req); err != nil {
		return models.Team{}, err
	}

	team := models.Team{
		ID:          models.NewTeamID(),
		Name:        req.Name,
		Description: req.Description,
		ChannelLink: req.ChannelLink,
		Employees:   []string{},
	}

	_, err := s.apply("create_team", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		next := *cur
		next.Teams = append(slices.Clip(cur.Teams), team)
		return &next, changedTeams, nil
	})
	return team, err
}

// EditTeam replaces name, description and channel link of a team.
// An unknown id is a no-op reported as found=false.
func (s *DirectoryService) EditTeam(id string, req *TeamRequest) (models.Team, bool, error) {
	req.trim()
	if err := s.validateRequest("team", req); err != nil {
		return models.Team{}, false, err
	}

	var edited models.Team
	var found bool
	_, err := s.apply("edit_team", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		i := slices.IndexFunc(cur.Teams, func(t models.Team) bool { return t.ID == id })
		if i < 0 {
			return nil, 0, nil
		}
		found = true

		edited = cur.Teams[i]
		edited.Name = req.Name
		edited.Description = req.Description
		edited.ChannelLink = req.ChannelLink

		next := *cur
		next.Teams = slices.Clone(cur.Teams)
		next.Teams[i] = edited
		return &next, changedTeams, nil
	})
	return edited, found, err
}

// DeleteTeam removes a team and its id from every employee's team set
func (s *DirectoryService) DeleteTeam(id string) bool {
	var found bool
	_, _ = s.apply("delete_team", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		if _, ok := cur.Team(id); !ok {
			return nil, 0, nil
		}
		found = true

		next := &models.Snapshot{
			Employees: make([]models.Employee, len(cur.Employees)),
			Topics:    cur.Topics,
			Teams:     slices.DeleteFunc(slices.Clone(cur.Teams), func(t models.Team) bool { return t.ID == id }),
		}
		for i, e := range cur.Employees {
			e.Teams = models.RemoveIDs(e.Teams, id)
			next.Employees[i] = e
		}
		return next, changedEmployees | changedTeams, nil
	})
	return found
}
