package service

import (
	"slices"

	"orgbook-backend/internal/database/models"
)

// CreateTopic adds a topic with an empty expert set
func (s *DirectoryService) CreateTopic(req *TopicRequest) (models.Topic, error) {
	req.trim()
	if err := s.validateRequest("topic", req); err != nil {
		return models.Topic{}, err
	}

	topic := models.Topic{
		ID:          models.NewTopicID(),
		Name:        req.Name,
		Description: req.Description,
		Experts:     []string{},
		Link:        req.Link,
		Teams:       []string{},
	}

	_, err := s.apply("create_topic", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		next := *cur
		next.Topics = append(slices.Clip(cur.Topics), topic)
		return &next, changedTopics, nil
	})
	return topic, err
}

// EditTopic replaces name, description and link of a topic.
// An unknown id is a no-op reported as found=false.
func (s *DirectoryService) EditTopic(id string, req *TopicRequest) (models.Topic, bool, error) {
	req.trim()
	if err := s.validateRequest("topic", req); err != nil {
		return models.Topic{}, false, err
	}

	var edited models.Topic
	var found bool
	_, err := s.apply("edit_topic", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		i := slices.IndexFunc(cur.Topics, func(t models.Topic) bool { return t.ID == id })
		if i < 0 {
			return nil, 0, nil
		}
		found = true

		edited = cur.Topics[i]
		edited.Name = req.Name
		edited.Description = req.Description
		edited.Link = req.Link

		next := *cur
		next.Topics = slices.Clone(cur.Topics)
		next.Topics[i] = edited
		return &next, changedTopics, nil
	})
	return edited, found, err
}

// DeleteTopic removes a topic and its id from every employee's topic set
func (s *DirectoryService) DeleteTopic(id string) bool {
	var found bool
	_, _ = s.apply("delete_topic", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		if _, ok := cur.Topic(id); !ok {
			return nil, 0, nil
		}
		found = true

		next := &models.Snapshot{
			Employees: make([]models.Employee, len(cur.Employees)),
			Topics:    slices.DeleteFunc(slices.Clone(cur.Topics), func(t models.Topic) bool { return t.ID == id }),
			Teams:     cur.Teams,
		}
		for i, e := range cur.Employees {
			e.Topics = models.RemoveIDs(e.Topics, id)
			next.Employees[i] = e
		}
		return next, changedEmployees | changedTopics, nil
	})
	return found
}
