package commands

import (
	"context"

	"mosreport/internal/application"
	"mosreport/internal/domain"
	"mosreport/internal/ports"
)

// EntityDetail explains how one entity's row was put together
type EntityDetail struct {
	Entity     domain.Entity
	Categories []CategoryResult
	History    map[domain.Category]int // Snapshot count per category
	Row        domain.Row
}

// ShowEntityCommand inspects a single entity
type ShowEntityCommand struct {
	repo ports.ResearchRepository
	Name string
}

// NewShowEntityCommand creates a new ShowEntityCommand
func NewShowEntityCommand(repo ports.ResearchRepository, name string) *ShowEntityCommand {
	return &ShowEntityCommand{
		repo: repo,
		Name: name,
	}
}

// Validate checks the command inputs
func (c *ShowEntityCommand) Validate() error {
	return application.ValidateEntityName("entityName", c.Name)
}

// Execute runs the show entity command
func (c *ShowEntityCommand) Execute(ctx context.Context) (*EntityDetail, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entity, err := c.repo.FindEntity(c.Name)
	if err != nil {
		return nil, err
	}

	values, results, err := extractValues(c.repo, entity)
	if err != nil {
		return nil, err
	}

	history := make(map[domain.Category]int, len(domain.RequiredCategories))
	for _, category := range domain.RequiredCategories {
		names, err := c.repo.ListSnapshots(entity, category)
		if err != nil {
			return nil, err
		}
		history[category] = len(names)
	}

	return &EntityDetail{
		Entity:     entity,
		Categories: results,
		History:    history,
		Row:        domain.NewRow(entity.Name, values),
	}, nil
}
