package commands

import (
	"context"

	"mosreport/internal/domain"
	"mosreport/internal/ports"
)

// ListEntitiesCommand lists all qualifying entities
type ListEntitiesCommand struct {
	repo ports.ResearchRepository
}

// NewListEntitiesCommand creates a new ListEntitiesCommand
func NewListEntitiesCommand(repo ports.ResearchRepository) *ListEntitiesCommand {
	return &ListEntitiesCommand{repo: repo}
}

// Execute runs the list entities command
func (c *ListEntitiesCommand) Execute(ctx context.Context) ([]domain.Entity, error) {
	return c.repo.DiscoverEntities()
}
