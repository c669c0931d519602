package commands

import (
	"context"

	"mosreport/internal/domain"
	"mosreport/internal/logger"
	"mosreport/internal/ports"
)

// BuildReportCommand composes one row per qualifying entity
type BuildReportCommand struct {
	repo ports.ResearchRepository
}

// NewBuildReportCommand creates a new BuildReportCommand
func NewBuildReportCommand(repo ports.ResearchRepository) *BuildReportCommand {
	return &BuildReportCommand{repo: repo}
}

// Execute discovers entities and builds the whole report before returning,
// so a failure never leaves a partial report behind.
func (c *BuildReportCommand) Execute(ctx context.Context) (*domain.Report, error) {
	entities, err := c.repo.DiscoverEntities()
	if err != nil {
		return nil, err
	}

	report := &domain.Report{Rows: make([]domain.Row, 0, len(entities))}
	for _, entity := range entities {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		values, _, err := extractValues(c.repo, entity)
		if err != nil {
			return nil, err
		}
		report.Rows = append(report.Rows, domain.NewRow(entity.Name, values))
	}

	logger.Log.Debugf("report built with %d rows", len(report.Rows))
	return report, nil
}
