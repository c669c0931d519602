package ports

import "mosreport/internal/domain"

// ResearchRepository defines read access to the research folder tree
type ResearchRepository interface {
	// Discovery
	DiscoverEntities() ([]domain.Entity, error)
	IsEntity(path string) bool
	FindEntity(name string) (domain.Entity, error)

	// Snapshot access
	LatestSnapshot(entity domain.Entity, category domain.Category) (path string, found bool, err error)
	ListSnapshots(entity domain.Entity, category domain.Category) ([]string, error)
	ReadSnapshot(path string) ([]byte, error)

	// Path resolution
	EvaluationPath() string
}
