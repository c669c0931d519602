package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mosreport/internal/application"
	"mosreport/internal/domain"
	"mosreport/internal/logger"
)

// EvaluationDir is the folder under the root that holds one folder per entity
const EvaluationDir = "Evaluation"

// Repository implements ports.ResearchRepository using the filesystem
type Repository struct {
	rootPath string
}

// NewRepository creates a new filesystem repository
func NewRepository(rootPath string) *Repository {
	return &Repository{rootPath: expandHome(rootPath)}
}

// expandHome expands a leading ~ or ~/ to the home directory. Other forms
// such as ~user are left as written.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Log.WithError(err).Warnf("cannot expand %s, using it as written", path)
		return path
	}
	return filepath.Join(home, path[1:])
}

// RootPath returns the expanded root path
func (r *Repository) RootPath() string {
	return r.rootPath
}

// EvaluationPath returns the folder scanned for entities
func (r *Repository) EvaluationPath() string {
	return filepath.Join(r.rootPath, EvaluationDir)
}

// DiscoverEntities returns every qualifying entity under Evaluation, in listing order
func (r *Repository) DiscoverEntities() ([]domain.Entity, error) {
	basePath := r.EvaluationPath()

	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", application.ErrEvaluationNotFound, basePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", application.ErrEvaluationNotFound, basePath)
	}

	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read evaluation folder: %w", err)
	}

	var entities []domain.Entity
	for _, entry := range entries {
		entityPath := filepath.Join(basePath, entry.Name())
		if !r.IsEntity(entityPath) {
			logger.Log.WithField("entity", entry.Name()).Debug("skipping folder without required categories")
			continue
		}

		entities = append(entities, domain.Entity{
			Name: entry.Name(),
			Path: entityPath,
		})
	}

	logger.Log.Debugf("discovered %d entities in %s", len(entities), basePath)
	return entities, nil
}

// IsEntity reports whether path is a directory holding every required category folder
func (r *Repository) IsEntity(path string) bool {
	if !isDir(path) {
		return false
	}

	for _, category := range domain.RequiredCategories {
		if !isDir(filepath.Join(path, category.String())) {
			return false
		}
	}

	return true
}

// FindEntity resolves a qualifying entity by folder name
func (r *Repository) FindEntity(name string) (domain.Entity, error) {
	if err := application.ValidateEntityName("entityName", name); err != nil {
		return domain.Entity{}, err
	}

	entityPath := filepath.Join(r.EvaluationPath(), name)
	if !r.IsEntity(entityPath) {
		return domain.Entity{}, fmt.Errorf("%w: %s", application.ErrEntityNotFound, name)
	}

	return domain.Entity{Name: name, Path: entityPath}, nil
}

// LatestSnapshot returns the full path of the current snapshot in a category.
// An empty category is reported as not found, not as an error.
func (r *Repository) LatestSnapshot(entity domain.Entity, category domain.Category) (string, bool, error) {
	names, err := r.snapshotNames(entity, category)
	if err != nil {
		return "", false, err
	}

	latest, found := domain.LatestSnapshot(names)
	if !found {
		return "", false, nil
	}

	return filepath.Join(entity.Path, category.String(), latest), true, nil
}

// ListSnapshots returns every snapshot file name in a category, newest first
func (r *Repository) ListSnapshots(entity domain.Entity, category domain.Category) ([]string, error) {
	names, err := r.snapshotNames(entity, category)
	if err != nil {
		return nil, err
	}
	return domain.SortSnapshotsDesc(names), nil
}

// ReadSnapshot reads a snapshot file
func (r *Repository) ReadSnapshot(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

// Helper methods

func (r *Repository) snapshotNames(entity domain.Entity, category domain.Category) ([]string, error) {
	categoryPath := filepath.Join(entity.Path, category.String())

	entries, err := os.ReadDir(categoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s for %s: %w", category, entity.Name, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
