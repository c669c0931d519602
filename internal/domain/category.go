package domain

import (
	"slices"
	"strings"
)

// Category is one of the fixed analysis stages kept under every entity folder
type Category string

const (
	CategoryData       Category = "01-data"
	CategoryScreen     Category = "02-screen"
	CategoryManagement Category = "03-management"
	CategoryMoat       Category = "04-moat"
	CategoryMOS        Category = "05-mos"
)

// SnapshotExt is the extension a snapshot file must carry to be considered
const SnapshotExt = ".json"

// RequiredCategories lists the subdirectories an entity folder must contain
var RequiredCategories = []Category{
	CategoryData,
	CategoryScreen,
	CategoryManagement,
	CategoryMoat,
	CategoryMOS,
}

func (c Category) String() string {
	return string(c)
}

// IsSnapshotName reports whether a file name looks like a snapshot
func IsSnapshotName(name string) bool {
	return strings.HasSuffix(name, SnapshotExt)
}

// LatestSnapshot picks the current snapshot out of a directory listing.
// Filenames carry a sortable date prefix, so the lexicographically greatest
// name is the most recent one. Returns false when no name matches.
func LatestSnapshot(names []string) (string, bool) {
	var latest string
	found := false

	for _, name := range names {
		if !IsSnapshotName(name) {
			continue
		}
		if !found || strings.Compare(name, latest) > 0 {
			latest = name
			found = true
		}
	}

	return latest, found
}

// SortSnapshotsDesc orders snapshot names newest first, dropping non-snapshots
func SortSnapshotsDesc(names []string) []string {
	snapshots := make([]string, 0, len(names))
	for _, name := range names {
		if IsSnapshotName(name) {
			snapshots = append(snapshots, name)
		}
	}

	slices.SortFunc(snapshots, func(a, b string) int {
		return strings.Compare(b, a)
	})

	return snapshots
}
