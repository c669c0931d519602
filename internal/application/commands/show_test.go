package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"mosreport/internal/adapters/filesystem"
	"mosreport/internal/application"
	"mosreport/internal/domain"
)

func TestShowEntityCommand_Validate(t *testing.T) {
	tests := []struct {
		name       string
		entityName string
		wantErr    bool
	}{
		{name: "valid name", entityName: "ACME", wantErr: false},
		{name: "empty name", entityName: "", wantErr: true},
		{name: "path traversal", entityName: "../ACME", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &ShowEntityCommand{Name: tt.entityName}
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShowEntityCommand_Execute(t *testing.T) {
	root := setupTestRoot(t)
	files := acmeSnapshots()
	delete(files, domain.CategoryMoat)
	createEntity(t, root, "ACME", files)

	detail, err := NewShowEntityCommand(filesystem.NewRepository(root), "ACME").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	wantCategories := []CategoryResult{
		{Category: domain.CategoryData, File: "2024-02-01.json", Value: "101.5"},
		{Category: domain.CategoryScreen, File: "2024-02-01.json", Value: "7"},
		{Category: domain.CategoryManagement, File: "2024-02-01.json", Value: "5"},
		{Category: domain.CategoryMoat, File: "", Value: "0"},
		{Category: domain.CategoryMOS, File: "2024-02-01.json", Value: "90 / 85"},
	}
	if diff := cmp.Diff(wantCategories, detail.Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}

	wantHistory := map[domain.Category]int{
		domain.CategoryData:       2,
		domain.CategoryScreen:     1,
		domain.CategoryManagement: 1,
		domain.CategoryMoat:       0,
		domain.CategoryMOS:        1,
	}
	if diff := cmp.Diff(wantHistory, detail.History); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	if got, want := detail.Row.String(), "ACME, 101.5, 7, 5, 0, 12, 90, 85"; got != want {
		t.Errorf("row = %q, want %q", got, want)
	}
}

func TestShowEntityCommand_NotFound(t *testing.T) {
	root := setupTestRoot(t)
	createEntity(t, root, "NOTASTOCK", nil, domain.CategoryMoat)

	repo := filesystem.NewRepository(root)

	for _, name := range []string{"NOTASTOCK", "GHOST"} {
		_, err := NewShowEntityCommand(repo, name).Execute(context.Background())
		if !errors.Is(err, application.ErrEntityNotFound) {
			t.Errorf("%s: expected ErrEntityNotFound, got %v", name, err)
		}
	}
}

func TestListEntitiesCommand(t *testing.T) {
	root := setupTestRoot(t)
	createEntity(t, root, "ACME", nil)
	createEntity(t, root, "BETA", nil)
	createEntity(t, root, "NOTASTOCK", nil, domain.CategoryMoat)

	entities, err := NewListEntitiesCommand(filesystem.NewRepository(root)).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var names []string
	for _, e := range entities {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff([]string{"ACME", "BETA"}, names); diff != "" {
		t.Errorf("entities mismatch (-want +got):\n%s", diff)
	}
}
