//go:build integration
// +build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plctools/keptree/pkg/hierarchy"
	"github.com/plctools/keptree/pkg/models"
	"github.com/plctools/keptree/pkg/service"
)

func TestIntegration(t *testing.T) {
	// Skip if not running integration tests
	if os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=1 to run.")
	}

	tmpDir := t.TempDir()

	svc, err := service.New(&service.Config{
		DataDir:    filepath.Join(tmpDir, "data"),
		Document:   filepath.Join(tmpDir, "plant.json"),
		ExportFile: filepath.Join(tmpDir, "tags.csv"),
	}, nil)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	defer svc.Close()

	docPath := svc.Config.Document

	t.Run("BuildHierarchy", func(t *testing.T) {
		if _, err := svc.CreateDocument(docPath, "Plant", false); err != nil {
			t.Fatalf("Failed to create document: %v", err)
		}

		err := svc.Update(docPath, func(h *hierarchy.Hierarchy) error {
			line, err := h.AddFolder(h.Root().ID, "Line1")
			if err != nil {
				return err
			}
			if _, err := h.AddTag(line.ID, "Speed", models.TypeInteger); err != nil {
				return err
			}
			if _, err := h.AddTag(line.ID, "Running", models.TypeBoolean); err != nil {
				return err
			}
			_, err = h.Duplicate(line.ID)
			return err
		})
		if err != nil {
			t.Fatalf("Failed to build hierarchy: %v", err)
		}
	})

	t.Run("MoveAcrossFolders", func(t *testing.T) {
		err := svc.Update(docPath, func(h *hierarchy.Hierarchy) error {
			src, err := svc.Resolve(h, "Line1/Speed")
			if err != nil {
				return err
			}
			dest, err := svc.Resolve(h, "Line1 (1)")
			if err != nil {
				return err
			}
			return h.Move(src.ID, dest.ID)
		})
		if err != nil {
			t.Fatalf("Failed to move node: %v", err)
		}
	})

	t.Run("ExportCSV", func(t *testing.T) {
		h, err := svc.LoadDocument(docPath)
		if err != nil {
			t.Fatalf("Failed to load document: %v", err)
		}

		count, err := svc.Export(h, svc.Config.ExportFile)
		if err != nil {
			t.Fatalf("Failed to export: %v", err)
		}
		// Line1 keeps Running; "Line1 (1)" holds its two copies plus the
		// moved Speed.
		if count != 4 {
			t.Errorf("Expected 4 exported tags, got %d", count)
		}

		data, err := os.ReadFile(svc.Config.ExportFile)
		if err != nil {
			t.Fatalf("Failed to read export: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 5 {
			t.Fatalf("Expected header + 4 rows, got %d lines", len(lines))
		}
		if !strings.HasPrefix(lines[1], "Line1.Running,D0000.0,boolean,") {
			t.Errorf("Unexpected first row: %s", lines[1])
		}
	})

	t.Run("RecentDocuments", func(t *testing.T) {
		docs, err := svc.Registry.List()
		if err != nil {
			t.Fatalf("Failed to list documents: %v", err)
		}
		if len(docs) != 1 {
			t.Fatalf("Expected 1 recent document, got %d", len(docs))
		}
		if docs[0].RootName != "Plant" {
			t.Errorf("Expected root name Plant, got %s", docs[0].RootName)
		}
	})
}
