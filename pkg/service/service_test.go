package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plctools/keptree/pkg/export"
	"github.com/plctools/keptree/pkg/hierarchy"
	"github.com/plctools/keptree/pkg/models"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	tmpDir := t.TempDir()
	svc, err := New(&Config{
		DataDir:    filepath.Join(tmpDir, "data"),
		Document:   filepath.Join(tmpDir, models.DefaultDocumentFile),
		ExportFile: filepath.Join(tmpDir, models.DefaultExportFile),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc, tmpDir
}

func TestCreateAndLoadDocument(t *testing.T) {
	svc, tmpDir := newTestService(t)
	docPath := filepath.Join(tmpDir, "plant.json")

	h, err := svc.CreateDocument(docPath, "Plant", false)
	require.NoError(t, err)
	assert.Equal(t, "Plant", h.Root().Name)

	// Refuses to clobber without force.
	_, err = svc.CreateDocument(docPath, "Other", false)
	assert.Error(t, err)

	loaded, err := svc.LoadDocument(docPath)
	require.NoError(t, err)
	assert.Equal(t, "Plant", loaded.Root().Name)

	// Registry saw the document.
	doc, err := svc.Registry.Get(docPath)
	require.NoError(t, err)
	assert.Equal(t, "Plant", doc.RootName)
}

func TestUpdateRoundTrips(t *testing.T) {
	svc, tmpDir := newTestService(t)
	docPath := filepath.Join(tmpDir, "plant.json")

	_, err := svc.CreateDocument(docPath, "Plant", false)
	require.NoError(t, err)

	err = svc.Update(docPath, func(h *hierarchy.Hierarchy) error {
		line, err := h.AddFolder(h.Root().ID, "Line1")
		if err != nil {
			return err
		}
		_, err = h.AddTag(line.ID, "Speed", models.TypeInteger)
		return err
	})
	require.NoError(t, err)

	h, err := svc.LoadDocument(docPath)
	require.NoError(t, err)
	records := h.Flatten()
	require.Len(t, records, 1)
	assert.Equal(t, "Line1.Speed", records[0].FullName)
}

func TestUpdateFailureWritesNothing(t *testing.T) {
	svc, tmpDir := newTestService(t)
	docPath := filepath.Join(tmpDir, "plant.json")

	_, err := svc.CreateDocument(docPath, "Plant", false)
	require.NoError(t, err)
	before, err := os.ReadFile(docPath)
	require.NoError(t, err)

	err = svc.Update(docPath, func(h *hierarchy.Hierarchy) error {
		if _, err := h.AddFolder(h.Root().ID, "Line1"); err != nil {
			return err
		}
		return h.Remove(h.Root().ID) // fails: root is immutable
	})
	require.Error(t, err)

	after, err := os.ReadFile(docPath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "failed update must not touch the file")
}

func TestLoadMalformedDocument(t *testing.T) {
	svc, tmpDir := newTestService(t)
	docPath := filepath.Join(tmpDir, "broken.json")
	require.NoError(t, os.WriteFile(docPath, []byte("{{nope"), 0644))

	_, err := svc.LoadDocument(docPath)
	assert.ErrorIs(t, err, hierarchy.ErrLoad)
}

func TestExport(t *testing.T) {
	svc, tmpDir := newTestService(t)

	h := hierarchy.New()
	line, _ := h.AddFolder(h.Root().ID, "Line1")
	_, err := h.AddTag(line.ID, "Speed", models.TypeInteger)
	require.NoError(t, err)
	_, err = h.AddTag(line.ID, "Running", models.TypeBoolean)
	require.NoError(t, err)

	outPath := filepath.Join(tmpDir, "tags.csv")
	count, err := svc.Export(h, outPath)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Line1.Speed,D0000,integer,1,R/W,100,,,,,,,,,,,", lines[1])
	assert.Equal(t, "Line1.Running,D0000.0,boolean,1,R/W,100,,,,,,,,,,,", lines[2])
}

func TestExportWithoutTagsWritesNoFile(t *testing.T) {
	svc, tmpDir := newTestService(t)

	h := hierarchy.New()
	_, err := h.AddFolder(h.Root().ID, "EmptyLine")
	require.NoError(t, err)

	outPath := filepath.Join(tmpDir, "tags.csv")
	_, err = svc.Export(h, outPath)
	assert.ErrorIs(t, err, export.ErrNoTags)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no file may be created for an empty export")
}

func TestResolve(t *testing.T) {
	svc, _ := newTestService(t)

	h := hierarchy.New()
	line, _ := h.AddFolder(h.Root().ID, "Line1")
	speed, _ := h.AddTag(line.ID, "Speed", models.TypeInteger)

	node, err := svc.Resolve(h, "Line1/Speed")
	require.NoError(t, err)
	assert.Equal(t, speed.ID, node.ID)

	root, err := svc.Resolve(h, "/")
	require.NoError(t, err)
	assert.Equal(t, h.Root().ID, root.ID)

	_, err = svc.Resolve(h, "Line1/Missing")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestResolveFolderRepairsTagTarget(t *testing.T) {
	svc, _ := newTestService(t)

	h := hierarchy.New()
	line, _ := h.AddFolder(h.Root().ID, "Line1")
	_, err := h.AddTag(line.ID, "Speed", models.TypeInteger)
	require.NoError(t, err)

	folder, err := svc.ResolveFolder(h, "Line1/Speed")
	require.NoError(t, err)
	assert.Equal(t, line.ID, folder.ID, "a tag target resolves to its parent folder")
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"", nil},
		{"/", nil},
		{".", nil},
		{"Line1", []string{"Line1"}},
		{"Line1/Speed", []string{"Line1", "Speed"}},
		{"/Line1/Speed/", []string{"Line1", "Speed"}},
		{" Line1 / Speed ", []string{"Line1", "Speed"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitPath(tt.path), "path %q", tt.path)
	}
}

func TestRenderTree(t *testing.T) {
	h := hierarchy.New()
	line, _ := h.AddFolder(h.Root().ID, "Line1")
	_, err := h.AddTag(line.ID, "Speed", models.TypeInteger)
	require.NoError(t, err)

	out := RenderTree(h)
	assert.Contains(t, out, "Root\n")
	assert.Contains(t, out, "Line1/")
	assert.Contains(t, out, "Speed [integer]")
}
