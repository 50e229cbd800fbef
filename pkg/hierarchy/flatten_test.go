package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plctools/keptree/pkg/models"
)

func TestFlatten(t *testing.T) {
	h := New()
	line1, _ := h.AddFolder(h.Root().ID, "Line1")
	_, err := h.AddTag(line1.ID, "Speed", models.TypeInteger)
	require.NoError(t, err)
	station, _ := h.AddFolder(line1.ID, "Station2")
	_, err = h.AddTag(station.ID, "Running", models.TypeBoolean)
	require.NoError(t, err)
	_, err = h.AddTag(h.Root().ID, "PlantName", models.TypeString)
	require.NoError(t, err)

	records := h.Flatten()
	require.Len(t, records, h.TagCount())

	// Pre-order: Line1's tags before the root-level tag added later,
	// nested folder contents in place.
	assert.Equal(t, []models.TagRecord{
		{FullName: "Line1.Speed", DataType: models.TypeInteger},
		{FullName: "Line1.Station2.Running", DataType: models.TypeBoolean},
		{FullName: "PlantName", DataType: models.TypeString},
	}, records)
}

func TestFlattenExcludesRootName(t *testing.T) {
	h := NewWithRoot("Plant")
	line, _ := h.AddFolder(h.Root().ID, "Line1")
	_, err := h.AddTag(line.ID, "Speed", models.TypeInteger)
	require.NoError(t, err)

	records := h.Flatten()
	require.Len(t, records, 1)
	assert.Equal(t, "Line1.Speed", records[0].FullName)
}

func TestFlattenEmptyFolders(t *testing.T) {
	h := New()
	line, _ := h.AddFolder(h.Root().ID, "Line1")
	_, err := h.AddFolder(line.ID, "Station")
	require.NoError(t, err)

	records := h.Flatten()
	assert.Empty(t, records, "folders produce no records")
}

func TestFlattenIsReproducible(t *testing.T) {
	h := New()
	line, _ := h.AddFolder(h.Root().ID, "Line1")
	_, err := h.AddTag(line.ID, "A", models.TypeString)
	require.NoError(t, err)
	_, err = h.AddTag(line.ID, "B", models.TypeBoolean)
	require.NoError(t, err)

	assert.Equal(t, h.Flatten(), h.Flatten())
}

func TestFindByPath(t *testing.T) {
	h := New()
	line, _ := h.AddFolder(h.Root().ID, "Line1")
	speed, _ := h.AddTag(line.ID, "Speed", models.TypeInteger)

	node, ok := h.FindByPath([]string{"line1", "SPEED"})
	require.True(t, ok, "segment matching is case-insensitive")
	assert.Equal(t, speed.ID, node.ID)

	root, ok := h.FindByPath(nil)
	require.True(t, ok)
	assert.Equal(t, h.Root().ID, root.ID)

	_, ok = h.FindByPath([]string{"Line1", "Missing"})
	assert.False(t, ok)
}
