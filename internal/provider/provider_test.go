package provider

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

func TestFileSource_ReadsRecords(t *testing.T) {
	records := []model.BusinessRecord{
		{ID: "b1", Name: "Acme"},
		{ID: "b2", Name: "Zenith", Source: model.SourceOutscraper},
	}
	path := filepath.Join(t.TempDir(), "records.json")
	data, err := json.Marshal(records)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := FileSource{Path: path}.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	// Records without a source get tagged as file-sourced.
	assert.Equal(t, model.SourceFile, got[0].Source)
	assert.Equal(t, model.SourceOutscraper, got[1].Source)
}

func TestFileSource_EmptyFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	_, err := FileSource{Path: path}.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "absent.json")}.Fetch(context.Background())
	assert.Error(t, err)
}

func TestGenerator_Deterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	first, err := Generator{Count: 15, Seed: 7, Now: now}.Fetch(context.Background())
	require.NoError(t, err)
	second, err := Generator{Count: 15, Seed: 7, Now: now}.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_SeedChangesOutput(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	first, err := Generator{Count: 15, Seed: 7, Now: now}.Fetch(context.Background())
	require.NoError(t, err)
	other, err := Generator{Count: 15, Seed: 8, Now: now}.Fetch(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first, other)
}

func TestGenerator_Count(t *testing.T) {
	records, err := Generator{Count: 33, Seed: 1}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 33)
}

func TestGenerator_DefaultCount(t *testing.T) {
	records, err := Generator{Seed: 1}.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 20)
}

func TestGenerator_WellFormedRecords(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	records, err := Generator{Count: 40, Seed: 3, Now: now}.Fetch(context.Background())
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, r := range records {
		assert.NotEmpty(t, r.ID)
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
		assert.Equal(t, model.SourceSynthetic, r.Source)
		assert.NotEmpty(t, r.Name)
		assert.GreaterOrEqual(t, r.Rating, 0.0)
		assert.LessOrEqual(t, r.Rating, 5.0)
		for _, rv := range r.Reviews {
			assert.GreaterOrEqual(t, rv.Rating, 1)
			assert.LessOrEqual(t, rv.Rating, 5)
			assert.False(t, rv.Date.After(now))
		}
	}
}
