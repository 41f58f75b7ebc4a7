package parquet

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/debtspot/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertHotspotRecords(t *testing.T) {
	scored := schema.NewRecord("pkg/app.py", schema.FileKind)
	scored.HalsteadVolume = 120
	scored.CyclomaticComplexity = 4
	scored.LinesOfCode = 80
	scored.CommentsPercentage = 12.5
	scored.MaintainabilityIndex = 45
	scored.ChangesCount = 9

	unset := schema.NewRecord("pkg/broken.py", schema.FileKind)

	records := []schema.HotspotRecord{
		{Record: *scored, HotspotIndex: 20},
		{Record: *unset, HotspotIndex: math.NaN()},
	}

	rows := ConvertHotspotRecords(records)
	require.Len(t, rows, 2)

	assert.Equal(t, int32(1), rows[0].Rank)
	assert.Equal(t, "pkg/app.py", rows[0].Path)
	assert.Equal(t, "file", rows[0].PathType)
	require.NotNil(t, rows[0].HotspotIndex)
	assert.Equal(t, 20.0, *rows[0].HotspotIndex)
	assert.Equal(t, "Healthy", rows[0].Label)

	// Unset metrics become nulls
	assert.Nil(t, rows[1].HalsteadVolume)
	assert.Nil(t, rows[1].MaintainabilityIndex)
	assert.Nil(t, rows[1].HotspotIndex)
	assert.Equal(t, "Unset", rows[1].Label)
}

func TestConvertHotspotRecordsInfinity(t *testing.T) {
	rec := schema.NewRecord("pkg/dense.py", schema.FileKind)
	rec.MaintainabilityIndex = 0

	rows := ConvertHotspotRecords([]schema.HotspotRecord{{Record: *rec, HotspotIndex: math.Inf(1)}})
	require.Len(t, rows, 1)

	// Infinity has no parquet representation, so it exports as null
	assert.Nil(t, rows[0].HotspotIndex)
	require.NotNil(t, rows[0].MaintainabilityIndex)
	assert.Equal(t, 0.0, *rows[0].MaintainabilityIndex)
	assert.Equal(t, "Critical", rows[0].Label)
}

func TestWriteHotspotRecordsParquet(t *testing.T) {
	mi := 45.0
	index := 20.0
	rows := []HotspotRow{
		{Rank: 1, Path: "pkg/app.py", PathType: "file", MaintainabilityIndex: &mi, HotspotIndex: &index, ChangesCount: 9, Label: "Healthy"},
		{Rank: 2, Path: "pkg/broken.py", PathType: "file", ChangesCount: 2, Label: "Unset"},
	}

	outputPath := filepath.Join(t.TempDir(), "report.parquet")
	require.NoError(t, WriteHotspotRecordsParquet(rows, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Read the file back to verify round-trip integrity
	readBack, err := parquet.ReadFile[HotspotRow](outputPath)
	require.NoError(t, err)
	require.Len(t, readBack, 2)
	assert.Equal(t, "pkg/app.py", readBack[0].Path)
	require.NotNil(t, readBack[0].HotspotIndex)
	assert.Equal(t, 20.0, *readBack[0].HotspotIndex)
	assert.Nil(t, readBack[1].HotspotIndex)
}
