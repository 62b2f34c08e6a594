package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/haikyu-sim/gosim/report"
	"github.com/signalnine/haikyu-sim/gosim/simulation"
)

func TestWriteReportToFile(t *testing.T) {
	outputPath = filepath.Join(t.TempDir(), "report.json")
	defer func() { outputPath = "" }()

	rep := &simulation.Report{RunID: "run", Seed: 9, Aggregate: simulation.Aggregate{"x": 0.5}}
	require.NoError(t, writeReport(rep, report.FormatJSON))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "run", doc["run_id"])
	assert.EqualValues(t, 9, doc["seed"])
}

func TestWriteReportCreateFails(t *testing.T) {
	outputPath = filepath.Join(t.TempDir(), "missing", "report.json")
	defer func() { outputPath = "" }()

	err := writeReport(&simulation.Report{}, report.FormatJSON)
	assert.ErrorContains(t, err, "create output")
}
