package batch

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/condax/axis"
	"github.com/teranos/condax/entity"
)

func sampleEntity() entity.Entity {
	return entity.Entity{
		Seed: 3,
		Character: axis.AssignmentOf(
			axis.Pair{Axis: "physique", Value: "wiry"},
			axis.Pair{Axis: "wealth", Value: "poor"},
			axis.Pair{Axis: "facial_signal", Value: "weathered"},
		),
		Facial: axis.AssignmentOf(axis.Pair{Axis: "facial_signal", Value: "weathered"}),
		Occupation: axis.AssignmentOf(
			axis.Pair{Axis: "legitimacy", Value: "tolerated"},
			axis.Pair{Axis: "visibility", Value: "discreet"},
		),
	}
}

func TestCSVHeader(t *testing.T) {
	assert.Equal(t, []string{
		"seed", "physique", "wealth", "health", "demeanor", "age", "facial_signal",
		"legitimacy", "visibility", "moral_load", "dependency", "risk_exposure", "full_prompt",
	}, CSVHeader())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []entity.Entity{sampleEntity()}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, CSVHeader(), records[0])
	assert.Equal(t, []string{
		"3", "wiry", "poor", "", "", "", "weathered",
		"tolerated", "discreet", "", "", "",
		"wiry, poor, weathered, tolerated, discreet",
	}, records[1])
}

func TestWriteCSV_Generated(t *testing.T) {
	entities, err := Generate(0, 20)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, entities))
	assert.Equal(t, 21, strings.Count(buf.String(), "\n"))
}

func TestWriteJSON(t *testing.T) {
	run := NewRun(3, 1)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, run, []entity.Entity{sampleEntity()}))

	var doc struct {
		Metadata map[string]any   `json:"metadata"`
		Entities []map[string]any `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, run.ID, doc.Metadata["id"])
	assert.Equal(t, "condax", doc.Metadata["generator"])
	assert.EqualValues(t, 3, doc.Metadata["start_seed"])
	require.Len(t, doc.Entities, 1)
	assert.Equal(t, map[string]any{"legitimacy": "tolerated", "visibility": "discreet"}, doc.Entities[0]["occupation"])

	// character keys keep generation order in the raw output
	assert.Contains(t, buf.String(), `"physique": "wiry"`)
	assert.Less(t, strings.Index(buf.String(), `"physique"`), strings.Index(buf.String(), `"wealth"`))
}

func TestWriteJSON_EmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewRun(0, 0), nil))
	assert.Contains(t, buf.String(), `"entities": []`)
}
