package batch

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/teranos/condax/domains/character"
	"github.com/teranos/condax/domains/occupation"
	"github.com/teranos/condax/entity"
	"github.com/teranos/condax/errors"
)

// Document is the JSON export layout
type Document struct {
	Metadata Run             `json:"metadata"`
	Entities []entity.Entity `json:"entities"`
}

// WriteJSON writes run metadata and entities as an indented JSON document
func WriteJSON(w io.Writer, run Run, entities []entity.Entity) error {
	if entities == nil {
		entities = []entity.Entity{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Metadata: run, Entities: entities}); err != nil {
		return errors.Wrap(err, "encode batch json")
	}
	return nil
}

// CSVHeader returns the export columns: seed, the character axes, the facial
// signal, the occupation axes and the combined prompt
func CSVHeader() []string {
	header := []string{"seed"}
	for _, a := range character.AvailableAxes() {
		if a != character.FacialSignal {
			header = append(header, a)
		}
	}
	header = append(header, character.FacialSignal)
	header = append(header, occupation.AvailableAxes()...)
	return append(header, "full_prompt")
}

// WriteCSV writes one row per entity. Axes that were not drawn are empty.
func WriteCSV(w io.Writer, entities []entity.Entity) error {
	cw := csv.NewWriter(w)
	header := CSVHeader()
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	charAxes := map[string]bool{}
	for _, a := range character.AvailableAxes() {
		charAxes[a] = true
	}

	row := make([]string, len(header))
	for _, e := range entities {
		row[0] = strconv.FormatInt(e.Seed, 10)
		for i, col := range header[1 : len(header)-1] {
			switch {
			case col == character.FacialSignal:
				row[i+1] = e.Facial.Value(col)
			case charAxes[col]:
				row[i+1] = e.Character.Value(col)
			default:
				row[i+1] = e.Occupation.Value(col)
			}
		}
		row[len(row)-1] = e.Prompt()
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write csv row for seed %d", e.Seed)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}
