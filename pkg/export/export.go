package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/planday/core/model"
)

// WriteJSON writes the schedule blocks to w in JSON format.
func WriteJSON(w io.Writer, blocks []model.ScheduleBlock) error {
	enc := json.NewEncoder(w)
	return enc.Encode(blocks)
}

// WriteCSV writes the schedule blocks to w in CSV format.
func WriteCSV(w io.Writer, blocks []model.ScheduleBlock) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"start", "end", "title", "minutes", "impact", "deadline"}); err != nil {
		return err
	}
	for _, b := range blocks {
		rec := []string{
			b.Start,
			b.End,
			b.Title,
			strconv.Itoa(b.Minutes),
			strconv.FormatFloat(b.Impact, 'f', -1, 64),
			b.Deadline,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTasksCSV writes the raw task list to w in CSV format.
func WriteTasksCSV(w io.Writer, tasks []model.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "minutes", "impact", "deadline", "notes"}); err != nil {
		return err
	}
	for _, t := range tasks {
		rec := []string{
			strconv.FormatInt(t.ID, 10),
			t.Title,
			strconv.Itoa(t.Minutes),
			strconv.FormatFloat(t.Impact, 'f', -1, 64),
			t.Deadline,
			t.Notes,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
