package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/schedlab/rtfeas/core/model"
)

// WriteJSON writes the feasibility results to w in JSON format.
func WriteJSON(w io.Writer, results []model.FeasibilityResult) error {
	enc := json.NewEncoder(w)
	return enc.Encode(results)
}

// WriteCSV writes the feasibility results to w in CSV format.
func WriteCSV(w io.Writer, results []model.FeasibilityResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"test", "verdict", "utilization", "bound"}); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{
			r.Test,
			r.Verdict.String(),
			strconv.FormatFloat(r.Utilization, 'f', -1, 64),
			strconv.FormatFloat(r.Bound, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
