// SPDX-License-Identifier: MIT

package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// csvHeader is the first row written by WriteCSV.
var csvHeader = []string{"method", "precision", "count", "correct_digits", "waste_digits", "walltime_ns"}

// Summary is the best accuracy reached for one (method, count) pair and the
// smallest width that reaches it.
type Summary struct {
	Method       string
	Count        int
	MaxCorrect   int
	MinPrecision uint
}

// Analyze reduces records to one Summary per (method, count), ordered by
// first appearance of the method and then by ascending count.
func Analyze(records []Record) []Summary {
	type key struct {
		method string
		count  int
	}
	best := make(map[key]Summary)
	var order []string
	for _, r := range records {
		m := string(r.Method)
		if !slices.Contains(order, m) {
			order = append(order, m)
		}
		k := key{m, r.Count}
		s, ok := best[k]
		switch {
		case !ok, r.Correct > s.MaxCorrect:
			best[k] = Summary{Method: m, Count: r.Count, MaxCorrect: r.Correct, MinPrecision: r.Precision}
		case r.Correct == s.MaxCorrect && r.Precision < s.MinPrecision:
			s.MinPrecision = r.Precision
			best[k] = s
		}
	}

	out := make([]Summary, 0, len(best))
	for _, s := range best {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b Summary) int {
		if a.Method != b.Method {
			return slices.Index(order, a.Method) - slices.Index(order, b.Method)
		}
		return a.Count - b.Count
	})

	return out
}

// WriteCSV writes one row per record after a header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			string(r.Method),
			strconv.FormatUint(uint64(r.Precision), 10),
			strconv.Itoa(r.Count),
			strconv.Itoa(r.Correct),
			strconv.Itoa(r.Waste),
			strconv.FormatInt(r.Walltime.Nanoseconds(), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSummary writes the analysis table, one line per Summary.
func WriteSummary(w io.Writer, summaries []Summary) error {
	if _, err := fmt.Fprintln(w, "method, iterations, precision, max_digits"); err != nil {
		return err
	}
	for _, s := range summaries {
		if _, err := fmt.Fprintf(w, "%s %d %d %d\n", s.Method, s.Count, s.MinPrecision, s.MaxCorrect); err != nil {
			return err
		}
	}

	return nil
}
