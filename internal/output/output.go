// Package output implements the assignment writer of spec.md's §4.5 (the
// DIMACS reader lives in internal/dimacs) plus the supplemented
// pretty-printer from original_source/SAT_solver_CDCL.py's
// prettyPrintResult.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/satlab/cdcl/internal/sat"
)

// WriteDIMACS writes the result in the format spec §6 requires: on Sat, a
// single line of space-separated signed integers (positive = true); on
// Unsat, the single character "0".
func WriteDIMACS(w io.Writer, outcome sat.Outcome, assignment sat.Assignment) error {
	if outcome != sat.Sat {
		_, err := io.WriteString(w, "0\n")
		return err
	}

	parts := make([]string, assignment.NumVars())
	for i, l := range assignment.Literals() {
		parts[i] = strconv.Itoa(l)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

// WritePretty prints the assignment in chunked columnar form, division
// values per line, grounded in original_source's prettyPrintResult. It is
// purely a diagnostic convenience behind the CLI's -pretty flag; WriteDIMACS
// is the contractual output.
func WritePretty(w io.Writer, outcome sat.Outcome, assignment sat.Assignment, division int) error {
	if outcome != sat.Sat {
		_, err := fmt.Fprintln(w, "No solution!")
		return err
	}
	if division <= 0 {
		division = 6
	}

	n := assignment.NumVars()
	for start := 0; start < n; start += division {
		end := start + division
		if end > n {
			end = n
		}
		cols := make([]string, 0, end-start)
		for v := start; v < end; v++ {
			cols = append(cols, fmt.Sprintf("%d: %t", v+1, assignment.Value(v)))
		}
		if _, err := fmt.Fprintln(w, strings.Join(cols, ",\t")); err != nil {
			return err
		}
	}
	return nil
}
