// Package dimacs adapts DIMACS CNF files to sat.ClauseDatabase. Parsing
// itself is delegated to github.com/rhartert/dimacs — the same dependency
// the teacher wraps in parsers/parsers.go — rather than hand-rolled here:
// that library's ReadBuilder treats a clause as a sequence of integers
// terminated by 0 and tolerates clauses split across lines, which is the
// "terminating 0" convention spec.md's §9 open question asks an
// implementer to pick and document (as opposed to the stricter
// one-clause-per-line, drop-last-two-tokens form an earlier prototype
// used).
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/satlab/cdcl/internal/sat"
)

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses filename into a fresh ClauseDatabase sized from the
// instance's header line. gzipped selects transparent gzip decompression,
// matching the teacher's .cnf.gz support.
func LoadDIMACS(filename string, gzipped bool) (*sat.ClauseDatabase, error) {
	rc, err := open(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer rc.Close()

	b := &builder{}
	if err := extdimacs.ReadBuilder(rc, b); err != nil {
		return nil, fmt.Errorf("error parsing DIMACS instance: %w", err)
	}
	if b.db == nil {
		return nil, fmt.Errorf("missing problem line")
	}
	return b.db, nil
}

// builder adapts extdimacs.Builder callbacks to ClauseDatabase.AddOriginal.
type builder struct {
	db *sat.ClauseDatabase
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("instance of type %q are not supported", problem)
	}
	b.db = sat.NewClauseDatabase(nVars)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	if b.db == nil {
		return fmt.Errorf("clause encountered before problem line")
	}
	raw := make([]int, len(tmpClause))
	copy(raw, tmpClause)
	return b.db.AddOriginal(raw)
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}
