package dimacs

import (
	"fmt"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/satlab/cdcl/internal/sat"
)

// LoadModels reads a models file — one model per line, DIMACS-literal
// style, as produced by reference solvers for the test corpus — and
// returns it as Assignments. Mirrors the teacher's ReadModels, retargeted
// at sat.Assignment instead of [][]bool.
func LoadModels(filename string) ([]sat.Assignment, error) {
	rc, err := open(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer rc.Close()

	b := &modelBuilder{}
	if err := extdimacs.ReadBuilder(rc, b); err != nil {
		return nil, fmt.Errorf("error parsing models file %q: %w", filename, err)
	}
	return b.models, nil
}

type modelBuilder struct {
	models []sat.Assignment
}

func (b *modelBuilder) Problem(_ string, _ int, _ int) error {
	return fmt.Errorf("model files should not have a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	values := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		values[i] = l > 0
	}
	b.models = append(b.models, sat.NewAssignment(values))
	return nil
}
