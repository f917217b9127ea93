// Command gen-cnf writes a randomly generated DIMACS CNF instance, the Go
// counterpart of original_source/tests/random/generate_cnf.py: uniform
// variable choice without replacement within a clause, uniform polarity.
// It is offline test-corpus tooling, not part of the solver itself.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `gen-cnf: write a randomly generated DIMACS CNF instance.

Usage:

  gen-cnf [flags] <output file> <variables> <clauses> <clause size>

Flags:
`)
		flag.PrintDefaults()
	}
	seed := flag.Int64("seed", 0, "PRNG seed (0 seeds from the process ID)")
	seqFile := flag.String("seq-file", "", `path to a counter file; if set, its number is
appended to the output filename and incremented on each run (mirrors the
original script's append_suffix convention)`)
	flag.Parse()

	if flag.NArg() < 4 {
		flag.Usage()
		os.Exit(1)
	}

	numVars, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		log.Fatalf("bad variable count %q: %s", flag.Arg(1), err)
	}
	numClauses, err := strconv.Atoi(flag.Arg(2))
	if err != nil {
		log.Fatalf("bad clause count %q: %s", flag.Arg(2), err)
	}
	clauseSize, err := strconv.Atoi(flag.Arg(3))
	if err != nil {
		log.Fatalf("bad clause size %q: %s", flag.Arg(3), err)
	}
	if clauseSize > numVars {
		log.Fatalf("clause size %d cannot exceed variable count %d (clauses draw distinct variables)", clauseSize, numVars)
	}

	outPath, err := resolveOutputPath(flag.Arg(0), *seqFile)
	if err != nil {
		log.Fatal(err)
	}

	s := *seed
	if s == 0 {
		s = int64(os.Getpid())
	}
	rng := rand.New(rand.NewSource(s))

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeCNF(w, rng, numVars, numClauses, clauseSize); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

// resolveOutputPath appends the next sequence number read from seqFile, if
// one is given, the same numbered-suffix behavior as append_suffix in the
// original script.
func resolveOutputPath(out, seqFile string) (string, error) {
	ext := filepath.Ext(out)
	base := strings.TrimSuffix(out, ext)
	if ext == "" {
		ext = ".cnf"
	}

	if seqFile == "" {
		return base + ext, nil
	}

	n := 0
	if data, err := os.ReadFile(seqFile); err == nil {
		n, _ = strconv.Atoi(strings.TrimSpace(string(data)))
	}
	if err := os.WriteFile(seqFile, []byte(strconv.Itoa(n+1)), 0o644); err != nil {
		return "", fmt.Errorf("could not update sequence file: %w", err)
	}
	return fmt.Sprintf("%s_%d%s", base, n, ext), nil
}

// writeCNF generates numClauses clauses of clauseSize distinct variables
// each, uniformly negated, over numVars variables (1-indexed).
func writeCNF(w *bufio.Writer, rng *rand.Rand, numVars, numClauses, clauseSize int) error {
	if _, err := fmt.Fprintln(w, "c randomly generated formula in CNF"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "c clause size: %d\n", clauseSize); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "c"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", numVars, numClauses); err != nil {
		return err
	}

	indices := make([]int, numVars)
	for i := range indices {
		indices[i] = i + 1
	}

	for i := 0; i < numClauses; i++ {
		rng.Shuffle(len(indices), func(a, b int) { indices[a], indices[b] = indices[b], indices[a] })
		var sb strings.Builder
		for _, v := range indices[:clauseSize] {
			if rng.Intn(2) == 0 {
				v = -v
			}
			fmt.Fprintf(&sb, "%d ", v)
		}
		sb.WriteString("0\n")
		if _, err := w.WriteString(sb.String()); err != nil {
			return err
		}
	}
	return nil
}
