package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/satlab/cdcl/internal/dimacs"
	"github.com/satlab/cdcl/internal/output"
	"github.com/satlab/cdcl/internal/sat"
)

var (
	flagCPUProfile   = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
	flagMemProfile   = flag.Bool("memprof", false, "save pprof memory profile in memprof")
	flagTimeout      = flag.Duration("timeout", 0, "wall-clock search budget (0 = no limit)")
	flagMaxConflicts = flag.Int64("max-conflicts", -1, "conflict budget before giving up (-1 = no limit)")
	flagHeuristic    = flag.String("heuristic", "baseline", `decision heuristic: "baseline" or "vsids"`)
	flagPretty       = flag.Bool("pretty", false, "also print a columnar assignment to stdout")
	flagDebug        = flag.Bool("debug", false, "enable invariant assertions after every undo")
)

type config struct {
	instanceFile string
	outputFile   string
	memProfile   bool
	cpuProfile   bool
	timeout      time.Duration
	maxConflicts int64
	heuristic    string
	pretty       bool
	debug        bool
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() < 2 {
		return nil, fmt.Errorf("usage: solver [flags] <input.cnf> <output.txt>")
	}
	if *flagHeuristic != "baseline" && *flagHeuristic != "vsids" {
		return nil, fmt.Errorf("unknown -heuristic %q", *flagHeuristic)
	}
	return &config{
		instanceFile: flag.Arg(0),
		outputFile:   flag.Arg(1),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		timeout:      *flagTimeout,
		maxConflicts: *flagMaxConflicts,
		heuristic:    *flagHeuristic,
		pretty:       *flagPretty,
		debug:        *flagDebug,
	}, nil
}

func newHeuristic(name string, numVars int) sat.Heuristic {
	if name == "vsids" {
		return sat.NewVSIDSHeuristic(numVars, 0.95)
	}
	return sat.BaselineHeuristic{}
}

// run parses, solves, and writes the result. Its return value is the
// process exit code: 0 (SAT or UNSAT decided), 1 (bad arguments or parse
// failure — returned as an error instead), 2 (Unknown, budget exhausted).
func run(cfg *config) (int, error) {
	db, err := dimacs.LoadDIMACS(cfg.instanceFile, false)
	if err != nil {
		return 1, fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Printf("c variables: %d\n", db.NumVars())
	fmt.Printf("c clauses:   %d\n", db.NumUnsat())

	driver := sat.NewDriver(db, sat.Options{
		Heuristic:    newHeuristic(cfg.heuristic, db.NumVars()),
		MaxConflicts: cfg.maxConflicts,
		Timeout:      cfg.timeout,
		Debug:        cfg.debug,
	})

	t := time.Now()
	outcome, assignment := driver.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d\n", driver.TotalConflicts)
	fmt.Printf("c decisions:  %d\n", driver.TotalDecisions)
	fmt.Printf("c status:     %s\n", outcome.String())

	if outcome == sat.UnknownOutcome {
		return 2, nil
	}

	out, err := os.Create(cfg.outputFile)
	if err != nil {
		return 1, fmt.Errorf("could not create output file: %w", err)
	}
	defer out.Close()

	if err := output.WriteDIMACS(out, outcome, assignment); err != nil {
		return 1, fmt.Errorf("could not write result: %w", err)
	}
	if cfg.pretty {
		if err := output.WritePretty(os.Stdout, outcome, assignment, 6); err != nil {
			return 1, fmt.Errorf("could not print result: %w", err)
		}
	}

	return 0, nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
	}

	code, err := run(cfg)
	if err != nil {
		log.Print(err)
	}

	if cfg.cpuProfile {
		pprof.StopCPUProfile()
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	os.Exit(code)
}
