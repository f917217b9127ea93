// Command prune-corpus randomly deletes files from a directory down to a
// target count, the Go counterpart of original_source/testPrune.py: used
// to keep a generated test-instance corpus from growing without bound.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `prune-corpus: randomly delete files down to a target count.

Usage:

  prune-corpus <folder> <final number of files>
`)
	}
	seed := flag.Int64("seed", 0, "PRNG seed (0 seeds from the process ID)")
	dryRun := flag.Bool("n", false, "print what would be removed without deleting")
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	folder := flag.Arg(0)
	keep, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		log.Fatalf("bad file count %q: %s", flag.Arg(1), err)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		log.Fatal(err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	s := *seed
	if s == 0 {
		s = int64(os.Getpid())
	}
	toRemove, err := chooseRemoval(rand.New(rand.NewSource(s)), names, keep)
	if err != nil {
		log.Fatal(err)
	}

	for _, name := range toRemove {
		path := filepath.Join(folder, name)
		if *dryRun {
			fmt.Println("would remove", path)
			continue
		}
		if err := os.Remove(path); err != nil {
			log.Fatal(err)
		}
	}
}

// chooseRemoval picks len(names)-keep names to delete, sampling without
// replacement exactly like random.sample in the original script.
func chooseRemoval(rng *rand.Rand, names []string, keep int) ([]string, error) {
	if keep < 0 || keep > len(names) {
		return nil, fmt.Errorf("target count %d out of range for %d files", keep, len(names))
	}
	shuffled := append([]string(nil), names...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:len(shuffled)-keep], nil
}
