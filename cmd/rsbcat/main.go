// Command rsbcat reads tab-separated "start<TAB>end" lines from stdin (or
// the files named as arguments), folds them into a range set, and prints
// the coalesced ranges.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	rangeblaze "github.com/ilxqx/rangeblaze"
)

func main() {
	set := rangeblaze.NewRangeSetBlaze[int64]()

	if len(os.Args) < 2 {
		if err := load(set, os.Stdin); err != nil {
			fmt.Fprintln(os.Stderr, "rsbcat:", err)
			os.Exit(1)
		}
	} else {
		for _, name := range os.Args[1:] {
			f, err := os.Open(name)
			if err != nil {
				fmt.Fprintln(os.Stderr, "rsbcat:", err)
				os.Exit(1)
			}
			err = load(set, f)
			f.Close()
			if err != nil {
				fmt.Fprintf(os.Stderr, "rsbcat: %s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}

	fmt.Println(set)
}

func load(set *rangeblaze.RangeSetBlaze[int64], r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		start, end, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("line %d: expected start<TAB>end, got %q", lineNo, line)
		}
		a, err := strconv.ParseInt(strings.TrimSpace(start), 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: bad start: %w", lineNo, err)
		}
		b, err := strconv.ParseInt(strings.TrimSpace(end), 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: bad end: %w", lineNo, err)
		}
		set.RangesInsert(rangeblaze.Range[int64]{Start: a, End: b})
	}
	return scanner.Err()
}
