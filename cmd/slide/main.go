// slide solves sliding-tile puzzles with breadth- or depth-first search.
//
// Usage:
//
//	slide solve --rows 3 --cols 3 --tiles 1,2,3,4,5,6,7,0,8 [--strategy bfs] [--steps]
//	slide batch -f puzzles.yaml [--parallel 4]
//
// Global flags: --log-level, --trace (spans to stderr), --metrics-file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
