// Command turnpath searches for the shortest path through a set of points in
// which no internal turn is sharper than a right angle.
//
// Usage:
//
//	turnpath --input points.txt [--time-limit 30s] [duration]
//
// The optional positional duration is a shorthand for --time-limit and also
// accepts plain seconds ("45", "2.5").
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "turnpath:", err)
		os.Exit(1)
	}
}
