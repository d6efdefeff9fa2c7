// Command citymap manages a small road map of cities stored in a text file
// and finds routes between them.
//
//	citymap city add Lviv
//	citymap road add Lviv Kyiv 540
//	citymap route dijkstra Lviv Kyiv --save-report
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/citymap/internal/ux"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ux.Error(err.Error()))
		os.Exit(1)
	}
}
