// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: human-readable route report, overwritten on every save.

package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/citymap/route"
)

// WriteRouteReport writes r as:
//
//	Route Report
//	Method: <label>
//	Path: A -> B -> C
//	Total Distance: 8 km
func WriteRouteReport(w io.Writer, r *route.Route) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Route Report")
	fmt.Fprintf(bw, "Method: %s\n", r.Method)
	fmt.Fprintf(bw, "Path: %s\n", r)
	fmt.Fprintf(bw, "Total Distance: %d km\n", r.TotalDistance())
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: report: %w", ErrIO, err)
	}

	return nil
}

// SaveRouteReport truncates path (DefaultReportFile when empty) and writes r to it.
func SaveRouteReport(path string, r *route.Route) error {
	if path == "" {
		path = DefaultReportFile
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: report %q: %w", ErrIO, path, err)
	}
	if err := WriteRouteReport(f, r); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: report %q: %w", ErrIO, path, err)
	}

	return nil
}
