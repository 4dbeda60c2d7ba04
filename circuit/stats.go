//
// stats.go
//
// Copyright (c) 2021-2025 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"io"
	"sort"
	"strconv"

	"github.com/markkurossi/tabulate"
)

// Stats holds per-operation gate counts.
type Stats map[string]int

// Stats counts the circuit gates by operation.
func (c *Circuit) Stats() Stats {
	stats := make(Stats)
	for _, g := range c.Gates {
		stats[g.Op.String()]++
	}
	return stats
}

// Print prints the statistics as a table to the writer.
func (s Stats) Print(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Count").SetAlign(tabulate.MR)

	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		row := tab.Row()
		row.Column(name)
		row.Column(strconv.Itoa(s[name]))
	}
	tab.Print(w)
}
