package compare

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// RenderTable writes the reports as an aligned text table: one row per
// scenario and algorithm, then per-algorithm averages over the reachable
// scenarios.
func RenderTable(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "SCENARIO\tALGORITHM\tDISTANCE\tTRAVEL TIME\tEXPANDED\tELAPSED")

	type agg struct {
		meters, seconds float64
		expanded        int
		elapsed         time.Duration
		n               int
	}
	totals := map[string]*agg{}
	order := []string{}

	row := func(scenario, algorithm string, r Route) {
		if !r.Reached {
			fmt.Fprintf(tw, "%s\t%s\tunreachable\t-\t%d\t%s\n",
				scenario, algorithm, r.Expanded, r.Elapsed.Round(time.Microsecond))

			return
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f km\t%s\t%d\t%s\n",
			scenario, algorithm,
			r.Meters/1000,
			formatSeconds(r.Seconds),
			r.Expanded,
			r.Elapsed.Round(time.Microsecond),
		)

		t, ok := totals[algorithm]
		if !ok {
			t = &agg{}
			totals[algorithm] = t
			order = append(order, algorithm)
		}
		t.meters += r.Meters
		t.seconds += r.Seconds
		t.expanded += r.Expanded
		t.elapsed += r.Elapsed
		t.n++
	}

	for _, rep := range reports {
		row(rep.Scenario, "dijkstra", rep.Dijkstra)
		row(rep.Scenario, fmt.Sprintf("astar(%.2g)", rep.WeightFactor), rep.AStar)
		if rep.Fastest != nil {
			row(rep.Scenario, "fastest", *rep.Fastest)
		}
	}

	fmt.Fprintln(tw, "\t\t\t\t\t")
	for _, algorithm := range order {
		t := totals[algorithm]
		n := float64(t.n)
		fmt.Fprintf(tw, "average\t%s\t%.2f km\t%s\t%.0f\t%s\n",
			algorithm,
			t.meters/n/1000,
			formatSeconds(t.seconds/n),
			float64(t.expanded)/n,
			(t.elapsed / time.Duration(t.n)).Round(time.Microsecond),
		)
	}

	return tw.Flush()
}

// formatSeconds renders a travel time as m:ss, or "-" when unknown.
func formatSeconds(s float64) string {
	if s <= 0 {
		return "-"
	}
	total := int(s + 0.5)

	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
