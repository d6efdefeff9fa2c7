package ux

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/route"
)

// EmptyGraph is printed instead of a map or matrix with no cities.
const EmptyGraph = "Graph is empty."

// Route renders the path line followed by a summary box with stops, legs,
// total distance and average distance per leg.
func Route(r *route.Route) string {
	names := make([]string, len(r.Stops))
	for i, s := range r.Stops {
		names[i] = Styles.City.Render(s)
	}
	arrow := " " + Styles.Muted.Render(string(IconArrow)) + " "

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Styles.Title.Render(r.Method.String()))
	fmt.Fprintf(&b, "Route: %s\n", strings.Join(names, arrow))
	for _, l := range r.Legs {
		fmt.Fprintf(&b, "  %s %s %s %s %s\n",
			IconBullet, l.From, IconArrow, l.To, Styles.Muted.Render(fmt.Sprintf("(%d km)", l.Distance)))
	}

	summary := strings.Join([]string{
		Styles.Bold.Render("Route summary"),
		fmt.Sprintf("Total stops (including start & end): %d", len(r.Stops)),
		fmt.Sprintf("Number of legs (roads travelled): %d", r.LegCount()),
		fmt.Sprintf("Total distance: %d km", r.TotalDistance()),
		fmt.Sprintf("Average distance per leg: %.2f km", r.AverageLeg()),
	}, "\n")
	b.WriteString(Styles.Box.Render(summary))
	b.WriteString("\n")

	return b.String()
}

// Stats renders the graph summary; components is the number of separate
// road networks.
func Stats(s core.Stats, components int) string {
	most := Styles.Muted.Render("none")
	if s.MostConnected != core.NoCity {
		most = Styles.City.Render(s.MostConnectedName)
	}
	lines := []string{
		Styles.Title.Render("Graph statistics"),
		fmt.Sprintf("Cities: %d", s.Cities),
		fmt.Sprintf("Roads: %d", s.Roads),
		fmt.Sprintf("Average distance: %.2f km", s.AverageDistance),
		fmt.Sprintf("Most connected: %s", most),
		fmt.Sprintf("Road networks: %d", components),
	}

	return Styles.Box.Render(strings.Join(lines, "\n")) + "\n"
}

// Graph renders one line per city with its roads in adjacency order.
func Graph(g *core.Graph) string {
	cities := g.Cities()
	if len(cities) == 0 {
		return EmptyGraph + "\n"
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("City map") + "\n")
	for u, name := range cities {
		roads, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		parts := make([]string, len(roads))
		for i, r := range roads {
			parts[i] = fmt.Sprintf("%s (%dkm)", cities[r.To], r.Distance)
		}
		rest := Styles.Muted.Render("(no connections)")
		if len(parts) > 0 {
			rest = strings.Join(parts, ", ")
		}
		fmt.Fprintf(&b, "%s %s %s\n", Styles.City.Render(name), IconArrow, rest)
	}

	return b.String()
}

// Matrix renders the adjacency matrix as a table; 0 means no direct road.
func Matrix(g *core.Graph) string {
	cities := g.Cities()
	if len(cities) == 0 {
		return EmptyGraph + "\n"
	}

	m := g.AdjacencyMatrix()
	rows := make([][]string, len(m))
	for i, row := range m {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, cities[i])
		for _, d := range row {
			cells = append(cells, strconv.FormatInt(d, 10))
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(append([]string{""}, cities...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow, col == 0:
				return Styles.City.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
			}
		})

	return t.String() + "\n"
}

// Cities renders a list of city names numbered from 1, the same numbering
// `city add` reports.
func Cities(names []string) string {
	if len(names) == 0 {
		return EmptyGraph + "\n"
	}
	var b strings.Builder
	for i, n := range names {
		fmt.Fprintf(&b, "%s %s\n", Styles.Muted.Render(fmt.Sprintf("%3d.", i+1)), n)
	}

	return b.String()
}

// Suggestions renders prefix matches on one line.
func Suggestions(matches []string) string {
	if len(matches) == 0 {
		return "Suggestions: " + Styles.Muted.Render("No matches found.") + "\n"
	}

	return "Suggestions: " + strings.Join(matches, " ") + "\n"
}
