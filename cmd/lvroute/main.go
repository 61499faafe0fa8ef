// Command lvroute prints the shortest path and total distance between two
// vertices of a weighted, undirected graph.
//
// Without -graph it uses the built-in six-city network and queries
// Edinburgh → Dundee:
//
//	$ lvroute
//	Shortest path from Edinburgh to Dundee: [Edinburgh Stirling Perth Dundee]
//	Total distance: 150
//
// A YAML or HCL graph file may be given instead:
//
//	$ lvroute -graph islands.hcl -from Oban -to Iona
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/graphfile"
	"github.com/katalvlaran/lvroute/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lvroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		graphPath = fs.String("graph", "", "path to a .yaml/.yml/.hcl graph file (default: built-in reference graph)")
		from      = fs.String("from", "", "start vertex (default: the file's query)")
		to        = fs.String("to", "", "end vertex (default: the file's query)")
		logLevel  = fs.String("log-level", "warn", "log level: debug, info, warn, error")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger, err := logging.New(stderr, *logLevel, zap.String("cmd", "lvroute"))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	def := graphfile.Reference()
	if *graphPath != "" {
		if def, err = graphfile.Load(*graphPath); err != nil {
			logger.Error("failed to load graph", zap.String("path", *graphPath), zap.Error(err))
			return 1
		}
	}
	start, end := *from, *to
	if def.Query != nil {
		if start == "" {
			start = def.Query.From
		}
		if end == "" {
			end = def.Query.To
		}
	}
	if start == "" || end == "" {
		logger.Error("no query: pass -from and -to", zap.String("graph", def.Name))
		return 2
	}

	g, err := def.Build()
	if err != nil {
		logger.Error("failed to build graph", zap.String("graph", def.Name), zap.Error(err))
		return 1
	}
	logger.Info("graph loaded",
		zap.String("graph", def.Name),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	p, err := dijkstra.ShortestPath(g, start, end, dijkstra.WithLogger(logger))
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		fmt.Fprintf(stdout, "No path from %s to %s\n", start, end)
		return 1
	case err != nil:
		logger.Error("query failed", zap.String("from", start), zap.String("to", end), zap.Error(err))
		return 1
	}

	fmt.Fprintf(stdout, "Shortest path from %s to %s: %v\n", start, end, p.Vertices)
	fmt.Fprintf(stdout, "Total distance: %d\n", p.Distance)

	return 0
}
