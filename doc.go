// Package lvroute computes shortest paths over weighted, undirected graphs.
//
// 🚀 What is lvroute?
//
//	A small, dependency-light toolkit that brings together:
//		• core:      an undirected, non-negatively weighted Graph; vertices appear with their first edge
//		• dijkstra:  single-source distances and shortest-path reconstruction
//		• graphfile: graph definitions loaded from YAML or HCL files
//		• cmd/lvroute: a command that prints the route and its total cost
//
// ✨ Why choose lvroute?
//
//   - Explicit outcomes – unknown vertices, unreachable ends and overflow are
//     distinct errors, never a degenerate path or a magic number
//   - No hidden state – every query returns its own Result; paths are rebuilt
//     from the run that produced them
//   - Thread-safe reads – queries take a read lock and never mutate the graph
//
// Quick ASCII example:
//
//	Edinburgh ─50─ Stirling ─40─ Perth ─60─ Dundee
//	     └──────────100───────────┘
//
//	Edinburgh → Dundee = 150 via Stirling and Perth.
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
package lvroute
