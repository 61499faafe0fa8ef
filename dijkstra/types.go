// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on undirected weighted graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay unreachable.
//	– InfEdgeThreshold: when set, edges with weight >= this threshold are treated as impassable.
//	– Logger:           zap logger receiving debug traces of settle/relax steps.
//
// Errors (sentinel):
//
//	– ErrEmptySource      if the provided source ID is empty.
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrVertexNotFound   if the start or end vertex does not exist in the graph.
//	– ErrNoPath           if the end vertex is not reachable from the start.
//	– ErrDistanceOverflow if a path cost does not fit in int64.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrBadInfThreshold  if WithInfEdgeThreshold is given a value <= 0.
package dijkstra

import (
	"errors"
	"math"
	"strconv"

	"go.uber.org/zap"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a queried vertex was never added to the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that the end vertex cannot be reached from the start.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrDistanceOverflow indicates that summing edge weights exceeded int64.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows int64")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Distance is the cost of reaching a vertex from the source, or Unreachable.
// The zero value is Unreachable, so arithmetic on an unreached vertex has to
// go through Add, which refuses it.
type Distance struct {
	cost      int64
	reachable bool
}

// Unreachable marks a vertex with no path from the source.
var Unreachable = Distance{}

// Finite returns a reachable Distance of the given cost.
func Finite(cost int64) Distance {
	return Distance{cost: cost, reachable: true}
}

// Reachable reports whether a path exists.
func (d Distance) Reachable() bool { return d.reachable }

// Value returns the cost and whether it is meaningful.
func (d Distance) Value() (int64, bool) { return d.cost, d.reachable }

// Int64 renders the distance using math.MaxInt64 for Unreachable.
func (d Distance) Int64() int64 {
	if !d.reachable {
		return math.MaxInt64
	}

	return d.cost
}

// Less orders distances with Unreachable greater than every finite value.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.reachable:
		return false
	case !o.reachable:
		return true
	default:
		return d.cost < o.cost
	}
}

// Add extends d by a non-negative edge weight w.
// It returns Unreachable and false when d is Unreachable or the sum overflows.
func (d Distance) Add(w int64) (Distance, bool) {
	if !d.reachable || w < 0 || d.cost > math.MaxInt64-w {
		return Unreachable, false
	}

	return Finite(d.cost + w), true
}

// String implements fmt.Stringer.
func (d Distance) String() string {
	if !d.reachable {
		return "unreachable"
	}

	return strconv.FormatInt(d.cost, 10)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond stay Unreachable).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Only applied when set through WithInfEdgeThreshold, and then must be > 0.
//	By default every edge is traversable, whatever its weight.
//
// Logger           – receives Debug entries per settled vertex and improved neighbor.
type Options struct {
	MaxDistance      int64       // Maximum distance to explore
	InfEdgeThreshold int64       // Weight threshold above which edges are non-traversable
	Logger           *zap.Logger // Trace sink; never nil after DefaultOptions

	infSet bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not settled.
// Negative values make Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// impassable reports whether an edge of weight w is skipped.
func (o Options) impassable(w int64) bool {
	return o.infSet && w >= o.InfEdgeThreshold
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped entirely.
// Zero or negative values make Dijkstra return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
		o.infSet = true
	}
}

// WithLogger routes debug traces to l. A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance:      math.MaxInt64 (explore all reachable).
//   - InfEdgeThreshold: unset (no edges treated as impassable).
//   - Logger:           zap.NewNop().
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		Logger:      zap.NewNop(),
	}
}

func (o Options) validate() error {
	if o.MaxDistance < 0 {
		return ErrBadMaxDistance
	}
	if o.infSet && o.InfEdgeThreshold <= 0 {
		return ErrBadInfThreshold
	}

	return nil
}

// Result holds the outcome of one Dijkstra run. It is produced fresh per call
// and never shared between runs.
type Result struct {
	// Source is the start vertex.
	Source string

	// Dist maps every vertex of the graph to its distance from Source.
	Dist map[string]Distance

	// Prev maps each reached vertex to its predecessor on a shortest path.
	// Source and unreached vertices have no entry.
	Prev map[string]string
}

// Path is a reconstructed shortest path together with its total cost.
type Path struct {
	Vertices []string
	Distance int64
}
