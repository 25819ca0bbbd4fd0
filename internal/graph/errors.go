// Package graph provides the grid-search primitives the planners share:
// reachability, shortest paths between cells, connectivity tests, a
// packing (bin-tiling) test, and solution-sequence shortening.
package graph

import "errors"

// ErrUnreachable is returned by path-finding helpers when no path exists
// between the requested endpoints under the given obstacle set.
var ErrUnreachable = errors.New("graph: target is unreachable")
