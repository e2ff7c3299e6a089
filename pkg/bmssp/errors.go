package bmssp

import "errors"

// ErrSourceOutOfRange is returned when Solve is given a source vertex
// outside [0, NumVertices) of the supplied graph.
var ErrSourceOutOfRange = errors.New("bmssp: source vertex out of range")

// ErrEmptyGraph is returned when Solve is given a graph with no vertices.
var ErrEmptyGraph = errors.New("bmssp: graph has no vertices")
