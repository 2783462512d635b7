// Package openlrdecoder turns an OpenLR location reference back into the
// stretch of road it was built from.
//
// An OpenLR reference is a short, map-agnostic description of a path: a
// sequence of anchor points, each carrying a coordinate, a bearing, a road
// classification and a distance to the next anchor. It says nothing about
// which map it will be read against — that link is made at decode time by
// searching a caller-supplied road network for lines that plausibly match
// each anchor, then stitching the best-scoring chain of matches into a
// route.
//
// This module is organized as:
//
//	openlr/   — wire-level value types: Coordinate, FRC, FOW, the four
//	            location reference kinds
//	wgs84/    — geodesy primitives the decoder is built on: distance,
//	            bearing, polyline interpolation and projection
//	maps/     — the Map/Line/Node contract a target road network must
//	            satisfy; the decoder is never compiled against a concrete
//	            backend
//	memmap/   — an in-memory Map, for tests and small networks
//	cachemap/ — an LRU-caching Map decorator for any backend
//	pgmap/    — a PostGIS-backed Map
//	candidate/ — per-anchor candidate-line search and scoring
//	match/    — shortest-path search between two anchors' candidates
//	routes/   — stitching matched segments into a Route and applying
//	            positive/negative offsets
//	scoring/  — the convex-combination score a candidate is ranked by
//	config/   — the tunable knobs of a decode call
//	observer/ — optional hooks into decode internals, for diagnostics
//	decoder/  — Decode, the package's single entry point
//
//	go get github.com/openlr-community/openlr-dereferencer-go
package openlrdecoder
