// Package docfinder locates official FeatBit documentation pages relevant
// to a free-text question and assembles the answer prompt for a text model.
// Matching is a deterministic keyword lookup over a static catalog; actual
// page retrieval and answer generation are optional collaborators that the
// core never depends on.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, gemini/, trafilatura/).
package docfinder
