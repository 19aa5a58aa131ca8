// Package pipeline runs the post-prediction stages in order: rank designs
// by confidence metrics, reject marker clashes, score terminus exposure,
// collapse same-seed duplicates, and engineer the survivors into
// synthesis-ready DNA records.
//
// Per-design stages fan out over bounded workers; ranking, deduplication
// and engineering stay serial so tie-breaks and the label namespace remain
// deterministic.
package pipeline
