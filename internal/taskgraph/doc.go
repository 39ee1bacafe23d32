// Package taskgraph builds the prerequisite graph of tasks from the task
// descriptor file (tasks.json).
//
// # Building
//
// Construction happens in two passes, each of which can fail and name the
// offending id:
//
//  1. BuildIndex maps ids to descriptors, rejecting duplicate ids.
//  2. BuildEdges resolves every prerequisite id through the index and emits
//     one Link per (prerequisite, dependent) pair, rejecting unknown ids.
//
// The resulting Graph is an immutable snapshot. New descriptor data means
// building a new Graph; there is no incremental update.
//
// # Cycles
//
// Neither pass rejects cycles. CheckAcyclic is available for callers that
// need a DAG, e.g. before ordering tasks for display.
package taskgraph
