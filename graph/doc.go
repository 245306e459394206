// Package graph defines the contract between audio nodes and the external
// workflow engine that executes them.
//
// Nodes are short-lived parameter records. The engine constructs a node,
// validates it, calls its Process method once with a [Context], and discards
// it. All asset resolution (decoding audio references into sample buffers,
// re-encoding results, storing images) happens through the Context; nodes
// themselves hold no state across invocations.
//
// The package also carries the declarative side of the catalog: every node
// package registers a [Spec] describing its typed properties, and
// [Metadata] renders the package metadata consumed by graph editors.
package graph
