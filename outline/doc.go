// Package outline flattens a document's bookmark tree into an ordered table
// of contents.
//
// The tree comes from the PDF engine through a [Source]. [Flatten] walks it
// depth-first and records each node's depth as its level:
//
//	A
//	├── B
//	└── C
//	    └── D
//
// becomes A(0), B(1), C(1), D(2). Recursion is capped at [MaxDepth].
//
// [Load] is the entry point used during extraction: a corrupt or missing
// outline yields an empty table of contents and a diagnostic error rather
// than a failure.
package outline
