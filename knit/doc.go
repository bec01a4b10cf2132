// Package knit derives a dependency-injection graph from knit framework
// metadata.
//
// The input is a single JSON document mapping class identifiers to their
// declared facts: parent classes, provider methods, composite accessors,
// and nested injection records. From that the package builds a directed
// graph of which classes supply which types and which classes consume
// them, assigns each class a role (provider, consumer, composite, or
// neutral), and resolves consumed types to their providing class. Types
// nobody provides stay visible as edges to the UNKNOWN sentinel.
//
// A typical full build:
//
//	classes, err := knit.DecodeClasses(data)
//	if err != nil {
//		return err
//	}
//	graph := knit.Assemble(classes)
//
// Single-class queries go through GetClassDetail, which re-derives a
// narrower view of the same signature decoding on demand.
//
// Everything in this package is a pure function of its input mapping.
// Nothing is cached or shared between calls, so all operations are safe
// to run concurrently for independent inputs.
package knit
