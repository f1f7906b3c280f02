// Package ir is the snep document model.
//
// A document is a tree of nodes of three kinds:
//
//   - Text: a verbatim source line
//   - Attr: a named scalar value attached to an element
//   - Elem: a named, ordered container of child nodes
//
// Exactly one element in a document, the synthetic root produced by
// the parser, has no name (Named is false); every other element is
// named.
//
// Nodes are immutable once constructed.  All transformation
// operators (ReplaceName, ReplaceChildren, ReplaceElement,
// ReplaceElementChildren) return fresh elements and share untouched
// subtrees with the receiver; nothing is ever mutated in place.
// Because of this, concurrent readers of the same tree need no
// locking.
//
// Node identity is structural: Equal, Compare and Hash look at a
// text node's value, an attribute's name and value, and an element's
// name and children, recursively.  Origins and trailing comments are
// provenance and never take part in identity.
package ir
