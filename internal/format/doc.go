// Package format is the formatting core: it assembles ordered header
// fragments (qualifiers, keyword, identifier) into canonical rendered text
// and lays out list items under a chosen tactic and width budget, while
// reinserting comments found between the original spans.
//
// Everything here is pure over explicit inputs: a loaded source file, a
// Shape, and collaborator-supplied fragment or item sequences. No state
// survives a call, so independent calls may run concurrently.
package format
