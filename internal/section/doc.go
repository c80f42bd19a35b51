// Package section renders the building blocks of generated documents.
//
// It has three parts:
//
//   - Renderers (Paragraph, List, Table, ...) turn gated content into Markdown
//     blocks, returning "" when the gate is off.
//   - The numbering resolver assigns ordinals to the included entries of a
//     Section Plan. Excluded entries take no number and do not advance the
//     counter, so later sections shift down when earlier ones are skipped.
//   - Print walks a Document (an ordered plan of Nodes) once, labelling every
//     heading from the same Numbering that section bodies use for
//     cross-references.
//
// Everything here is pure: no I/O, no clock, no shared state.
package section
