// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EntryKind is the bibliographic entry type.
type EntryKind string

const (
	EntryArticle       EntryKind = "article"
	EntryInproceedings EntryKind = "inproceedings"
)

// BibEntry is the bibliographic record emitted for one survey row.
// Empty fields are omitted from the serialized entry.
type BibEntry struct {
	// ID is the citation key, equal to the paper identifier.
	ID PaperID `json:"id" yaml:"id"`

	// Kind is inproceedings when the proceedings cell is non-empty, else article.
	Kind EntryKind `json:"kind" yaml:"kind"`

	// Author is the normalized author list joined with " and ".
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Title is the trimmed title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Year is the integer year, or the trimmed cell text when it is not numeric.
	Year string `json:"year,omitempty" yaml:"year,omitempty"`

	// Venue is the proceedings name for inproceedings, the journal otherwise.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`
}
