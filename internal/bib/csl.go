// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slr-engine/internal/authors"
	"github.com/pdiddy/slr-engine/pkg/types"
)

// CSLItem is a bibliographic entry in CSL (Citation Style Language) form,
// consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title,omitempty"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
}

// CSLName is a person's name in CSL form.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a CSL date; Literal holds years that are not numeric.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts,omitempty"`
	Literal   string  `yaml:"literal,omitempty"`
}

// WriteCSL writes entries as a CSL-YAML list.
func WriteCSL(w io.Writer, entries []types.BibEntry) error {
	items := make([]CSLItem, len(entries))
	for i, e := range entries {
		items[i] = ToCSLItem(e)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encoding csl: %w", err)
	}
	return nil
}

// ToCSLItem converts an entry to its CSL form.
func ToCSLItem(e types.BibEntry) CSLItem {
	item := CSLItem{
		ID:             string(e.ID),
		Type:           "article-journal",
		Title:          e.Title,
		ContainerTitle: e.Venue,
	}
	if e.Kind == types.EntryInproceedings {
		item.Type = "paper-conference"
	}

	for _, a := range strings.Split(e.Author, authors.Separator) {
		if n := parseAuthorName(a); n != (CSLName{}) {
			item.Author = append(item.Author, n)
		}
	}

	if e.Year != "" {
		if y, err := strconv.Atoi(e.Year); err == nil {
			item.Issued = &CSLDate{DateParts: [][]int{{y}}}
		} else {
			item.Issued = &CSLDate{Literal: e.Year}
		}
	}
	return item
}

// parseAuthorName splits one author into CSL family/given parts. "Last,
// First" splits on the comma; otherwise the last space separates given
// names from the family name. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	if family, given, ok := strings.Cut(name, ","); ok {
		return CSLName{
			Family: strings.TrimSpace(family),
			Given:  strings.TrimSpace(given),
		}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
