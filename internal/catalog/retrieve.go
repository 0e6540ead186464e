// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pdiddy/slr-engine/pkg/types"
)

// QueryOptions holds catalog query filters. Method, Dimension, and Label
// must all hold on the same label row.
type QueryOptions struct {
	Method    types.Method
	Dimension types.Dimension

	// Label matches a canonical label, ignoring case.
	Label string

	// Title matches a substring of the paper title, ignoring case.
	Title string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Method == "" && q.Dimension == "" && q.Label == "" && q.Title == ""
}

// Label is one classification of a paper.
type Label struct {
	Method    types.Method    `json:"method" yaml:"method"`
	Dimension types.Dimension `json:"dimension" yaml:"dimension"`
	Label     string          `json:"label" yaml:"label"`
}

// QueryResult is a catalogued paper with its labels.
type QueryResult struct {
	ID        types.PaperID        `json:"id" yaml:"id"`
	Title     string               `json:"title" yaml:"title"`
	Authors   string               `json:"authors,omitempty" yaml:"authors,omitempty"`
	Year      string               `json:"year,omitempty" yaml:"year,omitempty"`
	Kind      types.EntryKind      `json:"kind,omitempty" yaml:"kind,omitempty"`
	Venue     string               `json:"venue,omitempty" yaml:"venue,omitempty"`
	Objective types.ObjectiveCount `json:"objective,omitempty" yaml:"objective,omitempty"`
	Labels    []Label              `json:"labels" yaml:"labels"`
}

// Retrieve returns the papers matching opts in row order.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT p.id, p.title, p.authors, p.year, p.kind, p.venue, p.objective
		FROM papers p
		WHERE 1=1`)

	if opts.Method != "" || opts.Dimension != "" || opts.Label != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM labels l WHERE l.paper_id = p.id`)
		if opts.Method != "" {
			qb.WriteString(` AND l.method = ?`)
			args = append(args, string(opts.Method))
		}
		if opts.Dimension != "" {
			qb.WriteString(` AND l.dimension = ?`)
			args = append(args, string(opts.Dimension))
		}
		if opts.Label != "" {
			qb.WriteString(` AND l.label = ? COLLATE NOCASE`)
			args = append(args, opts.Label)
		}
		qb.WriteString(`)`)
	}

	if opts.Title != "" {
		qb.WriteString(` AND lower(p.title) LIKE ?`)
		args = append(args, "%"+strings.ToLower(opts.Title)+"%")
	}

	qb.WriteString(` ORDER BY p.seq, p.id LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}

	var results []QueryResult
	for rows.Next() {
		var qr QueryResult
		var id string
		var title, authors, year, kind, venue, objective sql.NullString
		if err := rows.Scan(&id, &title, &authors, &year, &kind, &venue, &objective); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		qr.ID = types.PaperID(id)
		qr.Title = title.String
		qr.Authors = authors.String
		qr.Year = year.String
		qr.Kind = types.EntryKind(kind.String)
		qr.Venue = venue.String
		qr.Objective = types.ObjectiveCount(objective.String)
		results = append(results, qr)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	// The store holds a single connection, so labels are read once the
	// paper rows are closed.
	for i := range results {
		labels, err := s.labels(ctx, results[i].ID)
		if err != nil {
			return nil, err
		}
		results[i].Labels = labels
	}
	return results, nil
}

func (s *Store) labels(ctx context.Context, id types.PaperID) ([]Label, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT method, dimension, label FROM labels WHERE paper_id = ?
		 ORDER BY method, dimension, label`, string(id))
	if err != nil {
		return nil, fmt.Errorf("querying labels of %s: %w", id, err)
	}
	defer rows.Close()

	labels := []Label{}
	for rows.Next() {
		var method, dim, label string
		if err := rows.Scan(&method, &dim, &label); err != nil {
			return nil, fmt.Errorf("scanning label: %w", err)
		}
		labels = append(labels, Label{
			Method:    types.Method(method),
			Dimension: types.Dimension(dim),
			Label:     label,
		})
	}
	return labels, rows.Err()
}

// Count returns the number of catalogued papers.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM papers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting papers: %w", err)
	}
	return n, nil
}
