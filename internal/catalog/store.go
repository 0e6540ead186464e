// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog indexes classified papers in an in-memory SQLite
// database so they can be queried by label and exported.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdiddy/slr-engine/internal/bib"
	"github.com/pdiddy/slr-engine/internal/classify"
	"github.com/pdiddy/slr-engine/internal/survey"
	"github.com/pdiddy/slr-engine/pkg/types"
)

const defaultMaxResults = 20

// Store is the in-memory catalog. It lives as long as the process.
type Store struct {
	db         *sql.DB
	logger     *zap.Logger
	maxResults int
}

// NewStore opens an empty in-memory catalog and creates its schema.
func NewStore(logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, logger: logger, maxResults: defaultMaxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE papers (
			id TEXT PRIMARY KEY,
			seq INTEGER NOT NULL,
			title TEXT,
			authors TEXT,
			year TEXT,
			kind TEXT,
			venue TEXT,
			objective TEXT
		)`,
		`CREATE TABLE labels (
			paper_id TEXT NOT NULL REFERENCES papers(id),
			method TEXT NOT NULL,
			dimension TEXT NOT NULL,
			label TEXT NOT NULL,
			PRIMARY KEY (paper_id, method, dimension, label)
		)`,
		`CREATE INDEX idx_labels_lookup ON labels(method, dimension, label)`,
		`CREATE INDEX idx_papers_seq ON papers(seq)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from one ingest.
type IngestSummary struct {
	Papers int
	Labels int
}

// Ingest stores every classification in one transaction. Labels are
// recorded for each method the paper is eligible for; algorithm families
// and SUT categories are repeated under each such method.
func (s *Store) Ingest(ctx context.Context, classifications []survey.Classification) (IngestSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	paperStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (id, seq, title, authors, year, kind, venue, objective)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			seq=excluded.seq, title=excluded.title, authors=excluded.authors,
			year=excluded.year, kind=excluded.kind, venue=excluded.venue,
			objective=excluded.objective`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing paper insert: %w", err)
	}
	defer paperStmt.Close()

	labelStmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO labels (paper_id, method, dimension, label) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing label insert: %w", err)
	}
	defer labelStmt.Close()

	var summary IngestSummary
	for _, c := range classifications {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		p := c.Paper
		seq, _ := p.ID.Seq()
		entry, ok := bib.FromPaper(p)
		if !ok {
			title, _ := p.Value(types.FieldTitle)
			entry = types.BibEntry{ID: p.ID, Title: title}
		}
		if _, err := paperStmt.ExecContext(ctx,
			string(p.ID), seq, entry.Title, entry.Author, entry.Year,
			string(entry.Kind), entry.Venue, string(c.Objective),
		); err != nil {
			return summary, fmt.Errorf("inserting paper %s: %w", p.ID, err)
		}
		summary.Papers++

		for _, m := range c.Methods {
			sets := []struct {
				dim    types.Dimension
				labels classify.LabelSet
			}{
				{types.DimTaxonomy, c.Taxonomy[m]},
				{types.DimAlgorithm, c.Algorithms},
				{types.DimMetric, c.Metrics[m]},
				{types.DimSUT, c.SUT},
			}
			for _, set := range sets {
				for _, label := range set.labels.Sorted() {
					if _, err := labelStmt.ExecContext(ctx, string(p.ID), string(m), string(set.dim), label); err != nil {
						return summary, fmt.Errorf("inserting label %s/%s for %s: %w", set.dim, label, p.ID, err)
					}
					summary.Labels++
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing catalog: %w", err)
	}
	s.logger.Debug("catalog ingested",
		zap.Int("papers", summary.Papers),
		zap.Int("labels", summary.Labels))
	return summary, nil
}
