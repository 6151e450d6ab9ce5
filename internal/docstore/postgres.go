package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PostgresStore keeps documents as JSONB rows in the documents table
// created by the embedded migrations.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Where(ctx context.Context, collection, field, value string) ([]Document, error) {
	if collection == "" {
		return nil, ErrEmptyCollection
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM documents
		 WHERE collection = $1 AND data->>$2 = $3
		 ORDER BY id`,
		collection, field, value,
	)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s document: %w", collection, err)
		}
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		// data->>field also matches numbers and booleans by their text form.
		if !matches(doc, field, value) {
			continue
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return docs, nil
}

func (s *PostgresStore) Insert(ctx context.Context, collection string, doc Document) error {
	if collection == "" {
		return ErrEmptyCollection
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", collection, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, data) VALUES ($1, $2)`,
		collection, data,
	)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
