// journal/notes.go
package journal

import (
	"database/sql"
	"fmt"
	"time"
)

// Note is the daily recap: one row per calendar day, overwritten on edit.
type Note struct {
	Day     string // "2006-01-02"
	Body    string
	Updated time.Time
}

func (s *Store) UpsertNote(day, body string) error {
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return fmt.Errorf("bad note day %q: %w", day, err)
	}
	_, err := s.db.Exec(`
		INSERT INTO notes (day, body, updated)
		VALUES (?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET body = excluded.body, updated = excluded.updated`,
		day, body, time.Now().UTC(),
	)
	return err
}

func (s *Store) GetNote(day string) (Note, error) {
	var n Note
	row := s.db.QueryRow(`SELECT day, body, updated FROM notes WHERE day = ?`, day)
	if err := row.Scan(&n.Day, &n.Body, &n.Updated); err != nil {
		if err == sql.ErrNoRows {
			return Note{}, fmt.Errorf("note %s: %w", day, ErrNotFound)
		}
		return Note{}, err
	}
	n.Updated = n.Updated.UTC()
	return n, nil
}

func (s *Store) ListNotes() ([]Note, error) {
	rows, err := s.db.Query(`SELECT day, body, updated FROM notes ORDER BY day ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.Day, &n.Body, &n.Updated); err != nil {
			return nil, err
		}
		n.Updated = n.Updated.UTC()
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
