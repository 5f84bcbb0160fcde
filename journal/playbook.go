// journal/playbook.go
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Playbook is a named rule set for a strategy: the checklist a trader
// reviews before and after taking a setup.
type Playbook struct {
	ID       string    `yaml:"-"`
	Name     string    `yaml:"name"`
	Strategy string    `yaml:"strategy,omitempty"`
	Rules    []string  `yaml:"rules"`
	Created  time.Time `yaml:"-"`
}

func (s *Store) SavePlaybook(p Playbook) error {
	rules, err := yaml.Marshal(p.Rules)
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO playbooks (id, name, strategy, rules, created)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET strategy = excluded.strategy, rules = excluded.rules`,
		p.ID, p.Name, p.Strategy, string(rules), p.Created.UTC(),
	)
	return err
}

func (s *Store) GetPlaybook(name string) (Playbook, error) {
	row := s.db.QueryRow(`SELECT id, name, strategy, rules, created FROM playbooks WHERE name = ?`, name)

	p, err := scanPlaybook(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Playbook{}, fmt.Errorf("playbook %q: %w", name, ErrNotFound)
		}
		return Playbook{}, err
	}
	return p, nil
}

func (s *Store) ListPlaybooks() ([]Playbook, error) {
	rows, err := s.db.Query(`SELECT id, name, strategy, rules, created FROM playbooks ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Playbook
	for rows.Next() {
		p, err := scanPlaybook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DeletePlaybook(name string) error {
	res, err := s.db.Exec(`DELETE FROM playbooks WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("playbook %q: %w", name, ErrNotFound)
	}
	return nil
}

func scanPlaybook(row scanner) (Playbook, error) {
	var (
		p     Playbook
		rules string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Strategy, &rules, &p.Created); err != nil {
		return Playbook{}, err
	}
	if err := yaml.Unmarshal([]byte(rules), &p.Rules); err != nil {
		return Playbook{}, fmt.Errorf("playbook %q rules: %w", p.Name, err)
	}
	p.Created = p.Created.UTC()
	return p, nil
}

// LoadPlaybookFile reads a playbook rule file (YAML).
func LoadPlaybookFile(path string) (Playbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Playbook{}, fmt.Errorf("read playbook file: %w", err)
	}

	var p Playbook
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Playbook{}, fmt.Errorf("parse playbook file: %w", err)
	}
	if p.Name == "" {
		return Playbook{}, fmt.Errorf("playbook file %s: name is required", path)
	}
	return p, nil
}

// WritePlaybookFile writes the playbook as a YAML rule file.
func (p Playbook) WritePlaybookFile(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal playbook: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write playbook file: %w", err)
	}
	return nil
}
