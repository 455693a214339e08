// Package store persists abandoned goal-form sessions so the user can
// pick a form back up on the next run.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Draft is a snapshot of an unfinished goal form. GoalID 0 is the
// draft for a new goal; edit sessions are keyed by their goal id.
type Draft struct {
	GoalID       int64
	Name         string
	Amount       string
	StartDate    string
	EndDate      string
	Category     string
	AccountID    string
	Icon         string
	Image        string
	SelectedDate string
	SavedAt      time.Time
}

// Drafts provides SQLite-backed draft storage.
type Drafts struct {
	db *sql.DB
}

// Open opens or creates the drafts database at the given path.
func Open(dbPath string) (*Drafts, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating drafts dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening drafts db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Drafts{db: db}, nil
}

// Close closes the drafts database.
func (d *Drafts) Close() error {
	return d.db.Close()
}

// Save stores or replaces the draft for its goal id.
func (d *Drafts) Save(draft Draft) error {
	_, err := d.db.Exec(`INSERT OR REPLACE INTO drafts
		(goal_id, name, amount, start_date, end_date, category, account_id,
		 icon, image, selected_date, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		draft.GoalID, draft.Name, draft.Amount, draft.StartDate, draft.EndDate,
		draft.Category, draft.AccountID, draft.Icon, draft.Image,
		draft.SelectedDate, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

// Load returns the draft for a goal id. The second return value is
// false when no draft exists.
func (d *Drafts) Load(goalID int64) (Draft, bool, error) {
	row := d.db.QueryRow(`SELECT goal_id, name, amount, start_date, end_date,
		category, account_id, icon, image, selected_date, saved_at
		FROM drafts WHERE goal_id = ?`, goalID)

	var draft Draft
	var savedAt string
	err := row.Scan(&draft.GoalID, &draft.Name, &draft.Amount, &draft.StartDate,
		&draft.EndDate, &draft.Category, &draft.AccountID, &draft.Icon,
		&draft.Image, &draft.SelectedDate, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Draft{}, false, nil
	}
	if err != nil {
		return Draft{}, false, fmt.Errorf("loading draft: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, savedAt); err == nil {
		draft.SavedAt = t
	}
	return draft, true, nil
}

// Delete removes the draft for a goal id. Deleting an absent draft is
// not an error.
func (d *Drafts) Delete(goalID int64) error {
	if _, err := d.db.Exec("DELETE FROM drafts WHERE goal_id = ?", goalID); err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	return nil
}
