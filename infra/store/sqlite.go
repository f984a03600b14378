package store

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/kilianp07/planday/core/model"
	corestore "github.com/kilianp07/planday/core/store"
)

// SQLiteStore persists tasks in a SQLite database.
type SQLiteStore struct {
	db    *sql.DB
	clock model.Clock
}

// NewSQLiteStore opens or creates the database and ensures schema.
func NewSQLiteStore(path string, clock model.Clock) (*SQLiteStore, error) {
	if clock == nil {
		clock = model.RealClock{}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS tasks (
        id INTEGER PRIMARY KEY,
        title TEXT NOT NULL,
        minutes INTEGER NOT NULL,
        impact REAL NOT NULL,
        deadline TEXT NOT NULL DEFAULT '',
        notes TEXT NOT NULL DEFAULT ''
    );`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, clock: clock}, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, minutes, impact, deadline, notes FROM tasks ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Minutes, &t.Impact, &t.Deadline, &t.Notes); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *SQLiteStore) Add(ctx context.Context, t model.Task) (model.Task, error) {
	t.ID = corestore.NewID(s.clock.Now(), func(id int64) bool {
		var exists bool
		err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM tasks WHERE id = ?)`, id).Scan(&exists)
		return err == nil && exists
	})
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, minutes, impact, deadline, notes) VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Minutes, t.Impact, t.Deadline, t.Notes)
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (s *SQLiteStore) Remove(ctx context.Context, id int64) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
