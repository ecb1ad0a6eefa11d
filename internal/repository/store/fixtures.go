package store

import (
	"context"
	"database/sql"
)

// Fixtures is a set of rows loaded in one transaction. IDs left at zero are
// assigned by the database and written back into the slices.
type Fixtures struct {
	Projects   []*Project
	Users      []*User
	Categories []*Category
	Columns    []*Column
	Tasks      []*Task
}

// LoadFixtures inserts the given rows in dependency order, in one
// transaction. The export itself never writes.
func (r *SQLRepository) LoadFixtures(ctx context.Context, f Fixtures) error {
	return r.inTx(ctx, "fixtures", func(tx *sql.Tx) error {
		return r.insertFixtures(ctx, tx, f)
	})
}

func (r *SQLRepository) inTx(ctx context.Context, operation string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError(ctx, "begin "+operation, err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError(ctx, "commit "+operation, err)
	}
	return nil
}

func (r *SQLRepository) insertFixtures(ctx context.Context, tx *sql.Tx, f Fixtures) error {
	for _, p := range f.Projects {
		id, err := r.insert(ctx, tx, p.ID, `INSERT INTO projects (name) VALUES (?)`,
			`INSERT INTO projects (id, name) VALUES (?, ?)`, p.Name)
		if err != nil {
			return err
		}
		p.ID = id
	}

	for _, u := range f.Users {
		id, err := r.insert(ctx, tx, u.ID, `INSERT INTO users (username, name) VALUES (?, ?)`,
			`INSERT INTO users (id, username, name) VALUES (?, ?, ?)`, u.Username, u.Name)
		if err != nil {
			return err
		}
		u.ID = id
	}

	for _, c := range f.Categories {
		id, err := r.insert(ctx, tx, c.ID, `INSERT INTO project_has_categories (project_id, name) VALUES (?, ?)`,
			`INSERT INTO project_has_categories (id, project_id, name) VALUES (?, ?, ?)`, c.ProjectID, c.Name)
		if err != nil {
			return err
		}
		c.ID = id
	}

	for _, c := range f.Columns {
		id, err := r.insert(ctx, tx, c.ID, `INSERT INTO columns (project_id, title, position) VALUES (?, ?, ?)`,
			`INSERT INTO columns (id, project_id, title, position) VALUES (?, ?, ?, ?)`, c.ProjectID, c.Title, c.Position)
		if err != nil {
			return err
		}
		c.ID = id
	}

	for _, t := range f.Tasks {
		id, err := r.insert(ctx, tx, t.ID,
			`INSERT INTO tasks (project_id, title, description, is_active, category_id, column_id, position, color_id,
			date_due, creator_id, owner_id, score, date_creation, date_modification, date_completed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			`INSERT INTO tasks (id, project_id, title, description, is_active, category_id, column_id, position, color_id,
			date_due, creator_id, owner_id, score, date_creation, date_modification, date_completed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ProjectID, t.Title, t.Description, t.IsActive, NullableID(t.CategoryID), NullableID(t.ColumnID),
			t.Position, t.ColorID, t.DateDue, NullableID(t.CreatorID), NullableID(t.OwnerID), t.Score,
			t.DateCreation, t.DateModification, t.DateCompleted)
		if err != nil {
			return err
		}
		t.ID = id
	}

	return nil
}

// insert runs autoQuery when id is zero, otherwise explicitQuery with id prepended
func (r *SQLRepository) insert(ctx context.Context, tx *sql.Tx, id int64, autoQuery, explicitQuery string, args ...interface{}) (int64, error) {
	if id == 0 {
		return ExecuteWithLastInsertID(ctx, tx, r.dialect, autoQuery, args...)
	}

	if _, err := tx.ExecContext(ctx, r.dialect.Rebind(explicitQuery), append([]interface{}{id}, args...)...); err != nil {
		return 0, HandleDatabaseError(ctx, "insert fixture", err)
	}
	return id, nil
}
