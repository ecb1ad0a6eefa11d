package store

import (
	"context"
	"database/sql"
	"time"
)

// Demo is the board written by SeedDemo
type Demo struct {
	Project *Project
	Tasks   []*Task
	// First is the creation time of the oldest demo task
	First time.Time
}

// SeedDemo writes a small board to the database: one project with two
// users, categories, columns and tasks created over the week before now.
// Each call adds a new project.
func (r *SQLRepository) SeedDemo(ctx context.Context, now time.Time) (*Demo, error) {
	now = now.Truncate(time.Second)

	project := &Project{Name: "Demo board"}
	users := []*User{
		{Username: "alice", Name: "Alice Doe"},
		{Username: "bob", Name: "Bob Martin"},
	}
	var tasks Fixtures

	err := r.inTx(ctx, "demo", func(tx *sql.Tx) error {
		if err := r.insertFixtures(ctx, tx, Fixtures{Projects: []*Project{project}}); err != nil {
			return err
		}
		for _, u := range users {
			if err := r.findOrInsertUser(ctx, tx, u); err != nil {
				return err
			}
		}

		board := Fixtures{
			Categories: []*Category{
				{ProjectID: project.ID, Name: "Bug"},
				{ProjectID: project.ID, Name: "Feature"},
			},
			Columns: []*Column{
				{ProjectID: project.ID, Title: "Backlog", Position: 1},
				{ProjectID: project.ID, Title: "Work in progress", Position: 2},
				{ProjectID: project.ID, Title: "Done", Position: 3},
			},
		}
		if err := r.insertFixtures(ctx, tx, board); err != nil {
			return err
		}

		tasks = Fixtures{Tasks: demoTasks(project.ID, users, board, now)}
		return r.insertFixtures(ctx, tx, tasks)
	})
	if err != nil {
		return nil, err
	}

	return &Demo{
		Project: project,
		Tasks:   tasks.Tasks,
		First:   time.Unix(tasks.Tasks[0].DateCreation, 0),
	}, nil
}

// findOrInsertUser sets u.ID to the existing user with u's username, or
// inserts u. Usernames are unique.
func (r *SQLRepository) findOrInsertUser(ctx context.Context, tx *sql.Tx, u *User) error {
	err := tx.QueryRowContext(ctx, r.dialect.Rebind(`SELECT id FROM users WHERE username = ?`), u.Username).Scan(&u.ID)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return HandleDatabaseError(ctx, "find user", err)
	}
	return r.insertFixtures(ctx, tx, Fixtures{Users: []*User{u}})
}

func demoTasks(projectID int64, users []*User, board Fixtures, now time.Time) []*Task {
	alice, bob := users[0].ID, users[1].ID
	bug, feature := board.Categories[0].ID, board.Categories[1].ID
	backlog, wip, done := board.Columns[0].ID, board.Columns[1].ID, board.Columns[2].ID

	day := 24 * time.Hour
	due := now.Add(3 * day)

	task := func(title, color string, age time.Duration, category, column, creator, owner int64, dueAt *time.Time) *Task {
		created := now.Add(-age)
		return &Task{
			ProjectID:        projectID,
			Title:            title,
			IsActive:         1,
			CategoryID:       category,
			ColumnID:         column,
			ColorID:          color,
			DateDue:          EpochPtrForDB(dueAt),
			CreatorID:        creator,
			OwnerID:          owner,
			DateCreation:     EpochForDB(created),
			DateModification: EpochForDB(created.Add(time.Hour)),
		}
	}

	tasks := []*Task{
		task("Set up the board", "blue", 6*day, feature, done, alice, alice, nil),
		task("Fix login redirect", "red", 4*day, bug, wip, alice, bob, &due),
		task("Write user guide", "green", 3*day, feature, backlog, bob, 0, &due),
		task("Translate labels", "teal", day, feature, backlog, bob, alice, nil),
		task("Crash on empty export", "deep_orange", time.Hour, bug, backlog, alice, 0, nil),
	}

	closed := tasks[0]
	closed.IsActive = 0
	closed.Description = "Columns and categories are in place."
	closed.DateCompleted = EpochForDB(now.Add(-5 * day))

	tasks[1].Description = "Users land on the home page instead of the page they asked for."
	for i, t := range tasks {
		t.Position = int64(i + 1)
	}
	return tasks
}
