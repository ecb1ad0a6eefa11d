package store

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTaskRow scans a single export row. Column order matches exportQuery.
func ScanTaskRow(scanner Scanner) (*TaskRow, error) {
	row := &TaskRow{}
	var (
		projectName, categoryName, columnTitle sql.NullString
		colorID                                sql.NullString
		creator, assignee                      sql.NullString
		position, score                        sql.NullInt64
		dateDue, dateModification              sql.NullInt64
		dateCompleted                          sql.NullInt64
	)

	err := scanner.Scan(
		&row.ID,
		&projectName,
		&row.IsActive,
		&categoryName,
		&columnTitle,
		&position,
		&colorID,
		&dateDue,
		&creator,
		&assignee,
		&score,
		&row.Title,
		&row.DateCreation,
		&dateModification,
		&dateCompleted,
	)
	if err != nil {
		return nil, err
	}

	row.ProjectName = StringPtrFromDB(projectName)
	row.CategoryName = StringPtrFromDB(categoryName)
	row.ColumnTitle = StringPtrFromDB(columnTitle)
	row.Position = IntFromDB(position)
	row.ColorID = colorID.String
	row.DateDue = IntFromDB(dateDue)
	row.CreatorUsername = StringPtrFromDB(creator)
	row.AssigneeUsername = StringPtrFromDB(assignee)
	row.Score = IntFromDB(score)
	row.DateModification = IntFromDB(dateModification)
	row.DateCompleted = IntFromDB(dateCompleted)

	return row, nil
}

// ScanTaskRows scans every export row, preserving the order the database returned
func ScanTaskRows(rows Rows) ([]*TaskRow, error) {
	var result []*TaskRow
	for rows.Next() {
		row, err := ScanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// ScanTaskDetail scans the notification view of a task
func ScanTaskDetail(scanner Scanner) (*TaskDetail, error) {
	detail := &TaskDetail{}
	var description, projectName, username, name sql.NullString

	err := scanner.Scan(&detail.ID, &detail.Title, &description, &projectName, &username, &name)
	if err != nil {
		return nil, err
	}

	detail.Description = description.String
	detail.ProjectName = StringPtrFromDB(projectName)
	detail.AssigneeUsername = StringPtrFromDB(username)
	detail.AssigneeName = StringPtrFromDB(name)
	return detail, nil
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	if err := scanner.Scan(&project.ID, &project.Name); err != nil {
		return nil, err
	}
	return project, nil
}
