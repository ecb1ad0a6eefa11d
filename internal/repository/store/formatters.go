package store

import (
	"database/sql"
	"time"
)

// EpochForDB converts a time to the unix seconds stored in the tasks table
func EpochForDB(t time.Time) int64 {
	return t.Unix()
}

// EpochPtrForDB converts an optional time, storing nil as 0
func EpochPtrForDB(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return EpochForDB(*t)
}

// NullableID maps a zero foreign key to NULL
func NullableID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}

// IntFromDB reads a nullable integer column, mapping NULL to 0
func IntFromDB(v sql.NullInt64) int64 {
	if !v.Valid {
		return 0
	}
	return v.Int64
}

// StringPtrFromDB converts a nullable text column
func StringPtrFromDB(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
