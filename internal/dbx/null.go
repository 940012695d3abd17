package dbx

import (
	"database/sql"
	"time"
)

// TimePtr converts a nullable timestamp column into a *time.Time.
func TimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
