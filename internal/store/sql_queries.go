package store

import (
	"github.com/MKhiriev/user-management-api/models"
	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, email, department, is_active)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, first_name, last_name, email, department, is_active, created_at;`

	findUserByID = `SELECT user_id, first_name, last_name, email, department, is_active, created_at
    FROM users
    WHERE user_id = $1;`

	updateUser = `UPDATE users
    SET first_name = $2, last_name = $3, email = $4, department = $5, is_active = $6
    WHERE user_id = $1
    RETURNING user_id, first_name, last_name, email, department, is_active, created_at;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`
)

// userColumns lists the persisted columns in scan order.
var userColumns = []string{"user_id", "first_name", "last_name", "email", "department", "is_active", "created_at"}

// buildFindUsersQuery builds the filtered list SELECT. Present filter
// predicates become AND-combined equality conditions; the result is ordered
// by user_id to match the repository's natural order.
func buildFindUsersQuery(filter models.UserFilter) (string, []any, error) {
	qb := squirrel.Select(userColumns...).
		From("users").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Department != nil {
		qb = qb.Where(squirrel.Eq{"department": *filter.Department})
	}
	if filter.IsActive != nil {
		qb = qb.Where(squirrel.Eq{"is_active": *filter.IsActive})
	}

	return qb.OrderBy("user_id").ToSql()
}
