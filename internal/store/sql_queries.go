package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password)
    VALUES (?, ?);`

	findUserByCredentials = `SELECT id, username, password
    FROM users
    WHERE username = ? AND password = ?;`

	listUsers = `SELECT id, username, password
    FROM users
    ORDER BY id;`

	createRecord = `INSERT INTO records (user_id, waktu, kategori, poin)
    VALUES (?, ?, ?, ?);`

	sumPointsByUser = `SELECT COALESCE(SUM(poin), 0)
    FROM records
    WHERE user_id = ?;`
)

// buildListRecordsQuery assembles the records listing statement for the
// given filter. The same builder serves the per-user history, the admin
// "all records" view, and the six per-category admin lists.
func buildListRecordsQuery(filter RecordFilter) (string, []any, error) {
	query := sq.Select("id", "user_id", "waktu", "kategori", "poin").
		From("records")

	if filter.UserID != nil {
		query = query.Where(sq.Eq{"user_id": *filter.UserID})
	}

	if filter.Category != nil {
		query = query.Where(sq.Eq{"kategori": *filter.Category})
	}

	return query.OrderBy("id").ToSql()
}
