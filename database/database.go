package database

import (
	"database/sql"
	_ "embed"
	"errors"

	"todolist/models"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// InitDB opens the SQLite database at filepathArg and applies the schema.
// ":memory:" gives a private in-memory database.
func InitDB(filepathArg string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", filepathArg)
	if err != nil {
		return nil, err
	}

	// Every pooled connection to ":memory:" is a separate database.
	if filepathArg == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, errors.New("failed to execute schema: " + err.Error())
	}

	return db, nil
}

// CreateItem stores a new, not-done item under a freshly generated UUID.
// Names are stored as given, empty included.
func CreateItem(db *sql.DB, name string) (models.Item, error) {
	stmt, err := db.Prepare("INSERT INTO items(uuid, name, done) VALUES(?, ?, ?)")
	if err != nil {
		return models.Item{}, err
	}
	defer stmt.Close()

	item := models.Item{UUID: uuid.New().String(), Name: name}
	if _, err := stmt.Exec(item.UUID, item.Name, item.Done); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// GetItem retrieves a single item by UUID. A missing item yields sql.ErrNoRows.
func GetItem(db *sql.DB, id string) (models.Item, error) {
	stmt, err := db.Prepare("SELECT uuid, name, done FROM items WHERE uuid = ?")
	if err != nil {
		return models.Item{}, err
	}
	defer stmt.Close()

	var item models.Item
	if err := stmt.QueryRow(id).Scan(&item.UUID, &item.Name, &item.Done); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// GetItems retrieves all items in insertion order.
func GetItems(db *sql.DB) ([]models.Item, error) {
	stmt, err := db.Prepare("SELECT uuid, name, done FROM items ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.UUID, &item.Name, &item.Done); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateItemDone sets the done flag of an item. Name is never touched.
func UpdateItemDone(db *sql.DB, id string, done bool) (int64, error) {
	stmt, err := db.Prepare("UPDATE items SET done = ? WHERE uuid = ?")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.Exec(done, id)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rowsAffected == 0 {
		return 0, sql.ErrNoRows
	}
	return rowsAffected, nil
}

// DeleteItem removes an item by UUID.
func DeleteItem(db *sql.DB, id string) (int64, error) {
	stmt, err := db.Prepare("DELETE FROM items WHERE uuid = ?")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.Exec(id)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rowsAffected == 0 {
		return 0, sql.ErrNoRows
	}
	return rowsAffected, nil
}
