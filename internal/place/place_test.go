package place

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testDSN names an in-memory database after the running test. The shared
// cache keeps it reachable from additional connections opened with the same
// DSN.
func testDSN(t *testing.T) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
}

func openTestDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return gdb
}

// testDB opens a fresh in-memory store with the same uniqueness constraints
// the production schema enforces.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb := openTestDB(t, testDSN(t))

	stmts := []string{
		`create table users (
			id integer primary key autoincrement,
			user_name text not null unique,
			email text not null unique,
			password_hash text not null,
			role text not null default 'user',
			zip_code text not null,
			created_at datetime
		)`,
		`create table zip_geocodes (
			zip text primary key,
			lat real not null,
			lng real not null,
			created_at datetime
		)`,
		`create table places (
			id text primary key,
			name text not null,
			vicinity text not null default '',
			types text,
			created_at datetime
		)`,
		`create table list_entries (
			user_id integer not null,
			place_id text not null,
			notes text,
			created_at datetime,
			primary key (user_id, place_id)
		)`,
		`create table visits (
			id integer primary key autoincrement,
			user_id integer not null,
			place_id text not null,
			visit_date datetime not null,
			comments text not null default '',
			created_at datetime
		)`,
	}
	for _, s := range stmts {
		require.NoError(t, gdb.Exec(s).Error)
	}
	return gdb
}

func seedPlace(t *testing.T, gdb *gorm.DB, id, name string) {
	t.Helper()
	require.NoError(t, gdb.Create(&Place{ID: id, Name: name}).Error)
}
