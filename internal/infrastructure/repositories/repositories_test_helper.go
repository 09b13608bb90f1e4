package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		username TEXT UNIQUE,
		phone TEXT UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		gender TEXT,
		dob TEXT,
		address TEXT,
		city TEXT,
		state TEXT,
		country TEXT,
		lga TEXT,
		marital_status TEXT,
		avatar TEXT,
		password_hash TEXT NOT NULL,
		payment_pin_hash TEXT,
		authentication_pin_hash TEXT,
		is_admin BOOLEAN DEFAULT 0,
		email_verified BOOLEAN DEFAULT 0,
		is_kyc BOOLEAN DEFAULT 0,
		is_profile_complete BOOLEAN DEFAULT 0,
		profile_complete_percentage INTEGER DEFAULT 0,
		is_employment_information_complete BOOLEAN DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createOTPTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE otps (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		code_hash TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME,
		UNIQUE (user_id, type)
	);`)
}

func createSettingsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE settings (
		user_id TEXT PRIMARY KEY,
		has_payment_pin BOOLEAN DEFAULT 0,
		has_authentication_pin BOOLEAN DEFAULT 0,
		enabled_biometrics BOOLEAN DEFAULT 0,
		enabled_notifications BOOLEAN DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createKYCTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE kyc_records (
		user_id TEXT PRIMARY KEY,
		bvn TEXT NOT NULL,
		nin_number TEXT,
		nin_image TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createEmploymentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE employment_information (
		user_id TEXT PRIMARY KEY,
		occupation TEXT NOT NULL,
		sector TEXT,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		address TEXT NOT NULL,
		start_date TEXT,
		end_date TEXT,
		monthly_income REAL DEFAULT 0,
		salary_date TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createLoanTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE loans (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		amount REAL NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createPushTokenTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE push_tokens (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		token TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (user_id, token)
	);`)
}
