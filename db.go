package main

import (
	"database/sql"
	"errors"
	"sync"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDuplicateEmail is returned by CreateUser when the email is taken.
var ErrDuplicateEmail = errors.New("email already registered")

// Store is the storage surface the service needs: create an identity and
// point lookups by its two keys. Lookups return nil, nil when no row
// matches.
type Store interface {
	Init() error
	CreateUser(email, hashedPassword, fullName string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	GetUserByID(id int64) (*User, error)
}

// Memory store
type MemStore struct {
	mu    sync.RWMutex
	users map[string]*User
	seq   int64
}

func NewMemStore() *MemStore {
	return &MemStore{users: map[string]*User{}, seq: 1}
}

func (m *MemStore) Init() error { return nil }

func (m *MemStore) CreateUser(email, hashedPassword, fullName string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[email]; ok {
		return nil, ErrDuplicateEmail
	}
	u := &User{ID: m.seq, Email: email, HashedPassword: hashedPassword, FullName: fullName, CreatedAt: time.Now().UTC()}
	m.seq++
	m.users[email] = u
	snapshot := *u
	return &snapshot, nil
}

func (m *MemStore) GetUserByEmail(email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[email]; ok {
		snapshot := *u
		return &snapshot, nil
	}
	return nil, nil
}

func (m *MemStore) GetUserByID(id int64) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			snapshot := *u
			return &snapshot, nil
		}
	}
	return nil, nil
}

// SQLite store
type SQLiteStore struct {
	db   *sql.DB
	path string
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &SQLiteStore{db: d, path: path}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE NOT NULL,
		hashed_password TEXT NOT NULL,
		full_name TEXT,
		created_at TEXT DEFAULT (datetime('now'))
	);`)
	return err
}

func (s *SQLiteStore) CreateUser(email, hashedPassword, fullName string) (*User, error) {
	res, err := s.db.Exec(`INSERT INTO users(email,hashed_password,full_name) VALUES(?,?,?)`, email, hashedPassword, fullName)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	id, _ := res.LastInsertId()
	return s.GetUserByID(id)
}

func (s *SQLiteStore) GetUserByEmail(email string) (*User, error) {
	return s.scanUser(s.db.QueryRow(`SELECT id,email,hashed_password,full_name,created_at FROM users WHERE email = ?`, email))
}

func (s *SQLiteStore) GetUserByID(id int64) (*User, error) {
	return s.scanUser(s.db.QueryRow(`SELECT id,email,hashed_password,full_name,created_at FROM users WHERE id = ?`, id))
}

func (s *SQLiteStore) scanUser(row *sql.Row) (*User, error) {
	var u User
	var fullName sql.NullString
	var created string
	if err := row.Scan(&u.ID, &u.Email, &u.HashedPassword, &fullName, &created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	u.FullName = fullName.String
	if t, err := time.Parse("2006-01-02 15:04:05", created); err == nil {
		u.CreatedAt = t
	}
	return &u, nil
}

// isUniqueViolation reports whether err is a sqlite unique-constraint
// failure, the counterpart of the pq 23505 check in the postgres adapter.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

// lifecycle helpers
func (m *MemStore) close() error { return nil }
func (m *MemStore) ping() bool   { return true }

func (s *SQLiteStore) close() error { return s.db.Close() }
func (s *SQLiteStore) ping() bool   { return s.db.Ping() == nil }
