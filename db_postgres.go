package main

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type PostgresStore struct {
	db  *sql.DB
	dsn string
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	d, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	p := &PostgresStore{db: d, dsn: dsn}
	if err := p.Init(); err != nil {
		d.Close()
		return nil, err
	}
	return p, nil
}

func (p *PostgresStore) Init() error {
	// schema is owned by migrations; just verify connectivity
	return p.db.Ping()
}

func (p *PostgresStore) CreateUser(email, hashedPassword, fullName string) (*User, error) {
	var u User
	var name sql.NullString
	err := p.db.QueryRow(
		`INSERT INTO users(email,hashed_password,full_name) VALUES($1,$2,$3) RETURNING id,email,hashed_password,full_name,created_at`,
		email, hashedPassword, nullable(fullName),
	).Scan(&u.ID, &u.Email, &u.HashedPassword, &name, &u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	u.FullName = name.String
	return &u, nil
}

func (p *PostgresStore) GetUserByEmail(email string) (*User, error) {
	return p.scanUser(p.db.QueryRow(`SELECT id,email,hashed_password,full_name,created_at FROM users WHERE email = $1`, email))
}

func (p *PostgresStore) GetUserByID(id int64) (*User, error) {
	return p.scanUser(p.db.QueryRow(`SELECT id,email,hashed_password,full_name,created_at FROM users WHERE id = $1`, id))
}

func (p *PostgresStore) scanUser(row *sql.Row) (*User, error) {
	var u User
	var name sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.HashedPassword, &name, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	u.FullName = name.String
	return &u, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (p *PostgresStore) close() error { return p.db.Close() }
func (p *PostgresStore) ping() bool   { return p.db.Ping() == nil }
