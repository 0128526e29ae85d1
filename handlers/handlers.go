package handlers

import (
	"github.com/jmoiron/sqlx"
)

// Handler carries the shared dependencies of every endpoint. The database
// handle is injected once at startup instead of living in a package global.
type Handler struct {
	db        *sqlx.DB
	jwtSecret []byte
}

// New builds a Handler around an open database handle and the token secret.
func New(db *sqlx.DB, jwtSecret []byte) *Handler {
	return &Handler{db: db, jwtSecret: jwtSecret}
}
