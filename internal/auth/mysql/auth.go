package mysql

import (
	"github.com/frahmantamala/smart-records/internal/auth"
	userDatamodel "github.com/frahmantamala/smart-records/internal/core/datamodel/user"
	"github.com/frahmantamala/smart-records/internal/database"
)

type Repository struct {
	gw *database.Gateway
}

func NewRepository(gw *database.Gateway) auth.Repository {
	return &Repository{gw: gw}
}

// GetByUsername returns nil without error when no account matches, so the
// service can collapse "unknown user" and "wrong password" into one message.
func (r *Repository) GetByUsername(username string) (*userDatamodel.User, error) {
	rows, err := r.gw.RunQuery(
		"SELECT id, username, password, created_at FROM users WHERE username = ?",
		username,
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	return &userDatamodel.User{
		ID:           row.Int64("id"),
		Username:     row.String("username"),
		PasswordHash: row.String("password"),
		CreatedAt:    row.Time("created_at"),
	}, nil
}

func (r *Repository) UsernameExists(username string) (bool, error) {
	rows, err := r.gw.RunQuery("SELECT id FROM users WHERE username = ?", username)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func (r *Repository) CreateUser(username, passwordHash string) (int64, error) {
	return r.gw.RunInsert(
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, passwordHash,
	)
}
