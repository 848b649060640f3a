package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hzkfs012/zapatoofficial/internal/models"
)

// AuthRepository defines the interface for user account database operations.
type AuthRepository interface {
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	CreateUser(executor SQLExecutor, user *models.User) (*models.User, error)
}

type authRepository struct {
	db *sql.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

const selectUserFields = `
	id, username, email, password_hash, full_name, role, is_active, created_at, updated_at
`

func scanUserRow(row scanner) (*models.User, error) {
	var user models.User
	var fullName sql.NullString

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&fullName, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning user: %v", ErrDatabaseError, err)
	}

	if fullName.Valid {
		user.FullName = &fullName.String
	}
	return &user, nil
}

func (r *authRepository) GetUserByUsername(username string) (*models.User, error) {
	query := "SELECT " + selectUserFields + " FROM users WHERE username = $1"
	return scanUserRow(r.db.QueryRow(query, username))
}

func (r *authRepository) GetUserByID(id int64) (*models.User, error) {
	query := "SELECT " + selectUserFields + " FROM users WHERE id = $1"
	return scanUserRow(r.db.QueryRow(query, id))
}

func (r *authRepository) CreateUser(executor SQLExecutor, user *models.User) (*models.User, error) {
	query := `INSERT INTO users (username, email, password_hash, full_name, role)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, is_active, created_at, updated_at`

	err := executor.QueryRow(query,
		user.Username, user.Email, user.PasswordHash, user.FullName, user.Role,
	).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return user, nil
}
