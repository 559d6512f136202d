package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aditya/universe/internal/app/models"
	"github.com/aditya/universe/internal/pkg/apperrors"
	"github.com/aditya/universe/internal/pkg/dberrors"
)

// UserRepository handles database operations for student accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The unique constraints on email and student_id
// close the signup check-then-insert race; a violation surfaces as
// apperrors.ErrConflict.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query, args, err := psql.Insert("users").
		Columns("id", "name", "email", "password", "student_id", "joined_date").
		Values(user.ID, user.Name, user.Email, user.Password, user.StudentID, user.JoinedDate).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by email, or apperrors.ErrResourceNotFound
// when no account has it.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query, args, err := psql.Select("id", "name", "email", "password", "student_id", "joined_date").
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var user models.User
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.StudentID,
		&user.JoinedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// ExistsByEmailOrStudentID reports whether any account already holds the
// email or the student identifier.
func (r *UserRepository) ExistsByEmailOrStudentID(ctx context.Context, email, studentID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR student_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email, studentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}
