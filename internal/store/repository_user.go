package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/site-vault/internal/logger"
	"github.com/MKhiriev/site-vault/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It serves both PostgreSQL and SQLite through [DB].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with UserID and
// CreatedAt filled from the database.
//
// A unique violation on email is reported as [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildCreateUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByEmail looks an account up by its exact email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

// FindUserByID looks an account up by its identifier.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": userID})
}

func (r *userRepository) findUser(ctx context.Context, fn string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder(), where)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdateUserAttempts overwrites attempt_count and next_allowed_attempt.
func (r *userRepository) UpdateUserAttempts(ctx context.Context, userID int64, attempts models.LoginAttempts) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserAttemptsQuery(r.db.builder(), userID, attempts)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserAttempts").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserAttempts").Msg("error updating attempts")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// RecordFailedAttempt applies the increment-or-strike transition in a single
// UPDATE ... RETURNING statement, so concurrent failures never lose a count.
func (r *userRepository) RecordFailedAttempt(ctx context.Context, userID int64, maxAttempts int, lockedUntil time.Time) (models.LoginAttempts, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordFailedAttemptQuery(r.db.builder(), userID, maxAttempts, lockedUntil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RecordFailedAttempt").Msg("error building query")
		return models.LoginAttempts{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.RecordFailedAttempt").Msg("error recording attempt")
		return models.LoginAttempts{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var (
		attempts models.LoginAttempts
		next     dbTime
	)
	if err = row.Scan(&attempts.Count, &next); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LoginAttempts{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.RecordFailedAttempt").Msg("error: scanning error")
		return models.LoginAttempts{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	attempts.NextAllowedAttempt = next.Ptr()

	return attempts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user    models.User
		next    dbTime
		created dbTime
	)
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordHash,
		&user.MasterPasswordHash,
		&user.Attempts.Count,
		&next,
		&created,
	)
	if err != nil {
		return models.User{}, err
	}
	user.Attempts.NextAllowedAttempt = next.Ptr()
	user.CreatedAt = created.Time
	return user, nil
}
