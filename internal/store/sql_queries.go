package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/site-vault/models"
)

var (
	userColumns = []string{
		"id",
		"email",
		"password_hash",
		"master_password_hash",
		"attempt_count",
		"next_allowed_attempt",
		"created_at",
	}

	siteSecretColumns = []string{
		"id",
		"user_id",
		"website",
		"encrypted_password",
		"created_at",
	}
)

const (
	usersTable       = "users"
	siteSecretsTable = "site_secrets"
)

func returning(columns ...string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.
		Insert(usersTable).
		Columns("email", "password_hash", "master_password_hash", "attempt_count", "created_at").
		Values(user.Email, user.PasswordHash, user.MasterPasswordHash, 0, user.CreatedAt).
		Suffix(returning(userColumns...)).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildUpdateUserAttemptsQuery(b sq.StatementBuilderType, userID int64, attempts models.LoginAttempts) (string, []any, error) {
	return b.
		Update(usersTable).
		Set("attempt_count", attempts.Count).
		Set("next_allowed_attempt", nullTime(attempts.NextAllowedAttempt)).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildRecordFailedAttemptQuery increments the counter in one statement.
// Both SET expressions read the pre-update row, so the strike condition is
// evaluated once against the same counter value.
func buildRecordFailedAttemptQuery(b sq.StatementBuilderType, userID int64, maxAttempts int, lockedUntil time.Time) (string, []any, error) {
	return b.
		Update(usersTable).
		Set("attempt_count", sq.Expr("CASE WHEN attempt_count + 1 >= ? THEN 0 ELSE attempt_count + 1 END", maxAttempts)).
		Set("next_allowed_attempt", sq.Expr("CASE WHEN attempt_count + 1 >= ? THEN ? ELSE next_allowed_attempt END", maxAttempts, lockedUntil.UTC())).
		Where(sq.Eq{"id": userID}).
		Suffix(returning("attempt_count", "next_allowed_attempt")).
		ToSql()
}

func buildCreateSiteSecretQuery(b sq.StatementBuilderType, secret models.SiteSecret) (string, []any, error) {
	return b.
		Insert(siteSecretsTable).
		Columns(siteSecretColumns...).
		Values(secret.ID, secret.UserID, secret.Website, secret.EncryptedPassword, secret.CreatedAt).
		ToSql()
}

func buildListSiteSecretsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.
		Select(siteSecretColumns...).
		From(siteSecretsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildFindSiteSecretQuery(b sq.StatementBuilderType, userID int64, id string) (string, []any, error) {
	return b.
		Select(siteSecretColumns...).
		From(siteSecretsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildDeleteSiteSecretQuery(b sq.StatementBuilderType, userID int64, id string) (string, []any, error) {
	return b.
		Delete(siteSecretsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
