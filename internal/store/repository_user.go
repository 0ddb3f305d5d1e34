// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table and, for the listing, the "user_settings" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// FindUserByID returns the user with the given id or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildFindUserByIDQuery(r.builder, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "userRepository.FindUserByID", query, args)
}

// FindUserByUserName returns the user with the given name (case-insensitive)
// or [ErrNoUserWasFound].
func (r *userRepository) FindUserByUserName(ctx context.Context, userName string) (models.User, error) {
	query, args, err := buildFindUserByUserNameQuery(r.builder, userName)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "userRepository.FindUserByUserName", query, args)
}

// FindUserByEmail returns the user with the given email (case-insensitive)
// or [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildFindUserByEmailQuery(r.builder, email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "userRepository.FindUserByEmail", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.DB.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.UserName, &user.RealName, &user.Email, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// CreateUser inserts user and returns it with the assigned UserID.
//
// Error handling:
//   - unique violation on the user name → [ErrUserNameAlreadyExists].
//   - unique violation on the email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&user.UserID)
	})
	if err != nil {
		if mapped := userConstraintError(err); mapped != nil {
			log.Warn().Err(err).Str("func", "userRepository.CreateUser").Msg("user already exists")
			return models.User{}, mapped
		}

		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().Str("func", "userRepository.CreateUser").Int64("user_id", user.UserID).Msg("user created")

	return user, nil
}

// UpdateUser stores the user name, real name and email of user.
// Returns [ErrNoUserWasFound] when no row was updated.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.builder, user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.withRetry(ctx, func() error {
		res, execErr := r.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		if mapped := userConstraintError(err); mapped != nil {
			log.Warn().Err(err).Str("func", "userRepository.UpdateUser").Int64("user_id", user.UserID).Msg("user already exists")
			return mapped
		}

		log.Err(err).Str("func", "userRepository.UpdateUser").Int64("user_id", user.UserID).Msg("failed to update user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// SetPassword replaces the stored password verifier.
func (r *userRepository) SetPassword(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetPasswordQuery(r.builder, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "userRepository.SetPassword").Int64("user_id", userID).Msg("failed to set password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteUser removes the user with its tree-scoped and personal settings
// inside one transaction.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "userRepository.DeleteUser").Int64("user_id", userID).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, stmt := range buildDeleteUserQueries(r.builder, userID) {
		query, args, buildErr := stmt.ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).Str("func", "userRepository.DeleteUser").Int64("user_id", userID).Msg("failed to delete user")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "userRepository.DeleteUser").Int64("user_id", userID).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// AllUsers returns every real account ordered by user name.
func (r *userRepository) AllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAllUsersQuery(r.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.AllUsers").Msg("failed to query users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(&user.UserID, &user.UserName, &user.RealName, &user.Email, &user.PasswordHash); scanErr != nil {
			log.Err(scanErr).Str("func", "userRepository.AllUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "userRepository.AllUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// CountUsers returns the number of real accounts.
func (r *userRepository) CountUsers(ctx context.Context) (int, error) {
	query, args, err := buildCountUsersQuery(r.builder)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.count(ctx, "userRepository.CountUsers", query, args)
}

func (r *userRepository) count(ctx context.Context, funcName, query string, args []any) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to count users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}

// listRowsPrealloc caps the row buffer reserved up front; larger pages grow
// as rows arrive.
const listRowsPrealloc = 100

// ListUsers returns one page of the user list and the filtered total.
func (r *userRepository) ListUsers(ctx context.Context, listQuery models.UserListQuery) ([]models.UserListRow, int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.builder, listQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Str("search", listQuery.Search).Msg("failed to query user list")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.UserListRow, 0, min(max(listQuery.Length, 10), listRowsPrealloc))
	for rows.Next() {
		var (
			row                       models.UserListRow
			verified, verifiedByAdmin string
		)

		scanErr := rows.Scan(
			&row.UserID,
			&row.UserName,
			&row.RealName,
			&row.Email,
			&row.Language,
			&row.RegTimestamp,
			&row.SessionTime,
			&verified,
			&verifiedByAdmin,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "userRepository.ListUsers").Msg("failed to scan user list row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		row.Verified = models.ParseFlag(verified)
		row.VerifiedByAdmin = models.ParseFlag(verifiedByAdmin)
		result = append(result, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	countQuery, countArgs, err := buildCountFilteredUsersQuery(r.builder, listQuery.Search)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	filtered, err := r.count(ctx, "userRepository.ListUsers", countQuery, countArgs)
	if err != nil {
		return nil, 0, err
	}

	return result, filtered, nil
}

// userConstraintError maps a unique violation to the matching sentinel.
func userConstraintError(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return nil
	}

	switch {
	case strings.Contains(constraint, "user_name"):
		return ErrUserNameAlreadyExists
	case strings.Contains(constraint, "email"):
		return ErrEmailAlreadyExists
	default:
		return nil
	}
}
