package infra

import (
	"errors"

	"session-booking/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a driver error and marks it with the matching domain sentinel,
// so use cases can branch on errs.ErrNotFound / errs.ErrConflict without importing pgx.
func WrapRepoErr(msg string, err error) error {
	kind := classify(err)
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	repoErr := error(RepositoryError{Kind: kind, msg: msg, err: err})

	switch kind {
	case KindNotFound:
		return errs.Mark(repoErr, errs.ErrNotFound)
	case KindDuplicateKey, KindConflict:
		return errs.Mark(repoErr, errs.ErrConflict)
	default:
		return errs.Mark(repoErr, errs.ErrDatabaseOperationFailed)
	}
}

// NotFound builds a NOT_FOUND error for lookups that return no row without a driver error.
func NotFound(msg string) error {
	return errs.Mark(RepositoryError{Kind: KindNotFound, msg: msg}, errs.ErrNotFound)
}

// Conflict reports a conditional write whose precondition did not hold.
func Conflict(msg string) error {
	return errs.Mark(RepositoryError{Kind: KindConflict, msg: msg}, errs.ErrConflict)
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsRetryable reports serialization failures and deadlocks.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return true
	}
	return false
}

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return KindDuplicateKey
		case pgerrcode.ForeignKeyViolation:
			return KindForeignKeyViolated
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return KindConflict
		}
	}
	return KindDBFailure
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)
