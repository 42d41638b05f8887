package infra

import (
	"errors"
	"log/slog"

	"football-field-booking/internal/pkg/errs"
	"football-field-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
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

// WrapRepoErr wraps a driver error. Without an explicit kind the error is classified
// from its postgres error code.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := Classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{slog.String("kind", string(k))}

	var constraint string
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		constraint = pgErr.ConstraintName
		logArgs = append(logArgs, slog.String("pg_code", pgErr.Code), slog.String("constraint", constraint))
	}

	if k == KindDBFailure {
		slog.Error("Repository error: "+msg, logArgs...)
	} else {
		slog.Debug("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: err}
}

// Classify maps a driver error onto a repository error kind.
func Classify(err error) RepositoryErrorKind {
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}
	switch pgErr.Code {
	case pgErrUniqueViolation:
		return KindDuplicateKey
	case pgErrExclusionViolation:
		return KindExclusionViolated
	case pgErrForeignKeyViolation:
		return KindForeignKeyViolated
	default:
		return KindDBFailure
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrExclusionViolation  = "23P01"
	pgErrForeignKeyViolation = "23503"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindExclusionViolated  RepositoryErrorKind = "EXCLUSION_VIOLATED"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)
