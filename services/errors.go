package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Kind classifies a service failure; the HTTP layer maps each kind to a status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is returned by every service operation that fails. Detail is safe to
// show to the caller; Err, when set, is the underlying cause and is only logged.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(detail string) *Error { return &Error{Kind: KindValidation, Detail: detail} }
func NotFound(detail string) *Error { return &Error{Kind: KindNotFound, Detail: detail} }
func Conflict(detail string) *Error { return &Error{Kind: KindConflict, Detail: detail} }
func Unauthorized(detail string) *Error { return &Error{Kind: KindUnauthorized, Detail: detail} }
func Forbidden(detail string) *Error { return &Error{Kind: KindForbidden, Detail: detail} }

// KindOf returns the kind carried by err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

// storageError logs a database failure and hides it behind a generic detail.
func storageError(op string, err error) error {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr
	}
	logrus.WithError(err).WithField("op", op).Error("storage failure")
	return &Error{Kind: KindInternal, Detail: "Internal server error", Err: fmt.Errorf("%s: %w", op, err)}
}

// writeError turns a duplicate-key failure from the store into a conflict,
// covering the window between a pre-check and the insert.
func writeError(op string, err error, conflictDetail string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		logrus.WithField("op", op).Warn("unique constraint rejected write")
		return Conflict(conflictDetail)
	}
	return storageError(op, err)
}

// findOne loads the first row matching conds into dest, reporting a missing
// row as NotFound(notFound).
func findOne(tx *gorm.DB, dest interface{}, notFound string, conds ...interface{}) error {
	err := tx.First(dest, conds...).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(notFound)
	}
	return storageError(fmt.Sprintf("find %T", dest), err)
}

// CheckOwnership is the single authorization rule for user-owned resources:
// only the author may edit or delete what they created.
func CheckOwnership(authorID, currentUserID uint, action, entity string) error {
	if authorID == currentUserID {
		return nil
	}
	logrus.WithFields(logrus.Fields{
		"user_id":   currentUserID,
		"author_id": authorID,
		"entity":    entity,
		"action":    action,
	}).Warn("ownership check failed")
	return Forbidden(fmt.Sprintf("Not allowed to %s this %s", action, entity))
}
