package infra

import (
	"errors"
	"log/slog"

	"fullplanes/internal/pkg/errs"
)

type ErrorKind string

// Error is returned by every adapter in infra so callers branch on Kind, not on driver errors.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

// Wrap logs the failure at a level matching its kind and returns it as an Error.
func Wrap(slogger *slog.Logger, kind ErrorKind, msg string, err error, attrs ...any) error {
	logArgs := append([]any{slog.String("kind", string(kind))}, attrs...)
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	switch kind {
	case KindNoOffers, KindNotFound:
		slogger.Debug("Infra error: "+msg, logArgs...)
	case KindRateLimited, KindUnavailable:
		slogger.Warn("Infra error: "+msg, logArgs...)
	default:
		slogger.Error("Infra error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

// NewError classifies err without logging; adapters use it for failures a caller may still recover from.
func NewError(kind ErrorKind, msg string, err error) error {
	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or KindUnavailable for errors not produced by this package.
func KindOf(err error) ErrorKind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnavailable
}

// Storage error kinds
const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindStoreFailure ErrorKind = "STORE_FAILURE"
)

// Provider error kinds
const (
	KindAuthFailure      ErrorKind = "AUTH_FAILURE"
	KindRateLimited      ErrorKind = "RATE_LIMITED"
	KindNoOffers         ErrorKind = "NO_OFFERS"
	KindMalformedRequest ErrorKind = "MALFORMED_REQUEST"
	KindUnavailable      ErrorKind = "UNAVAILABLE"
)
