package mongodb

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mrbebidas/distribuidora/internal/domain"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 10 * time.Second
)

// Server error codes for rejected-by-access-rules operations: 13 is
// Unauthorized, 8000 is the Atlas-level equivalent.
func isPermissionDenied(err error) bool {
	var se mongo.ServerError
	if !errors.As(err, &se) {
		return false
	}
	return se.HasErrorCode(13) || se.HasErrorCode(8000) || se.HasErrorMessage("not authorized")
}

// wrapWrite translates a store permission failure into the typed error the
// centralized handler presents; everything else passes through untouched.
func wrapWrite(err error, path, op string, payload any) error {
	if err == nil {
		return nil
	}
	if isPermissionDenied(err) {
		return &domain.PermissionError{Path: path, Op: op, Payload: payload, Err: err}
	}
	return err
}
