package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestParseError_RecordNotFound(t *testing.T) {
	info := ParseError(gorm.ErrRecordNotFound, "product")
	assert.Equal(t, ResourceNotFound, info.Code)
	assert.Equal(t, "Product not found", info.Message)

	info = ParseError(gorm.ErrRecordNotFound, "somewhere else")
	assert.Equal(t, "Resource not found", info.Message)
}

func TestParseError_DuplicateKey(t *testing.T) {
	err := errors.New(`ERROR: duplicate key value violates unique constraint "stores_pkey"`)
	info := ParseError(err, "store")
	assert.Equal(t, ResourceAlreadyExists, info.Code)
}

func TestParseError_NotNullViolation(t *testing.T) {
	err := errors.New(`ERROR: null value in column "name" violates not-null constraint`)
	info := ParseError(err, "store")
	assert.Equal(t, ValidationRequired, info.Code)
}

func TestParseError_ConnectionFailure(t *testing.T) {
	err := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	info := ParseError(err, "order")
	assert.Equal(t, InternalDatabaseError, info.Code)
}

func TestParseError_Unknown(t *testing.T) {
	info := ParseError(errors.New("something odd"), "cart")
	assert.Equal(t, InternalServerError, info.Code)
}
