package charterrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorParts(t *testing.T) {
	wrapped := fmt.Errorf("line 3: %w", ErrMalformedRow)

	assert.Equal(t, ErrMalformedRow, Classify(wrapped))
	assert.Equal(t, "MalformedRow", GetErrorName(wrapped))
	assert.Equal(t, "R2", GetErrorCode(wrapped))
	assert.Equal(t, "Row does not match the table schema.", GetErrorDesc(wrapped))
	assert.Equal(t, "no file found", GetErrorDesc(ErrMissingInput))
	assert.Equal(t, "C3", GetErrorCode(fmt.Errorf("0 x 0: %w", ErrBadSize)))
}

func TestUnclassified(t *testing.T) {
	plain := errors.New("boom")
	assert.Nil(t, Classify(plain))
	assert.Equal(t, "boom", GetErrorName(plain))
	assert.Equal(t, "", GetErrorCode(plain))
	assert.Equal(t, "No Error", GetErrorName(nil))
}
