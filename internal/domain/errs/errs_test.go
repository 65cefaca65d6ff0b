package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindSentinels(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", InputFormat("option_chain", errors.New("bad date")))

	assert.True(t, errors.Is(err, ErrInputFormat))
	assert.False(t, errors.Is(err, ErrFetch))
	assert.Equal(t, KindInputFormat, KindOf(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestFetchKeepsOnlyMessage(t *testing.T) {
	cause := errors.New("404 Not Found: symbol ZZZZ")
	err := Fetch("info", cause)

	assert.Equal(t, "info: fetch error: 404 Not Found: symbol ZZZZ", err.Error())
	assert.Nil(t, errors.Unwrap(err))
	assert.False(t, errors.Is(err, cause))
}

func TestTableConstructionUnwraps(t *testing.T) {
	cause := errors.New("length mismatch")
	err := TableConstruction("actions", cause)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrTableConstruction)
}
