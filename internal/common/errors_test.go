package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{
		ErrorNotFound, ErrAlreadyExists, ErrSelfDeleteForbidden,
		ErrInvalidTimeFormat, ErrUnknownField, ErrPersistenceFailure,
		ErrorUnauthorized, ErrForbidden,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	err := fmt.Errorf("save routes: %w", ErrPersistenceFailure)
	assert.True(t, errors.Is(err, ErrPersistenceFailure))
}
