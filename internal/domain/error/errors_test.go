package error

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid field value", ErrInvalidFieldValue, CodeInvalidFieldValue},
		{"time overflow", ErrTimeOverflow, CodeTimeOverflow},
		{"time underflow", ErrTimeUnderflow, CodeTimeUnderflow},
		{"unknown symbol", ErrUnknownSymbol, CodeUnknownSymbol},
		{"duplicate symbol", ErrDuplicateSymbol, CodeDuplicateSymbol},
		{"invalid entry ID", ErrInvalidEntryID, CodeInvalidEntryID},
		{"invalid label", ErrInvalidLabel, CodeInvalidLabel},
		{"invalid duration", ErrInvalidDuration, CodeInvalidDuration},
		{"duplicate entry", ErrDuplicateEntry, CodeDuplicateEntry},
		{"entry not found", ErrEntryNotFound, CodeEntryNotFound},
		{"unrecognized error", fmt.Errorf("something else"), CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, ErrorCode(tc.err))
		})
	}

	t.Run("Wrapped errors keep their code", func(t *testing.T) {
		wrapped := fmt.Errorf("shift failed: %w", ErrTimeOverflow)
		assert.Equal(t, CodeTimeOverflow, ErrorCode(wrapped))
	})

	t.Run("Detailed errors keep their code", func(t *testing.T) {
		assert.Equal(t, CodeInvalidFieldValue, ErrorCode(NewFieldValueError("hour", 24, 24)))
		assert.Equal(t, CodeTimeOverflow, ErrorCode(NewTimeRangeError(0, 1, ErrTimeOverflow)))
		assert.Equal(t, CodeUnknownSymbol, ErrorCode(NewUnknownSymbolError('Y', "YY")))
	})
}

func TestFieldValueError(t *testing.T) {
	err := NewFieldValueError("minute", 60, 60)

	assert.ErrorIs(t, err, ErrInvalidFieldValue)
	assert.Equal(t, "invalid value for minute: 60 (must be in [0,60))", err.Error())

	fields := err.(*FieldValueError).LogFields()
	assert.Equal(t, "minute", fields["field"])
	assert.Equal(t, 60, fields["value"])
	assert.Equal(t, CodeInvalidFieldValue, fields["error_code"])
}

func TestTimeRangeError(t *testing.T) {
	err := NewTimeRangeError(86_399_999_999, 1, ErrTimeOverflow)

	assert.ErrorIs(t, err, ErrTimeOverflow)
	assert.NotErrorIs(t, err, ErrTimeUnderflow)
	assert.Contains(t, err.Error(), "86399999999")

	var rangeErr *TimeRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, int64(1), rangeErr.DeltaMicros)
	assert.Equal(t, ErrTimeOverflow, rangeErr.Unwrap())
}

func TestUnknownSymbolError(t *testing.T) {
	err := NewUnknownSymbolError('Y', "YYYY-MM")

	assert.ErrorIs(t, err, ErrUnknownSymbol)
	assert.Contains(t, err.Error(), `"Y"`)
	assert.Contains(t, err.Error(), `"YYYY-MM"`)
}

func TestErrorClassification(t *testing.T) {
	t.Run("Categories are disjoint", func(t *testing.T) {
		validation := NewFieldValueError("second", 61, 60)
		rangeErr := NewTimeRangeError(0, -1, ErrTimeUnderflow)
		configuration := NewUnknownSymbolError('Q', "Q")

		assert.True(t, IsValidationError(validation))
		assert.False(t, IsRangeError(validation))
		assert.False(t, IsConfigurationError(validation))

		assert.True(t, IsRangeError(rangeErr))
		assert.False(t, IsValidationError(rangeErr))
		assert.False(t, IsConfigurationError(rangeErr))

		assert.True(t, IsConfigurationError(configuration))
		assert.False(t, IsValidationError(configuration))
		assert.False(t, IsRangeError(configuration))
	})

	t.Run("Entry errors", func(t *testing.T) {
		assert.True(t, IsEntryNotFoundError(ErrEntryNotFound))
		assert.True(t, IsNotFoundError(ErrEntryNotFound))
		assert.True(t, IsNotFoundError(ErrNotFound))
		assert.True(t, IsDuplicateEntryError(ErrDuplicateEntry))
		assert.False(t, IsEntryNotFoundError(ErrDuplicateEntry))
	})
}
