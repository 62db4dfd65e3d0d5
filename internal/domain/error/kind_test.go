package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "invalid argument",
			err:  NewWalletError(ErrCodeWalletNameRequired, "name required", ErrWalletNameRequired),
			want: KindInvalidArgument,
		},
		{
			name: "not found wrapped",
			err:  fmt.Errorf("failed to load: %w", NewEntryError(ErrCodeEntryNotFound, "entry not found", ErrEntryNotFound)),
			want: KindNotFound,
		},
		{
			name: "invariant violation",
			err:  NewCreditCardError(ErrCodeInsufficientCredit, "insufficient credit", ErrInsufficientCredit),
			want: KindInvariantViolation,
		},
		{
			name: "conflict",
			err:  NewWalletError(ErrCodeWalletHasHistory, "wallet has history", ErrWalletHasHistory),
			want: KindConflict,
		},
		{
			name: "recurring invariant",
			err:  NewRecurringError(ErrCodeRecurringTemplateInactive, "inactive", ErrRecurringTemplateInactive),
			want: KindInvariantViolation,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestCodedErrorUnwrap(t *testing.T) {
	err := NewCategoryError(ErrCodeCategoryNotFound, "category not found", ErrCategoryNotFound)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Equal(t, "category not found: category not found", err.Error())
	assert.Equal(t, KindUnknown, kindFromCode("BROKEN"))
}
