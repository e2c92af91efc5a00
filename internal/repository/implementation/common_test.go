package implementation

import (
	"errors"
	"fmt"
	"testing"

	"mentoria-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	err := translateError(fmt.Errorf("insert slot: %w", gorm.ErrDuplicatedKey))
	assert.ErrorIs(t, err, contract.ErrDuplicate)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other))
	assert.NoError(t, translateError(nil))
}
