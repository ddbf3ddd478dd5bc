package services

import (
	"errors"
	"fmt"
	"testing"

	"localconnect/database/repository"
	"localconnect/utils"

	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	notFound := fmt.Errorf("business with id b1: %w", repository.ErrNotFound)
	dup := fmt.Errorf("follow: %w", repository.ErrDuplicateKey)

	assert.NoError(t, StoreError(nil, "x", "y"))
	assert.Equal(t, utils.KindNotFound, utils.KindOf(StoreError(notFound, "Business not found", "")))
	assert.Equal(t, utils.KindConflict, utils.KindOf(StoreError(dup, "", "Already following this business")))

	// sentinels without a message are unexpected here
	assert.Equal(t, utils.KindInternal, utils.KindOf(StoreError(notFound, "", "")))
	assert.Equal(t, utils.KindInternal, utils.KindOf(StoreError(dup, "", "")))
	assert.Equal(t, utils.KindInternal, utils.KindOf(StoreError(errors.New("socket closed"), "a", "b")))

	forbidden := utils.Forbidden("no")
	assert.Same(t, forbidden, StoreError(forbidden, "a", "b"))
}
