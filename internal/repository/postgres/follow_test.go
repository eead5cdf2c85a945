package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFollowRepository(t *testing.T) {
	db := &Connection{}
	repo := NewFollowRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}
