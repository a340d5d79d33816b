package sqlclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.Interactive())

	cfg.CSVFile = "users.csv"
	assert.Equal(t, ErrMissingImportTarget, cfg.Validate())
	assert.False(t, cfg.Interactive())

	cfg.Database = "shop"
	assert.Equal(t, ErrMissingImportTarget, cfg.Validate())

	cfg.Table = "users"
	assert.NoError(t, cfg.Validate())

	cfg.PageThreshold = -1
	assert.EqualError(t, cfg.Validate(), "page threshold must not be negative, got -1")
}
