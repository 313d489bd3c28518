package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestOptionsWithDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, logger.Error, o.LogLevel)
	assert.Equal(t, 5, o.MaxOpenConns)
	assert.Equal(t, 2, o.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, o.ConnMaxLifetime)
	assert.Equal(t, 10*time.Minute, o.ConnMaxIdleTime)

	custom := Options{LogLevel: logger.Silent, MaxOpenConns: 20, SkipMigrate: true}.withDefaults()
	assert.Equal(t, logger.Silent, custom.LogLevel)
	assert.Equal(t, 20, custom.MaxOpenConns)
	assert.True(t, custom.SkipMigrate)
}
