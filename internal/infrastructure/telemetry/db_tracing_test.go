package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db
}

func TestRegisterDBTracing_Disabled(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{Enabled: false}, zap.NewNop()))
	_, installed := db.Config.Plugins["otelgorm"]
	assert.False(t, installed)
}

func TestRegisterDBTracing_Enabled(t *testing.T) {
	db := openTestDB(t)
	core, logs := observer.New(zapcore.InfoLevel)

	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{Enabled: true, DBName: "loja"}, zap.New(core)))
	_, installed := db.Config.Plugins["otelgorm"]
	assert.True(t, installed)
	assert.Equal(t, 1, logs.FilterMessage("Database tracing enabled").Len())

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
