package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	"quickmart/config"
	"quickmart/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestShouldAutoMigrate(t *testing.T) {
	assert.True(t, shouldAutoMigrate(constants.EnvLocal))
	assert.True(t, shouldAutoMigrate(constants.EnvDevelop))
	assert.False(t, shouldAutoMigrate(constants.EnvProduction))
	assert.False(t, shouldAutoMigrate(""))
}

func TestPoolWaitAttrs(t *testing.T) {
	prev := sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond}

	_, waited := poolWaitAttrs(prev, prev)
	assert.False(t, waited)

	cur := sql.DBStats{WaitCount: 5, WaitDuration: 30 * time.Millisecond, MaxOpenConnections: 10}
	attrs, waited := poolWaitAttrs(prev, cur)
	assert.True(t, waited)

	byKey := map[string]slog.Value{}
	for _, a := range attrs {
		byKey[a.Key] = a.Value
	}
	assert.Equal(t, int64(2), byKey["waitCountDelta"].Int64())
	assert.Equal(t, 10*time.Millisecond, byKey["avgWait"].Duration())
}

func TestConstraintErrors(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset")))

	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "fcm_token" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("timeout")))
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := newGormSlogLogger(base, &config.Config{})
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "component=gorm")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	l.LogMode(logger.Info).Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "SELECT 1")
}
