package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorHelper(t *testing.T) {
	log := NewFakeLogger()
	err := errors.New("boom")

	Error(context.Background(), log, err, Entry("reminderID", "r-1"))

	assert := require.New(t)
	records := log.Records(ERROR)
	assert.Len(records, 1)
	assert.Equal("boom", records[0].Msg)
	value, ok := records[0].Value("err")
	assert.True(ok)
	assert.Equal(err, value)
	value, ok = records[0].Value("reminderID")
	assert.True(ok)
	assert.Equal("r-1", value)
}

func TestErrorHelperIgnoresNil(t *testing.T) {
	log := NewFakeLogger()

	Error(context.Background(), log, nil)

	require.Empty(t, log.Logged)
}

func TestSourceEntry(t *testing.T) {
	require.Equal(t, LogEntry{Key: "source", Value: "Scheduler"}, Source("Scheduler"))
}

func TestFakeLoggerKeepsLevels(t *testing.T) {
	log := NewFakeLogger()
	ctx := context.Background()

	log.Debug(ctx, "d")
	log.Info(ctx, "i")
	log.Warning(ctx, "w")
	log.Error(ctx, "e")

	assert := require.New(t)
	assert.Len(log.Logged, 4)
	assert.Len(log.Records(DEBUG), 1)
	assert.Len(log.Records(INFO), 1)
	assert.Len(log.Records(WARNING), 1)
	assert.Len(log.Records(ERROR), 1)
	assert.Equal("w", log.Records(WARNING)[0].Msg)
}
