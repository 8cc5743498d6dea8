package cancelreminder

import (
	"context"
	"pushreminder/internal/core/domain/logging"
	"pushreminder/internal/core/domain/reminder"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
}

func TestCancelReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	// Setup ---
	scheduler := reminder.NewTestReminderScheduler()
	scheduler.Scheduled = []reminder.Reminder{{ID: "r-1"}, {ID: "r-2"}}
	service := New(logging.NewFakeLogger(), scheduler)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{ReminderID: "r-1"})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal([]reminder.ID{"r-1"}, scheduler.Canceled)
	assert.Equal([]reminder.Reminder{{ID: "r-2"}}, scheduler.Scheduled)
}

func (s *testSuite) TestReminderDoesNotExist() {
	// Setup ---
	scheduler := reminder.NewTestReminderScheduler()
	service := New(logging.NewFakeLogger(), scheduler)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{ReminderID: "missing"})

	// Verify ---
	assert := s.Require()
	assert.ErrorIs(err, reminder.ErrReminderDoesNotExist)
	assert.Empty(scheduler.Canceled)
}
