package deliverreminder

import (
	"context"
	"errors"
	c "pushreminder/internal/core/domain/common"
	"pushreminder/internal/core/domain/logging"
	"pushreminder/internal/core/domain/notification"
	"pushreminder/internal/core/domain/reminder"
	"pushreminder/internal/core/domain/user"
	"pushreminder/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Rem = reminder.Reminder{
	ID:        reminder.ID("r-1"),
	Identity:  user.Identity("mario"),
	Subject:   "Tachipirina",
	TimeOfDay: reminder.TimeOfDay{Hour: 14, Minute: 30},
	At:        time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
	CreatedAt: time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC),
}

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	identities *user.TestDeliveryIdentityRepository
	dispatcher *notification.TestDispatcher
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.identities = user.NewTestDeliveryIdentityRepository()
	suite.dispatcher = notification.NewTestDispatcher(true)
	suite.service = New(suite.logger, suite.identities, suite.dispatcher)
}

func TestDeliverReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestDelivered() {
	// Setup ---
	s.identities.Identities["mario"] = user.DeliveryIdentity{
		PushProviderID:     "os-1",
		PushSubscriptionID: c.NewOptional("sub-1", true),
	}

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{Reminder: Rem})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(Result{Delivered: true}, result)
	assert.Equal([]user.Identity{"mario"}, s.identities.GetWith)
	assert.Len(s.dispatcher.Sent, 1)
	payload := s.dispatcher.Sent[0]
	assert.Equal("os-1", payload.PushProviderID)
	assert.Equal(c.NewOptional("sub-1", true), payload.PushSubscriptionID)
	assert.Equal(notification.ReminderTitle, payload.Title)
	assert.Equal("È ora di prendere Tachipirina alle 14:30", payload.Message)
	assert.Equal(notification.ReminderType, payload.Data["type"])
	infos := s.logger.Records(logging.INFO)
	assert.Len(infos, 1)
	assert.Equal("Reminder has been sent.", infos[0].Msg)
}

func (s *testSuite) TestNotDelivered() {
	// Setup ---
	s.identities.Identities["mario"] = user.DeliveryIdentity{PushProviderID: "os-1"}
	s.dispatcher.Result = false

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{Reminder: Rem})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(Result{}, result)
	assert.Len(s.dispatcher.Sent, 1)
	assert.Len(s.logger.Records(logging.WARNING), 1)
	assert.Empty(s.logger.Records(logging.INFO))
}

func (s *testSuite) TestUnknownIdentityIsSilentlySkipped() {
	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{Reminder: Rem})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.True(result.Skipped)
	assert.Empty(s.dispatcher.Sent)
	assert.Empty(s.logger.Records(logging.ERROR))
	assert.Empty(s.logger.Records(logging.WARNING))
}

func (s *testSuite) TestEmptyProviderIDIsSilentlySkipped() {
	// Setup ---
	s.identities.Identities["mario"] = user.DeliveryIdentity{PushSubscriptionID: c.NewOptional("sub-1", true)}

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{Reminder: Rem})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.True(result.Skipped)
	assert.Empty(s.dispatcher.Sent)
	assert.Empty(s.logger.Records(logging.ERROR))
}

func (s *testSuite) TestLookupError() {
	// Setup ---
	s.identities.GetError = errors.New("connection refused")

	// Exercise ---
	result, err := s.service.Run(context.Background(), Input{Reminder: Rem})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Equal(Result{}, result)
	assert.Empty(s.dispatcher.Sent)
	errs := s.logger.Records(logging.ERROR)
	assert.Len(errs, 1)
	value, ok := errs[0].Value("err")
	assert.True(ok)
	assert.Equal(s.identities.GetError, value)
}

func (s *testSuite) TestPanicIsRecovered() {
	cases := []struct {
		id    string
		setup func(identities *user.TestDeliveryIdentityRepository, dispatcher *notification.TestDispatcher)
	}{
		{
			id: "lookup",
			setup: func(identities *user.TestDeliveryIdentityRepository, _ *notification.TestDispatcher) {
				identities.GetPanic = "lookup exploded"
			},
		},
		{
			id: "dispatch",
			setup: func(identities *user.TestDeliveryIdentityRepository, dispatcher *notification.TestDispatcher) {
				identities.Identities["mario"] = user.DeliveryIdentity{PushProviderID: "os-1"}
				dispatcher.Panic = errors.New("dispatch exploded")
			},
		},
	}
	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			// Setup ---
			logger := logging.NewFakeLogger()
			identities := user.NewTestDeliveryIdentityRepository()
			dispatcher := notification.NewTestDispatcher(true)
			testcase.setup(identities, dispatcher)
			service := New(logger, identities, dispatcher)

			// Exercise ---
			var (
				result Result
				err    error
			)
			assert := s.Require()
			assert.NotPanics(func() {
				result, err = service.Run(context.Background(), Input{Reminder: Rem})
			})

			// Verify ---
			assert.Nil(err)
			assert.Equal(Result{}, result)
			assert.Len(logger.Records(logging.ERROR), 1)
		})
	}
}

func (s *testSuite) TestIdentityIsResolvedOnEveryRun() {
	// Setup ---
	s.identities.Identities["mario"] = user.DeliveryIdentity{PushProviderID: "os-1"}
	_, err := s.service.Run(context.Background(), Input{Reminder: Rem})
	s.Require().Nil(err)
	s.identities.Identities["mario"] = user.DeliveryIdentity{PushProviderID: "os-2"}

	// Exercise ---
	_, err = s.service.Run(context.Background(), Input{Reminder: Rem})

	// Verify ---
	assert := s.Require()
	assert.Nil(err)
	assert.Len(s.identities.GetWith, 2)
	assert.Len(s.dispatcher.Sent, 2)
	assert.Equal("os-1", s.dispatcher.Sent[0].PushProviderID)
	assert.Equal("os-2", s.dispatcher.Sent[1].PushProviderID)
}
