package sendnotification

import (
	"context"
	"net/http"
	"net/http/httptest"
	c "pushreminder/internal/core/domain/common"
	"pushreminder/internal/core/domain/notification"
	service "pushreminder/internal/core/services/send_notification"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	delivered bool
	input     *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	result.Delivered = s.delivered
	return result, nil
}

func TestSendNotificationHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		delivered      bool
		expectedStatus int
		expectedBody   string
		expectedInput  *service.Input
	}{
		{
			id: "delivered",
			body: `{
				"push_provider_id": "onesignal-1",
				"push_subscription_id": "subscription-1",
				"title": "Ciao",
				"message": "Messaggio",
				"data": {"type": "test"}
			}`,
			delivered:      true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"delivered": true}`,
			expectedInput: &service.Input{Payload: notification.Payload{
				PushProviderID:     "onesignal-1",
				PushSubscriptionID: c.NewOptional("subscription-1", true),
				Title:              "Ciao",
				Message:            "Messaggio",
				Data:               map[string]interface{}{"type": "test"},
			}},
		},
		{
			id:             "incomplete-payload-is-forwarded",
			body:           `{"title": "Ciao", "push_subscription_id": ""}`,
			delivered:      false,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"delivered": false}`,
			expectedInput:  &service.Input{Payload: notification.Payload{Title: "Ciao"}},
		},
		{
			id:             "invalid-json",
			body:           `[]`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "title-too-long",
			body:           `{"push_provider_id": "p", "title": "` + strings.Repeat("a", 257) + `", "message": "m"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(testcase.body))
			stub := &stubService{delivered: testcase.delivered}
			rr := httptest.NewRecorder()

			New(stub).ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, stub.input)
			if testcase.expectedBody != "" {
				assert.JSONEq(t, testcase.expectedBody, rr.Body.String())
			}
		})
	}
}
