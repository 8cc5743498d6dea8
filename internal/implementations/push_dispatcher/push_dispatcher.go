package pushdispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/logging"
	"pushreminder/internal/core/domain/notification"
	"time"
)

const source = "PushDispatcher"

// pushRequest is the body accepted by the push gateway.
type pushRequest struct {
	OneSignalID    string                 `json:"oneSignalId"`
	SubscriptionID *string                `json:"subscriptionId,omitempty"`
	Title          string                 `json:"titolo"`
	Message        string                 `json:"messaggio"`
	Data           map[string]interface{} `json:"data"`
}

func newPushRequest(p notification.Payload) pushRequest {
	req := pushRequest{
		OneSignalID: p.PushProviderID,
		Title:       p.Title,
		Message:     p.Message,
		Data:        p.Data,
	}
	if p.PushSubscriptionID.IsPresent {
		subscriptionID := p.PushSubscriptionID.Value
		req.SubscriptionID = &subscriptionID
	}
	if req.Data == nil {
		req.Data = map[string]interface{}{}
	}
	return req
}

type PushDispatcher struct {
	log        logging.Logger
	httpClient http.Client
	url        url.URL
}

func New(log logging.Logger, url url.URL, timeout time.Duration) *PushDispatcher {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &PushDispatcher{
		log:        log,
		url:        url,
		httpClient: http.Client{Timeout: timeout},
	}
}

// Send posts the payload to the push gateway once. It reports whether the
// gateway accepted the notification and never panics.
func (d *PushDispatcher) Send(ctx context.Context, payload notification.Payload) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error(ctx, d.log, e.NewPanicError(r), logging.Source(source))
			ok = false
		}
	}()

	if err := payload.Validate(); err != nil {
		d.log.Warning(
			ctx,
			"Notification payload is incomplete, skipping.",
			logging.Source(source),
			logging.Entry("payload", payload),
			logging.Entry("err", err),
		)
		return false
	}

	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(newPushRequest(payload)); err != nil {
		logging.Error(ctx, d.log, err, logging.Source(source))
		return false
	}
	d.log.Info(
		ctx,
		"Sending notification.",
		logging.Source(source),
		logging.Entry("url", d.url.String()),
		logging.Entry("body", body.String()),
	)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url.String(), &body)
	if err != nil {
		logging.Error(ctx, d.log, err, logging.Source(source))
		return false
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := d.httpClient.Do(request)
	if err != nil {
		logging.Error(ctx, d.log, fmt.Errorf("could not send notification: %w", err), logging.Source(source))
		return false
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		d.log.Error(
			ctx,
			"Push gateway rejected notification.",
			logging.Source(source),
			logging.Entry("status", resp.StatusCode),
			logging.Entry("response", string(respBody)),
		)
		return false
	}

	d.log.Info(
		ctx,
		"Notification has been sent.",
		logging.Source(source),
		logging.Entry("status", resp.StatusCode),
		logging.Entry("response", string(respBody)),
	)
	return true
}
