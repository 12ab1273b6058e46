package digest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

// reasonNotConfigured is reported when no webhook URL is set. Absence of
// delivery configuration is not an error.
const reasonNotConfigured = "webhook not configured"

// Notifier delivers digest text to a webhook URL. Delivery is
// best-effort: one attempt, no retry, failures reported but never fatal.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

// NewNotifier creates a Notifier. An empty URL produces a notifier that
// reports not-configured instead of sending.
func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Deliver posts the digest as JSON to the webhook. Any failure, including
// missing configuration, is converted into the result's reason string.
func (n *Notifier) Deliver(ctx context.Context, message string) model.DeliveryResult {
	if n.webhookURL == "" {
		return model.DeliveryResult{Sent: false, Reason: reasonNotConfigured}
	}

	if err := n.post(ctx, message); err != nil {
		zap.L().Warn("digest delivery failed", zap.Error(err))
		return model.DeliveryResult{Sent: false, Reason: eris.ToString(err, false)}
	}

	zap.L().Info("digest delivered", zap.String("webhook", n.webhookURL))
	return model.DeliveryResult{Sent: true}
}

func (n *Notifier) post(ctx context.Context, message string) error {
	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return eris.Wrap(err, "digest: marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "digest: create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return eris.Wrap(err, "digest: webhook request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		return eris.Errorf("digest: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
