package whatsappclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mcoutinho/finbot-backend/internal/errs"
)

const defaultBaseURL = "https://graph.facebook.com/v20.0"

// Adapter sends text messages through the WhatsApp Cloud API. Delivery is
// best effort; callers are expected to log and swallow failures.
type Adapter struct {
	httpClient *http.Client
	token      string
	baseURL    string
}

func NewAdapter(token string) *Adapter {
	return &Adapter{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		token:      token,
		baseURL:    defaultBaseURL,
	}
}

type sendRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Text             sendText `json:"text"`
}

type sendText struct {
	Body string `json:"body"`
}

// Send routes a reply to the sender identified by to, through the business
// phone number the inbound message arrived on.
func (a *Adapter) Send(ctx context.Context, phoneNumberID, to, body string) error {
	payload, err := json.Marshal(sendRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Text:             sendText{Body: body},
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", a.baseURL, phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return errs.NewExternalServiceError("whatsapp", err.Error(), true)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.NewExternalServiceError("whatsapp",
			fmt.Sprintf("send failed with status %d: %s", resp.StatusCode, detail),
			resp.StatusCode >= http.StatusInternalServerError)
	}
	return nil
}
