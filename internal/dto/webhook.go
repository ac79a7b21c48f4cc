package dto

// WebhookPayload is the Graph API inbound notification shape, reduced to
// the fields the chat flow needs.
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	Metadata WebhookMetadata  `json:"metadata"`
	Messages []WebhookMessage `json:"messages"`
}

type WebhookMetadata struct {
	PhoneNumberID string `json:"phone_number_id"`
}

type WebhookMessage struct {
	From string      `json:"from"` // sender external id (wa id)
	Type string      `json:"type"`
	Text WebhookText `json:"text"`
}

type WebhookText struct {
	Body string `json:"body"`
}

// InboundMessage is one message unit extracted from a webhook delivery.
type InboundMessage struct {
	SenderExternalID string
	Text             string
	ReplyTarget      string // phone_number_id the outbound send is routed through
}

// Messages flattens the nested delivery into inbound message units.
func (p WebhookPayload) Messages() []InboundMessage {
	var out []InboundMessage
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				out = append(out, InboundMessage{
					SenderExternalID: msg.From,
					Text:             msg.Text.Body,
					ReplyTarget:      change.Value.Metadata.PhoneNumberID,
				})
			}
		}
	}
	return out
}
