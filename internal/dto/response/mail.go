package response

type MailEnvelope struct {
	From string   `json:"from"`
	To   []string `json:"to"`
}

type MailResponse struct {
	MessageID string       `json:"messageId"`
	Accepted  []string     `json:"accepted"`
	Envelope  MailEnvelope `json:"envelope"`
}
