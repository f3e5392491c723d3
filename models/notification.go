package models

// EmailPayload is the queued notification task body. Tasks are best-effort:
// a lost or failed email never affects the booking it describes.
type EmailPayload struct {
	To      string `json:"to"`
	ToName  string `json:"toName"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	HTML    string `json:"html,omitempty"`
}
