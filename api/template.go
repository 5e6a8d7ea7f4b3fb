package api

const (
	TemplateStatusApproved = "APPROVED"
	TemplateStatusRejected = "REJECTED"
)

// MessageTemplate describes a WhatsApp message template as returned by the
// Graph `message_templates` edge. Components are kept untyped, the gateway
// forwards them verbatim.
type MessageTemplate struct {
	Id         string                   `json:"id,omitempty"`
	Name       string                   `json:"name"`
	Status     string                   `json:"status"`
	Components []map[string]interface{} `json:"components,omitempty"`
}

// TemplateList is the paginated Graph response envelope for templates.
type TemplateList struct {
	Data   []*MessageTemplate `json:"data"`
	Paging *Paging            `json:"paging,omitempty"`
}

type Paging struct {
	Cursors struct {
		Before string `json:"before,omitempty"`
		After  string `json:"after,omitempty"`
	} `json:"cursors"`
	Next string `json:"next,omitempty"`
}
