package api

import "fmt"

// GraphError is the error envelope returned by the Graph API.
type GraphError struct {
	Error GraphErrorDetails `json:"error"`
}

type GraphErrorDetails struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FbtraceId string `json:"fbtrace_id,omitempty"`
}

func (e *GraphErrorDetails) String() string {
	return fmt.Sprintf("[%d] %s: %s", e.Code, e.Type, e.Message)
}
