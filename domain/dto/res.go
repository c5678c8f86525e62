package dto

// Res is the uniform response envelope. Warnings carries per-item
// constraint messages for partially successful batch writes.
type Res struct {
	ResponseCode    string      `json:"response_code"`
	ResponseMessage string      `json:"response_message"`
	Warnings        []string    `json:"warnings,omitempty"`
	Data            interface{} `json:"data,omitempty"`
}
