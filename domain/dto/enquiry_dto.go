package dto

// EnquiryRequest is the public contact form. School is optional and
// defaults to "Not Provided" when absent.
type EnquiryRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	School  string `json:"school" form:"school"`
	Message string `json:"message" form:"message"`
}
