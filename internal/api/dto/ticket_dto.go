package dto

// CreateTicketRequest is the ticket form payload, bound from urlencoded or
// multipart bodies only. Absent fields are empty strings.
type CreateTicketRequest struct {
	Tier    string `json:"tier" form:"tier"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Details string `json:"details" form:"details"`
}

// CreateTicketResponse is returned for an accepted ticket.
type CreateTicketResponse struct {
	OK       bool   `json:"ok"`
	TicketID string `json:"ticketId"`
	Emailed  bool   `json:"emailed"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}
