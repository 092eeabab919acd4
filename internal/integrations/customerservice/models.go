package customerservice

import "github.com/google/uuid"

// Customer is the customer record exposed by the customer service.
type Customer struct {
	ID    uuid.UUID `json:"id"`
	HubID int64     `json:"hub_id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// ErrorResponse is the error body returned by the customer service.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
