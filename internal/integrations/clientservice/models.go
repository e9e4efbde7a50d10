package clientservice

// RegisteredClient client record from the client registry service
type RegisteredClient struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsBlocked bool   `json:"is_blocked"`
}

// ErrorResponse error payload from the client registry service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
