package response

type LoginResponse struct {
	Token string `json:"token"`
}

type PasswordStatusResponse struct {
	PasswordSet bool `json:"passwordSet"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
