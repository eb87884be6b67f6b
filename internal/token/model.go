package token

type TokenPayload struct {
	Email string `json:"email" validate:"required,email"`
}

type Token struct {
	Token string `json:"token"`
}
