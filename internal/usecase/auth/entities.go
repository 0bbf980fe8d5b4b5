package auth

import "time"

type LoginInput struct {
	Email    string
	Password string
	Product  string
}

type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Product string `json:"product,omitempty"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type LoginResult struct {
	User        User    `json:"user"`
	Session     Session `json:"session"`
	AccessToken string  `json:"access_token"`
}
