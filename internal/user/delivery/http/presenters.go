package http

import (
	"strings"
	"time"

	"pharmaclear-api/internal/model"
	"pharmaclear-api/internal/user"
)

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (r registerReq) validate() error {
	if !strings.Contains(r.Email, "@") {
		return errInvalidEmail
	}
	if len(r.Password) < 8 {
		return errWeakPassword
	}
	return nil
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
		FullName: strings.TrimSpace(r.FullName),
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) validate() error {
	if r.Email == "" || r.Password == "" {
		return errMissingCredentials
	}
	return nil
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
	}
}

type userResp struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type loginResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func newLoginResp(out user.LoginOutput) loginResp {
	return loginResp{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
	}
}
