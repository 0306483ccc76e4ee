package auth

import (
	"time"

	"campushub/internal/application/auth/usecases"
)

type LoginRequest struct {
	Role       string `json:"role"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
	DeviceKey  string `json:"device_key"`
}

func (r *LoginRequest) ToCommand(deviceKey string) usecases.LoginCommand {
	if deviceKey == "" {
		deviceKey = r.DeviceKey
	}
	return usecases.LoginCommand{
		Role:       r.Role,
		Username:   r.Username,
		Password:   r.Password,
		RememberMe: r.RememberMe,
		DeviceKey:  deviceKey,
	}
}

type LoginResponse struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
}

func ToLoginResponse(result *usecases.LoginResult) LoginResponse {
	return LoginResponse{
		Token:       result.Token,
		ExpiresAt:   result.ExpiresAt,
		Username:    result.Username,
		Role:        result.Role,
		DisplayName: result.DisplayName,
	}
}
