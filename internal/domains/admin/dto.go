package admin

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r Credentials) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 100)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 128)),
	)
}

type UpdateProfileReq struct {
	Username *string `json:"username,omitempty"`
}

func (r UpdateProfileReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Length(3, 100)),
	)
}

type ChangePasswordReq struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r ChangePasswordReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(6, 128)),
	)
}
