package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "password1",
		ConfirmPassword: "password1",
	}

	tests := []struct {
		name    string
		mutate  func(req *SignupRequest)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(req *SignupRequest) {},
		},
		{
			name:    "missing email",
			mutate:  func(req *SignupRequest) { req.Email = "" },
			wantErr: true,
		},
		{
			name:    "bad email",
			mutate:  func(req *SignupRequest) { req.Email = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "short password",
			mutate:  func(req *SignupRequest) { req.Password = "pass1"; req.ConfirmPassword = "pass1" },
			wantErr: true,
		},
		{
			name:    "password without digit",
			mutate:  func(req *SignupRequest) { req.Password = "passwords"; req.ConfirmPassword = "passwords" },
			wantErr: true,
		},
		{
			name:    "password without letter",
			mutate:  func(req *SignupRequest) { req.Password = "12345678"; req.ConfirmPassword = "12345678" },
			wantErr: true,
		},
		{
			name:    "confirm mismatch",
			mutate:  func(req *SignupRequest) { req.ConfirmPassword = "password2" },
			wantErr: true,
		},
		{
			name:    "username too short",
			mutate:  func(req *SignupRequest) { req.Username = "a" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
