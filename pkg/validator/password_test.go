package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type testPassword struct {
	Password string `validate:"strongpassword"`
}

func TestValidateStrongPassword(t *testing.T) {
	v := validator.New()
	RegisterPasswordValidation(v)

	tests := []struct {
		name      string
		password  string
		wantValid bool
	}{
		{
			name:      "valid password - all requirements",
			password:  "Password123!",
			wantValid: true,
		},
		{
			name:      "valid password - complex",
			password:  "MyS3cure!P@ssw0rd#2024",
			wantValid: true,
		},
		{
			name:      "valid password - minimum length",
			password:  "Pass1!aa",
			wantValid: true,
		},
		{
			name:      "too short",
			password:  "Pa1!",
			wantValid: false,
		},
		{
			name:      "missing uppercase",
			password:  "password123!",
			wantValid: false,
		},
		{
			name:      "missing lowercase",
			password:  "PASSWORD123!",
			wantValid: false,
		},
		{
			name:      "missing number",
			password:  "Password!!!",
			wantValid: false,
		},
		{
			name:      "missing special character",
			password:  "Password1234",
			wantValid: false,
		},
		{
			name:      "empty",
			password:  "",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(testPassword{Password: tt.password})
			if tt.wantValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
