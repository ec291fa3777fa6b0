// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerInput struct {
	Username string `validate:"required,username"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"omitempty,phone"`
	Password string `validate:"required,strong_password"`
}

func validInput() registerInput {
	return registerInput{
		Username: "amina_99",
		Email:    "amina@example.com",
		Phone:    "+96170123456",
		Password: "Str0ngPass",
	}
}

func TestValidateStructAccepts(t *testing.T) {
	assert.NoError(t, ValidateStruct(validInput()))
}

func TestStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"Str0ngPass": true,
		"short1A":    false, // under 8 chars
		"alllower1":  false, // no uppercase
		"ALLUPPER1":  false, // no lowercase
		"NoNumbers":  false,
	}

	for password, want := range cases {
		in := validInput()
		in.Password = password
		err := ValidateStruct(in)
		if want {
			assert.NoError(t, err, password)
		} else {
			assert.Error(t, err, password)
		}
	}
}

func TestUsernameRules(t *testing.T) {
	cases := map[string]bool{
		"amina":    true,
		"a_b_c123": true,
		"ab":       false, // too short
		"has-dash": false,
		"has lots": false,
	}

	for username, want := range cases {
		in := validInput()
		in.Username = username
		err := ValidateStruct(in)
		if want {
			assert.NoError(t, err, username)
		} else {
			assert.Error(t, err, username)
		}
	}
}

func TestPhoneRules(t *testing.T) {
	cases := map[string]bool{
		"+96170123456": true,
		"96170123456":  true,
		"":             true, // omitempty
		"+123":         false,
		"not-a-phone":  false,
	}

	for phone, want := range cases {
		in := validInput()
		in.Phone = phone
		err := ValidateStruct(in)
		if want {
			assert.NoError(t, err, phone)
		} else {
			assert.Error(t, err, phone)
		}
	}
}

func TestGetValidationErrors(t *testing.T) {
	in := validInput()
	in.Email = "not-an-email"
	in.Password = "weak"

	err := ValidateStruct(in)
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "Invalid email format", errs[0].Message)
}
