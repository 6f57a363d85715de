package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() User {
	return User{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "John",
		LastName:     "Doe",
	}
}

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*User)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid user",
			mutate:  func(u *User) {},
			wantErr: false,
		},
		{
			name:    "invalid email",
			mutate:  func(u *User) { u.Email = "invalid-email" },
			wantErr: true,
			errMsg:  "invalid email format",
		},
		{
			name:    "empty email",
			mutate:  func(u *User) { u.Email = "" },
			wantErr: true,
			errMsg:  "email is required",
		},
		{
			name:    "empty first name",
			mutate:  func(u *User) { u.FirstName = "" },
			wantErr: true,
			errMsg:  "first name is required",
		},
		{
			name:    "empty last name",
			mutate:  func(u *User) { u.LastName = "" },
			wantErr: true,
			errMsg:  "last name is required",
		},
		{
			name:    "missing password hash",
			mutate:  func(u *User) { u.PasswordHash = "" },
			wantErr: true,
			errMsg:  "password hash is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(&user)

			err := user.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUser_BeforeCreate(t *testing.T) {
	user := validUser()

	err := user.BeforeCreate(nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotZero(t, user.CreatedAt)
	assert.NotZero(t, user.UpdatedAt)
}

func TestUser_BeforeCreate_KeepsExistingID(t *testing.T) {
	id := uuid.New()
	user := validUser()
	user.ID = id

	err := user.BeforeCreate(nil)
	require.NoError(t, err)

	assert.Equal(t, id, user.ID)
}

func TestUser_BeforeCreate_InvalidUser(t *testing.T) {
	user := validUser()
	user.Email = "not-an-email"

	err := user.BeforeCreate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email format")
}

func TestUser_FullName(t *testing.T) {
	user := validUser()
	assert.Equal(t, "John Doe", user.FullName())
}
