package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name         string
		in           AuthUser
		wantFullName string
		wantUsername string
		wantAccount  string
	}{
		{
			name:         "email only",
			in:           AuthUser{ID: "1", Email: "j.doe@x.com"},
			wantFullName: "j.doe",
			wantUsername: "j.doe",
			wantAccount:  "free",
		},
		{
			name:         "full name gives first name handle",
			in:           AuthUser{ID: "2", Email: "a@x.com", Metadata: UserMetadata{FullName: "Ann Lee"}},
			wantFullName: "Ann Lee",
			wantUsername: "Ann",
			wantAccount:  "free",
		},
		{
			name:         "explicit username wins",
			in:           AuthUser{ID: "3", Email: "ann@x.com", Metadata: UserMetadata{FullName: "Ann Lee", Username: "annl"}},
			wantFullName: "Ann Lee",
			wantUsername: "annl",
			wantAccount:  "free",
		},
		{
			name:         "name used when full_name missing",
			in:           AuthUser{ID: "4", Email: "bob@x.com", Metadata: UserMetadata{Name: "Robert Smith", AccountType: "premium"}},
			wantFullName: "Robert Smith",
			wantUsername: "Robert",
			wantAccount:  "premium",
		},
		{
			name:         "first name equal to local part falls back to local part",
			in:           AuthUser{ID: "5", Email: "ann@x.com", Metadata: UserMetadata{FullName: "ann lee"}},
			wantFullName: "ann lee",
			wantUsername: "ann",
			wantAccount:  "free",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.in)
			assert.Equal(t, tt.in.ID, got.ID)
			assert.Equal(t, tt.in.Email, got.Email)
			assert.Equal(t, tt.wantFullName, got.FullName)
			assert.Equal(t, tt.wantUsername, got.Username)
			assert.Equal(t, tt.wantAccount, got.AccountType)
		})
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", Initials("Jane Doe"))
	assert.Equal(t, "M", Initials("Madonna"))
	assert.Equal(t, "U", Initials(""))
	assert.Equal(t, "U", Initials("   "))
	assert.Equal(t, "AB", Initials("a b c"))
	assert.Equal(t, "A", Initials(AnonymousName))
	assert.Equal(t, "ÉZ", Initials("éa zed"))
}

func TestUserMetadataScan(t *testing.T) {
	var m UserMetadata
	assert.NoError(t, m.Scan([]byte(`{"full_name":"Ann Lee","username":"annl"}`)))
	assert.Equal(t, "Ann Lee", m.FullName)
	assert.Equal(t, "annl", m.Username)

	assert.NoError(t, m.Scan(nil))
	assert.Equal(t, UserMetadata{}, m)

	assert.Error(t, m.Scan(42))
}
