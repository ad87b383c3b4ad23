package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "admin@example.com", wantErr: false},
		{name: "valid with subdomain", email: "ops@mail.example.co", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "no at sign", email: "admin.example.com", wantErr: true},
		{name: "no domain dot", email: "admin@example", wantErr: true},
		{name: "spaces", email: "admin @example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.NoError(t, ValidatePassword("s"))
	assert.NoError(t, ValidatePassword("correct horse battery staple"))
}
