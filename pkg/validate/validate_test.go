package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amountRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0,lte=1000000"`
}

type profileRequest struct {
	Username  string `json:"username,omitempty" validate:"omitempty,max=32,tg_username"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=64,notblank"`
	PhotoURL  string `json:"photo_url,omitempty" validate:"omitempty,max=2048,url"`
}

func TestDecode_Amount(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expected      int64
		expectedError string
	}{
		{name: "Valid amount", body: `{"amount":100}`, expected: 100},
		{name: "Upper bound", body: `{"amount":1000000}`, expected: 1000000},
		{name: "Missing amount", body: `{}`, expectedError: "amount is required"},
		{name: "Zero amount", body: `{"amount":0}`, expectedError: "amount is required"},
		{name: "Negative amount", body: `{"amount":-5}`, expectedError: "amount must be greater than 0"},
		{name: "Too large", body: `{"amount":1000001}`, expectedError: "amount must be at most 1000000"},
		{name: "Fractional amount", body: `{"amount":1.5}`, expectedError: "invalid request body"},
		{name: "String amount", body: `{"amount":"10"}`, expectedError: "invalid request body"},
		{name: "Unknown field", body: `{"amount":10,"tg_id":5}`, expectedError: "invalid request body"},
		{name: "Two objects", body: `{"amount":10}{"amount":20}`, expectedError: ErrTrailingData.Error()},
		{name: "Broken json", body: `{"amount":`, expectedError: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req amountRequest
			err := Decode(strings.NewReader(tt.body), &req)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req.Amount)
		})
	}
}

func TestStruct_Profile(t *testing.T) {
	tests := []struct {
		name          string
		req           profileRequest
		expectedError string
	}{
		{name: "Empty profile", req: profileRequest{}},
		{name: "Full profile", req: profileRequest{Username: "star_gazer_1", FirstName: "Ann", PhotoURL: "https://t.me/i/userpic/320/a.jpg"}},
		{name: "Username with dash", req: profileRequest{Username: "star-gazer"}, expectedError: "username contains invalid characters"},
		{name: "Username too long", req: profileRequest{Username: strings.Repeat("a", 33)}, expectedError: "username is too long (max 32 characters)"},
		{name: "Blank first name", req: profileRequest{FirstName: "   "}, expectedError: "first_name cannot be empty"},
		{name: "First name too long", req: profileRequest{FirstName: strings.Repeat("b", 65)}, expectedError: "first_name is too long (max 64 characters)"},
		{name: "Photo is not a url", req: profileRequest{PhotoURL: "not a url"}, expectedError: "photo_url must be a valid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.req)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
