package telegram

import (
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const botToken = "123456:TEST-token"

var now = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

func signed(values url.Values) string {
	values.Set("hash", Sign(values, botToken))
	return values.Encode()
}

func validValues() url.Values {
	return url.Values{
		"query_id":  []string{"AAHdF6IQAAAAAN0XohDhrOrc"},
		"auth_date": []string{strconv.FormatInt(now.Add(-time.Hour).Unix(), 10)},
		"user":      []string{`{"id":279058397,"first_name":"Vlad","last_name":"L","username":"vdkfrost","language_code":"en","is_premium":true}`},
	}
}

func newValidator(ttl time.Duration) *Validator {
	v := NewValidator(botToken, ttl)
	v.now = func() time.Time { return now }
	return v
}

func TestValidator_Validate(t *testing.T) {
	data, err := newValidator(24 * time.Hour).Validate(signed(validValues()))

	require.NoError(t, err)
	assert.Equal(t, "AAHdF6IQAAAAAN0XohDhrOrc", data.QueryID)
	assert.Equal(t, now.Add(-time.Hour).Unix(), data.AuthDate.Unix())
	assert.Equal(t, WebAppUser{
		ID:           279058397,
		FirstName:    "Vlad",
		LastName:     "L",
		Username:     "vdkfrost",
		LanguageCode: "en",
		IsPremium:    true,
	}, data.User)
}

func TestValidator_ValidateErrors(t *testing.T) {
	tests := []struct {
		name        string
		validator   *Validator
		initData    func() string
		expectedErr error
	}{
		{
			name:        "No bot token",
			validator:   NewValidator("", 0),
			initData:    func() string { return signed(validValues()) },
			expectedErr: ErrMissingBotToken,
		},
		{
			name:      "No hash",
			validator: newValidator(0),
			initData: func() string {
				return validValues().Encode()
			},
			expectedErr: ErrMissingHash,
		},
		{
			name:      "Tampered field",
			validator: newValidator(0),
			initData: func() string {
				values := validValues()
				values.Set("hash", Sign(values, botToken))
				values.Set("user", `{"id":1,"first_name":"Mallory"}`)
				return values.Encode()
			},
			expectedErr: ErrSignatureMismatch,
		},
		{
			name:      "Signed with another bot token",
			validator: newValidator(0),
			initData: func() string {
				values := validValues()
				values.Set("hash", Sign(values, "654321:OTHER"))
				return values.Encode()
			},
			expectedErr: ErrSignatureMismatch,
		},
		{
			name:      "Hash is not hex",
			validator: newValidator(0),
			initData: func() string {
				values := validValues()
				values.Set("hash", "not-hex")
				return values.Encode()
			},
			expectedErr: ErrSignatureMismatch,
		},
		{
			name:      "Expired auth date",
			validator: newValidator(time.Minute),
			initData: func() string {
				return signed(validValues())
			},
			expectedErr: ErrExpired,
		},
		{
			name:      "Missing auth date with ttl",
			validator: newValidator(time.Hour * 24),
			initData: func() string {
				values := validValues()
				values.Del("auth_date")
				return signed(values)
			},
			expectedErr: ErrExpired,
		},
		{
			name:      "Malformed auth date",
			validator: newValidator(0),
			initData: func() string {
				values := validValues()
				values.Set("auth_date", "yesterday")
				return signed(values)
			},
			expectedErr: ErrMalformed,
		},
		{
			name:      "No user",
			validator: newValidator(0),
			initData: func() string {
				values := validValues()
				values.Del("user")
				return signed(values)
			},
			expectedErr: ErrMissingUser,
		},
		{
			name:      "User is not json",
			validator: newValidator(0),
			initData: func() string {
				values := validValues()
				values.Set("user", "{")
				return signed(values)
			},
			expectedErr: ErrMalformed,
		},
		{
			name:      "User without id",
			validator: newValidator(0),
			initData: func() string {
				values := validValues()
				values.Set("user", `{"first_name":"Ghost"}`)
				return signed(values)
			},
			expectedErr: ErrMissingUser,
		},
		{
			name:      "Broken query",
			validator: newValidator(0),
			initData: func() string {
				return "user=%zz"
			},
			expectedErr: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.validator.Validate(tt.initData())

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, data)
		})
	}
}

func TestDataCheckString(t *testing.T) {
	values := url.Values{
		"user":      []string{`{"id":1}`},
		"auth_date": []string{"1700000000"},
		"hash":      []string{"ignored"},
		"query_id":  []string{"q"},
	}

	assert.Equal(t, "auth_date=1700000000\nquery_id=q\nuser={\"id\":1}", dataCheckString(values))
}

func TestSign_KnownVector(t *testing.T) {
	values := url.Values{"auth_date": []string{"1"}, "user": []string{`{"id":1}`}}

	first := Sign(values, botToken)

	assert.Len(t, first, 64)
	assert.Equal(t, first, Sign(values, botToken))
	assert.NotEqual(t, first, Sign(values, botToken+"x"))
}
