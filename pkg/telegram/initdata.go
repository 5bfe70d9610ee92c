// Package telegram validates the launch parameters a Telegram Mini App passes
// to its backend.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const webAppDataKey = "WebAppData"

var (
	ErrMissingBotToken   = errors.New("bot token is empty")
	ErrMissingHash       = errors.New("init data has no hash")
	ErrSignatureMismatch = errors.New("init data signature mismatch")
	ErrExpired           = errors.New("init data expired")
	ErrMalformed         = errors.New("malformed init data")
	ErrMissingUser       = errors.New("init data has no user")
)

type WebAppUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	IsPremium    bool   `json:"is_premium,omitempty"`
}

type InitData struct {
	QueryID    string
	StartParam string
	AuthDate   time.Time
	User       WebAppUser
}

type Validator struct {
	botToken string
	ttl      time.Duration
	now      func() time.Time
}

// NewValidator returns a validator for initData signed with botToken. Payloads
// whose auth_date is older than ttl are rejected; a zero ttl disables the check.
func NewValidator(botToken string, ttl time.Duration) *Validator {
	return &Validator{
		botToken: botToken,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (v *Validator) Validate(initData string) (*InitData, error) {
	if v.botToken == "" {
		return nil, ErrMissingBotToken
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, ErrMissingHash
	}
	got, err := hex.DecodeString(hash)
	if err != nil {
		return nil, ErrSignatureMismatch
	}
	if !hmac.Equal(got, signature(values, v.botToken)) {
		return nil, ErrSignatureMismatch
	}

	data := &InitData{
		QueryID:    values.Get("query_id"),
		StartParam: values.Get("start_param"),
	}

	if raw := values.Get("auth_date"); raw != "" {
		seconds, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: auth_date %q", ErrMalformed, raw)
		}
		data.AuthDate = time.Unix(seconds, 0)
	}
	if v.ttl > 0 {
		if data.AuthDate.IsZero() || v.now().Sub(data.AuthDate) > v.ttl {
			return nil, ErrExpired
		}
	}

	raw := values.Get("user")
	if raw == "" {
		return nil, ErrMissingUser
	}
	if err := json.Unmarshal([]byte(raw), &data.User); err != nil {
		return nil, fmt.Errorf("%w: user: %v", ErrMalformed, err)
	}
	if data.User.ID <= 0 {
		return nil, ErrMissingUser
	}

	return data, nil
}

// Sign returns the hex hash Telegram would attach to values.
func Sign(values url.Values, botToken string) string {
	return hex.EncodeToString(signature(values, botToken))
}

func signature(values url.Values, botToken string) []byte {
	secret := hmac.New(sha256.New, []byte(webAppDataKey))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(dataCheckString(values)))
	return mac.Sum(nil)
}

func dataCheckString(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, v := range values[k] {
			lines = append(lines, k+"="+v)
		}
	}
	return strings.Join(lines, "\n")
}
