// Package security holds the HTTP middleware that guards the API surface.
package security

import (
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/starboard/pkg/utils"
)

const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' 'unsafe-inline' 'unsafe-eval' https://telegram.org; " +
	"style-src 'self' 'unsafe-inline'; " +
	"img-src 'self' data: https: blob:; " +
	"connect-src 'self' https:; " +
	"font-src 'self' data:; " +
	"object-src 'none'; " +
	"base-uri 'self'; " +
	"form-action 'self';"

var (
	suspiciousAgent = regexp.MustCompile(`(?i)bot|crawler|spider|scraper|curl|wget|python|node|postman`)
	injection       = regexp.MustCompile(`(?i)'|;|--|/\*|\*/|xp_|sp_|exec|execute|select|insert|update|delete|drop|create|alter|union|script|javascript|vbscript|onload|onerror|onclick|onmouseover`)
	specialChars    = regexp.MustCompile("[<>{}\\[\\]\\\\|`~!@#$%^&*()+=;:'\"?/]")
)

// LogSuspicious records a request that looks off without blocking it.
func LogSuspicious(kind string, r *http.Request, fields ...zap.Field) {
	fields = append(fields,
		zap.String("type", kind),
		zap.String("ip", clientIP(r)),
		zap.String("user_agent", r.UserAgent()),
		zap.String("origin", r.Header.Get("Origin")),
		zap.String("referer", r.Referer()),
	)
	zap.L().Warn("Suspicious activity detected", fields...)
}

// RequestSize rejects bodies announced larger than limit and caps the rest.
func RequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				LogSuspicious("oversized_request", r, zap.Int64("content_length", r.ContentLength))
				utils.RespondWithError(w, http.StatusRequestEntityTooLarge, "Request too large")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

func UserAgentLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.UserAgent(); ua == "" || suspiciousAgent.MatchString(ua) {
			LogSuspicious("suspicious_user_agent", r)
		}
		next.ServeHTTP(w, r)
	})
}

// OriginGuard requires API calls to come from a Telegram client, except for
// the listed public paths.
func OriginGuard(publicPaths ...string) func(http.Handler) http.Handler {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				if _, ok := public[r.URL.Path]; !ok && !fromTelegram(r) {
					LogSuspicious("unauthorized_origin", r, zap.String("path", r.URL.Path))
					utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func fromTelegram(r *http.Request) bool {
	for _, v := range []string{r.Header.Get("Origin"), r.Referer()} {
		if strings.Contains(v, "t.me") || strings.Contains(v, "telegram.org") {
			return true
		}
	}
	return false
}

// URLPatterns returns the warnings raised by the request URL, if any.
func URLPatterns(raw string) []string {
	if decoded, err := url.QueryUnescape(raw); err == nil {
		raw = decoded
	}

	var warnings []string
	if injection.MatchString(raw) {
		warnings = append(warnings, "Potential SQL injection or XSS attempt detected")
	}
	if len(raw) > 10000 {
		warnings = append(warnings, "Unusually long string detected")
	}
	if len(raw) > 100 && specialChars.MatchString(raw) {
		warnings = append(warnings, "Suspicious characters detected")
	}
	return warnings
}

func URLPatternLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if warnings := URLPatterns(r.URL.RequestURI()); len(warnings) > 0 {
			LogSuspicious("suspicious_url_pattern", r, zap.Strings("patterns", warnings), zap.String("url", r.URL.String()))
		}
		next.ServeHTTP(w, r)
	})
}

func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		h.Set("Content-Security-Policy", contentSecurityPolicy)
		next.ServeHTTP(w, r)
	})
}

type CORSMiddleware struct {
	allowedOrigins []string
}

func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	return &CORSMiddleware{allowedOrigins: allowedOrigins}
}

func (m *CORSMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if m.isOriginAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		w.Header().Set("Access-Control-Max-Age", strconv.Itoa(86400))

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *CORSMiddleware) isOriginAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range m.allowedOrigins {
		if strings.HasPrefix(origin, allowed) {
			return true
		}
	}
	return false
}
