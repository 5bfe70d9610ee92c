package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/starboard/internal/config"
	"github.com/GlebRadaev/starboard/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	sendTimeout   = time.Second * 30

	workers   = 4
	queueSize = 256
)

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type Response struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters,omitempty"`
}

// Service delivers chat messages through the Telegram Bot API.
type Service struct {
	url           string
	client        clients.HTTPClientI
	workerPool    WorkerPoolI
	retryInterval time.Duration
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:           cfg.TelegramAPIURL + "/bot" + cfg.TelegramBotToken + "/sendMessage",
		client:        client,
		workerPool:    NewWorkerPool(workers, queueSize),
		retryInterval: retryInterval,
	}
}

// Notify queues a message for the chat of tgID. Delivery failures are only logged.
func (s *Service) Notify(ctx context.Context, tgID int64, text string) {
	sendCtx := context.WithoutCancel(ctx)
	err := s.workerPool.AddTask(ctx, func() error {
		ctx, cancel := context.WithTimeout(sendCtx, sendTimeout)
		defer cancel()
		return s.send(ctx, tgID, text)
	})
	if err != nil {
		zap.L().Warn("Notification dropped", zap.Int64("tg_id", tgID), zap.Error(err))
	}
}

func (s *Service) Close() {
	s.workerPool.Close()
	zap.L().Info("Notification service stopped")
}

func (s *Service) send(ctx context.Context, tgID int64, text string) error {
	body, err := json.Marshal(sendMessageRequest{ChatID: tgID, Text: text})
	if err != nil {
		return err
	}
	headers := http.Header{"Content-Type": []string{"application/json"}}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, respHeaders, err := s.client.Post(ctx, s.url, headers, body)
		if err != nil {
			if attempt < maxRetries {
				if err := s.wait(ctx, s.retryInterval*time.Duration(attempt)); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("failed to notify %d after %d retries: %w", tgID, maxRetries, err)
		}

		switch {
		case statusCode == http.StatusOK:
			var response Response
			if err := json.Unmarshal(respBody, &response); err != nil {
				return fmt.Errorf("failed to parse response body: %w", err)
			}
			if !response.OK {
				return fmt.Errorf("telegram rejected message to %d: %s", tgID, response.Description)
			}
			zap.L().Debug("Notification sent", zap.Int64("tg_id", tgID))
			return nil

		case statusCode == http.StatusTooManyRequests:
			retryAfter := s.retryAfter(respHeaders, respBody, attempt)
			zap.L().Warn("Rate limit detected, retrying",
				zap.Int64("tg_id", tgID),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", retryAfter),
			)
			if attempt < maxRetries {
				if err := s.wait(ctx, retryAfter); err != nil {
					return err
				}
				continue
			}

		case statusCode >= http.StatusInternalServerError:
			zap.L().Warn("Telegram unavailable, retrying", zap.Int("status", statusCode), zap.Int("attempt", attempt))
			if attempt < maxRetries {
				if err := s.wait(ctx, s.retryInterval*time.Duration(attempt)); err != nil {
					return err
				}
				continue
			}

		default:
			zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int64("tg_id", tgID))
			return fmt.Errorf("unexpected status code %d", statusCode)
		}
	}
	return fmt.Errorf("failed to notify %d after %d retries", tgID, maxRetries)
}

func (s *Service) retryAfter(respHeaders http.Header, respBody []byte, attempt int) time.Duration {
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	var response Response
	if err := json.Unmarshal(respBody, &response); err == nil && response.Parameters != nil && response.Parameters.RetryAfter > 0 {
		return time.Duration(response.Parameters.RetryAfter) * time.Second
	}
	return s.retryInterval * time.Duration(attempt)
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Noop is used when notifications are disabled.
type Noop struct{}

func (Noop) Notify(context.Context, int64, string) {}

func (Noop) Close() {}
