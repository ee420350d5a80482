package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"asset-management-api/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	source    = "asset-management-api"
	userAgent = "asset-management-api/1.0"
)

// NotificationLevel represents the severity level of a notification
type NotificationLevel string

const (
	LevelInfo     NotificationLevel = "info"
	LevelWarning  NotificationLevel = "warning"
	LevelError    NotificationLevel = "error"
	LevelCritical NotificationLevel = "critical"
)

// Notifier is an interface for sending notifications with context support
type Notifier interface {
	SendNotificationWithContext(ctx context.Context, notification Notification) error
	IsHealthy(ctx context.Context) bool
}

// NotificationConfig holds configuration for the notification client
type NotificationConfig struct {
	URL            string
	Timeout        time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
	MaxPayloadSize int64
}

// DefaultConfig returns a default configuration for the notification client
func DefaultConfig(url string) NotificationConfig {
	return NotificationConfig{
		URL:            url,
		Timeout:        10 * time.Second,
		RetryAttempts:  3,
		RetryDelay:     time.Second,
		MaxPayloadSize: 1024 * 1024, // 1MB
	}
}

// notificationClient is the concrete implementation of the Notifier interface
type notificationClient struct {
	config NotificationConfig
	client *http.Client
	logger *logrus.Logger
}

// NewNotifier creates a new Notifier with default configuration
func NewNotifier(url string, log *logrus.Logger) Notifier {
	return NewNotifierWithConfig(DefaultConfig(url), log)
}

// NewNotifierWithConfig creates a new Notifier with custom configuration
func NewNotifierWithConfig(config NotificationConfig, log *logrus.Logger) Notifier {
	if log == nil {
		log = logger.Discard()
	}

	return &notificationClient{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: log,
	}
}

// Notification represents the payload for the notification service
type Notification struct {
	Level      NotificationLevel `json:"level"`
	EmployeeID string            `json:"employeeId,omitempty"`
	Message    string            `json:"message"`
	Timestamp  time.Time         `json:"timestamp,omitempty"`
	Source     string            `json:"source,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the notification is valid
func (n *Notification) Validate() error {
	if n.Level == "" {
		return fmt.Errorf("notification level is required")
	}
	if n.Message == "" {
		return fmt.Errorf("notification message is required")
	}
	if len(n.Message) > 1000 {
		return fmt.Errorf("notification message too long (max 1000 characters)")
	}
	if len(n.EmployeeID) > 32 {
		return fmt.Errorf("employee id too long (max 32 characters)")
	}

	switch n.Level {
	case LevelInfo, LevelWarning, LevelError, LevelCritical:
		return nil
	default:
		return fmt.Errorf("invalid notification level: %s", n.Level)
	}
}

// permanentError marks a failure that a retry cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func permanent(err error) error {
	return &permanentError{err: err}
}

func isPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// SendNotificationWithContext sends a notification, retrying transient
// failures with a linear backoff until ctx is done.
func (c *notificationClient) SendNotificationWithContext(ctx context.Context, notification Notification) error {
	if err := notification.Validate(); err != nil {
		return fmt.Errorf("invalid notification: %w", err)
	}

	if notification.Timestamp.IsZero() {
		notification.Timestamp = time.Now()
	}
	if notification.Source == "" {
		notification.Source = source
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.config.RetryDelay * time.Duration(attempt)):
			}
			c.logger.Debugf("Retrying notification send (attempt %d/%d)", attempt+1, c.config.RetryAttempts+1)
		}

		err := c.sendNotificationAttempt(ctx, notification)
		if err == nil {
			return nil
		}

		lastErr = err
		c.logger.WithError(err).WithField("attempt", attempt+1).Warn("Notification send attempt failed")

		if isPermanent(err) {
			return err
		}
	}

	return fmt.Errorf("failed to send notification after %d attempts: %w", c.config.RetryAttempts+1, lastErr)
}

// sendNotificationAttempt performs a single notification send attempt
func (c *notificationClient) sendNotificationAttempt(ctx context.Context, notification Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return permanent(fmt.Errorf("failed to marshal notification: %w", err))
	}

	if int64(len(payload)) > c.config.MaxPayloadSize {
		return permanent(fmt.Errorf("notification payload too large: %d bytes (max %d)", len(payload), c.config.MaxPayloadSize))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(payload))
	if err != nil {
		return permanent(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 400 {
		err := fmt.Errorf("notification service returned error status %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return permanent(err)
		}
		return err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusAccepted {
		c.logger.Warnf("Unexpected status code %d from notification service", resp.StatusCode)
	}

	return nil
}

// IsHealthy checks if the notification service is healthy
func (c *notificationClient) IsHealthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.URL+"/health", nil)
	if err != nil {
		return false
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < 500
}
