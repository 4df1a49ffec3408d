package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"studytrack/internal/config"
)

const userAgent = "studytrack/0.1.0"

// Service defines the notification surface exposed to the progress engine.
type Service interface {
	NotifyMilestoneReached(ctx context.Context, target, completed, total int) error
	NotifyStreak(ctx context.Context, days int) error
	NotifyCourseCompleted(ctx context.Context, total int) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
		events:   cfg.Notifications,
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
	events   config.Notifications
}

func (n *ntfyService) NotifyMilestoneReached(ctx context.Context, target, completed, total int) error {
	if !n.events.Milestones {
		return nil
	}
	data := payload{
		title:   "studytrack - Milestone",
		message: fmt.Sprintf("Milestone reached: %d lessons completed (%d of %d total)", target, completed, total),
		tags:    []string{"studytrack", "milestone"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyStreak(ctx context.Context, days int) error {
	if !n.events.Streaks {
		return nil
	}
	data := payload{
		title:   "studytrack - Streak",
		message: fmt.Sprintf("%d-day study streak, keep it going", days),
		tags:    []string{"studytrack", "streak"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyCourseCompleted(ctx context.Context, total int) error {
	if !n.events.CourseComplete {
		return nil
	}
	data := payload{
		title:    "studytrack - Course Complete",
		message:  fmt.Sprintf("All %d lessons completed. Congratulations!", total),
		tags:     []string{"studytrack", "completed"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "studytrack - Test",
		message:  "Notification system test",
		tags:     []string{"studytrack", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// NewNoop returns a service that silently drops every notification.
func NewNoop() Service {
	return noopService{}
}

type noopService struct{}

func (noopService) NotifyMilestoneReached(context.Context, int, int, int) error { return nil }
func (noopService) NotifyStreak(context.Context, int) error                    { return nil }
func (noopService) NotifyCourseCompleted(context.Context, int) error           { return nil }
func (noopService) TestNotification(context.Context) error                     { return nil }
