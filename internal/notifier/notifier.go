// Package notifier delivers a finished report over email and Telegram.
// Delivery problems never fail the run; each channel reports a Result instead.
package notifier

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go-job-alert/internal/logger"

	"go.uber.org/zap"
)

const Subject = "Daily Junior Software/Web Jobs"

type Status int

const (
	Sent Status = iota
	NotConfigured
	Failed
)

func (s Status) String() string {
	switch s {
	case Sent:
		return "sent"
	case NotConfigured:
		return "not configured"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of one delivery channel.
type Result struct {
	Channel string
	Status  Status
	Err     error
}

type Message struct {
	Subject     string
	Body        string
	Attachments []string
	// Count is the number of jobs in the attachments.
	Count int
}

// NewMessage builds the standard report message for the given files.
func NewMessage(count int, files []string) Message {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	return Message{
		Subject:     Subject,
		Body:        "Attached: " + strings.Join(names, " and "),
		Attachments: files,
		Count:       count,
	}
}

type Notifier interface {
	Name() string
	Notify(ctx context.Context, msg Message) Result
}

// Deliver hands msg to every notifier in order and logs each outcome.
func Deliver(ctx context.Context, notifiers []Notifier, msg Message, log logger.Logger) []Result {
	log = logger.Component(log, "notifier")
	results := make([]Result, 0, len(notifiers))

	for _, n := range notifiers {
		res := n.Notify(ctx, msg)
		switch res.Status {
		case Sent:
			log.Info("📨 Report delivered", zap.String("channel", res.Channel))
		case NotConfigured:
			log.Info("ℹ️ Channel not configured; skipping send", zap.String("channel", res.Channel))
		case Failed:
			log.Error("⚠️ Delivery failed", zap.String("channel", res.Channel), zap.Error(res.Err))
		}
		results = append(results, res)
	}
	return results
}
