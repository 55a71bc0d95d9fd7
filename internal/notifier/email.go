package notifier

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go-job-alert/internal/config"

	"github.com/emersion/go-message/mail"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

const ChannelEmail = "email"

// Sender hands a rendered message to a mail server.
type Sender interface {
	Send(ctx context.Context, cfg config.EmailConfig, from string, to []string, msg []byte) error
}

type EmailNotifier struct {
	cfg    config.EmailConfig
	sender Sender
	now    func() time.Time
}

func NewEmailNotifier(cfg config.EmailConfig) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, sender: SMTPSender{}, now: time.Now}
}

// WithSender replaces the SMTP transport.
func (n *EmailNotifier) WithSender(s Sender) *EmailNotifier {
	n.sender = s
	return n
}

func (n *EmailNotifier) Name() string {
	return ChannelEmail
}

func (n *EmailNotifier) Notify(ctx context.Context, msg Message) Result {
	if !n.cfg.Configured() {
		return Result{Channel: ChannelEmail, Status: NotConfigured}
	}

	raw, err := BuildMessage(n.cfg.User, n.cfg.To, msg, n.now())
	if err != nil {
		return Result{Channel: ChannelEmail, Status: Failed, Err: err}
	}
	if err := n.sender.Send(ctx, n.cfg, n.cfg.User, n.cfg.To, raw); err != nil {
		return Result{Channel: ChannelEmail, Status: Failed, Err: err}
	}
	return Result{Channel: ChannelEmail, Status: Sent}
}

// BuildMessage renders msg as a multipart/mixed mail with a plain text body
// and every attachment as application/octet-stream.
func BuildMessage(from string, to []string, msg Message, date time.Time) ([]byte, error) {
	var h mail.Header
	h.SetDate(date)
	h.SetSubject(msg.Subject)
	h.SetAddressList("From", []*mail.Address{{Address: from}})
	rcpts := make([]*mail.Address, 0, len(to))
	for _, addr := range to {
		rcpts = append(rcpts, &mail.Address{Address: addr})
	}
	h.SetAddressList("To", rcpts)

	var buf bytes.Buffer
	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("create mail writer: %w", err)
	}

	tw, err := mw.CreateInline()
	if err != nil {
		return nil, fmt.Errorf("create inline part: %w", err)
	}
	var th mail.InlineHeader
	th.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	w, err := tw.CreatePart(th)
	if err != nil {
		return nil, fmt.Errorf("create text part: %w", err)
	}
	if _, err := io.WriteString(w, msg.Body); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	if err := tw.Close(); err != nil {
		return nil, err
	}

	for _, path := range msg.Attachments {
		if err := attach(mw, path); err != nil {
			return nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close mail writer: %w", err)
	}
	return buf.Bytes(), nil
}

func attach(mw *mail.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open attachment: %w", err)
	}
	defer f.Close()

	var ah mail.AttachmentHeader
	ah.SetContentType("application/octet-stream", nil)
	ah.SetFilename(filepath.Base(path))

	w, err := mw.CreateAttachment(ah)
	if err != nil {
		return fmt.Errorf("create attachment %s: %w", filepath.Base(path), err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return err
	}
	return w.Close()
}

// SMTPSender delivers over SMTP with PLAIN auth.
type SMTPSender struct {
	// RootCAs overrides the system roots when verifying the server.
	RootCAs *x509.CertPool
	// ImplicitTLS connects over TLS from the start. Port 465 always does.
	ImplicitTLS bool
}

// Send uses implicit TLS on port 465 (or when ImplicitTLS is set) and STARTTLS
// otherwise.
func (s SMTPSender) Send(ctx context.Context, cfg config.EmailConfig, from string, to []string, msg []byte) error {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12, ServerName: cfg.Host, RootCAs: s.RootCAs}
	implicit := s.ImplicitTLS || cfg.Port == 465

	var (
		c   *smtp.Client
		err error
	)
	if implicit {
		c, err = smtp.DialTLS(addr, tlsCfg)
	} else {
		c, err = smtp.Dial(addr)
	}
	if err != nil {
		return fmt.Errorf("smtp dial %s: %w", addr, err)
	}
	defer c.Close()

	//go-smtp has no context support, close on cancel
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = c.Close()
		case <-done:
		}
	}()

	if !implicit {
		if err := c.StartTLS(tlsCfg); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	if err := c.Auth(sasl.NewPlainClient("", cfg.User, cfg.Password)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := c.SendMail(from, to, bytes.NewReader(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return c.Quit()
}
