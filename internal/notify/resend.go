// Package notify delivers ballot emails through the Resend HTTP API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/openquorum/ballot-service/internal/entity"
	"github.com/openquorum/ballot-service/internal/services"
)

const defaultBaseURL = "https://api.resend.com"

// Resend sends transactional email. With no API key configured every send
// reports not-delivered instead of failing, so the callers' retry logic
// keeps working in environments without mail.
type Resend struct {
	log     *slog.Logger
	apiKey  string
	from    string
	appURL  string
	baseURL string
	client  *http.Client
}

func NewResend(log *slog.Logger, apiKey, from, appURL string) *Resend {
	return &Resend{
		log:     log,
		apiKey:  apiKey,
		from:    from,
		appURL:  appURL,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (r *Resend) send(ctx context.Context, to, subject, html string) (bool, error) {
	const op = "notify.Resend.send"

	if r.apiKey == "" {
		r.log.Warn("email service not configured, skipping send", slog.String("to", to))
		return false, nil
	}

	body, err := json.Marshal(sendRequest{
		From:    r.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("%s: resend responded %d", op, resp.StatusCode)
	}

	return true, nil
}

func greeting(name *string) string {
	if name != nil && *name != "" {
		return "Hi " + *name
	}
	return "Hello"
}

func thresholdLabel(threshold entity.VotingThreshold, customPct *float64) string {
	switch threshold {
	case entity.ThresholdSimpleMajority:
		return "Simple Majority (50% + 1)"
	case entity.ThresholdSupermajority:
		return "Supermajority (2/3)"
	case entity.ThresholdUnanimous:
		return "Unanimous (100%)"
	case entity.ThresholdCustom:
		if customPct != nil {
			return fmt.Sprintf("Custom (%g%%)", *customPct)
		}
		return "Custom (50%)"
	default:
		return "Simple Majority (50% + 1)"
	}
}

func (r *Resend) ballotLink(ballotID string) string {
	return fmt.Sprintf("%s/ballots/%s", r.appURL, ballotID)
}

func (r *Resend) SendVoterInvitation(ctx context.Context, data services.InvitationEmail) (bool, error) {
	subject := fmt.Sprintf("You're invited to vote: %s", data.BallotTitle)
	html := fmt.Sprintf(
		`<p>%s,</p>
<p>You have been invited to vote on <strong>%s</strong>.</p>
<p>%s</p>
<p>Voting opens %s and closes %s. Passing requires: %s.</p>
<p><a href="%s">View the ballot</a></p>`,
		greeting(data.VoterName), data.BallotTitle, data.BallotDescription,
		data.VotingOpensAt.Format(time.RFC1123), data.VotingClosesAt.Format(time.RFC1123),
		thresholdLabel(data.VotingThreshold, data.ThresholdPercentage),
		r.ballotLink(data.BallotID))

	return r.send(ctx, data.VoterEmail, subject, html)
}

func (r *Resend) SendReminder(ctx context.Context, data services.ReminderEmail) (bool, error) {
	verb := "opens"
	if data.Kind == services.ReminderClose {
		verb = "closes"
	}
	subject := fmt.Sprintf("Reminder: %s %s soon", data.BallotTitle, verb)
	html := fmt.Sprintf(
		`<p>%s,</p>
<p>Voting on <strong>%s</strong> %s in %d minute%s (%s).</p>
<p><a href="%s">View the ballot</a></p>`,
		greeting(data.VoterName), data.BallotTitle, verb, data.Minutes, pluralSuffix(data.Minutes),
		data.When.Format(time.RFC1123), r.ballotLink(data.BallotID))

	return r.send(ctx, data.VoterEmail, subject, html)
}

func (r *Resend) SendOpened(ctx context.Context, data services.OpenedEmail) (bool, error) {
	subject := fmt.Sprintf("Voting is open: %s", data.BallotTitle)
	html := fmt.Sprintf(
		`<p>%s,</p>
<p>Voting on <strong>%s</strong> is now open. Cast your vote before %s.</p>
<p><a href="%s">Vote now</a></p>`,
		greeting(data.VoterName), data.BallotTitle, data.ClosesAt.Format(time.RFC1123),
		r.ballotLink(data.BallotID))

	return r.send(ctx, data.VoterEmail, subject, html)
}

func (r *Resend) SendClosed(ctx context.Context, data services.ClosedEmail) (bool, error) {
	subject := fmt.Sprintf("Voting has closed: %s", data.BallotTitle)
	html := fmt.Sprintf(
		`<p>%s,</p>
<p>Voting on <strong>%s</strong> has closed.</p>
<p><a href="%s">See the results</a></p>`,
		greeting(data.VoterName), data.BallotTitle, r.ballotLink(data.BallotID))

	return r.send(ctx, data.VoterEmail, subject, html)
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
