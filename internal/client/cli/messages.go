package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/api"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const timeLayout = "2006-01-02 15:04:05"

func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return ts.AsTime().Local().Format(timeLayout)
}

// formatReadAt relies on the server leaving read_at unset for unread
// messages.
func formatReadAt(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "unread"
	}
	return "read " + formatTime(ts)
}

func displayName(p *api.PublicProfile) string {
	return fmt.Sprintf("%s %s (%s)", p.GetFirstName(), p.GetLastName(), p.GetUsername())
}

// Users lists every account.
func (a *App) Users(ctx context.Context, _ []string) error {
	cctx, cancel := a.withTimeout(ctx)
	defer cancel()

	users, err := a.client.ListUsers(cctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		fmt.Fprintf(a.out, "%-20s %s %s\n", u.GetUsername(), u.GetFirstName(), u.GetLastName())
	}
	return nil
}

// User shows the logged-in user's own profile.
func (a *App) User(ctx context.Context, _ []string) error {
	cctx, cancel := a.withTimeout(ctx)
	defer cancel()

	p, err := a.client.GetUser(cctx, a.userName)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Username:   %s\n", p.GetUsername())
	fmt.Fprintf(a.out, "Name:       %s %s\n", p.GetFirstName(), p.GetLastName())
	fmt.Fprintf(a.out, "Phone:      %s\n", p.GetPhone())
	fmt.Fprintf(a.out, "Joined:     %s\n", formatTime(p.GetJoinAt()))
	fmt.Fprintf(a.out, "Last login: %s\n", formatTime(p.GetLastLoginAt()))
	return nil
}

// Send asks for the recipient (unless given) and a multi-line body.
func (a *App) Send(ctx context.Context, args []string) error {
	to, err := a.argOrPrompt(args, "Enter recipient username")
	if err != nil {
		return err
	}

	body, err := getMultiline(a.reader, "Enter message", a.out)
	if err != nil {
		return err
	}

	cctx, cancel := a.withTimeout(ctx)
	defer cancel()

	r, err := a.client.Send(cctx, to, body)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Sent %s to %s at %s\n", r.GetId(), r.GetToUsername(), formatTime(r.GetSentAt()))
	return nil
}

func (a *App) Inbox(ctx context.Context, _ []string) error {
	cctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msgs, err := a.client.Inbox(cctx, a.userName)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, "Inbox is empty")
		return nil
	}

	for _, m := range msgs {
		fmt.Fprintf(a.out, "%s  %s  from %-12s  %s  %s\n",
			m.GetId(), formatTime(m.GetSentAt()), m.GetFromUser().GetUsername(), formatReadAt(m.GetReadAt()), preview(m.GetBody()))
	}
	return nil
}

func (a *App) Outbox(ctx context.Context, _ []string) error {
	cctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msgs, err := a.client.Outbox(cctx, a.userName)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, "Outbox is empty")
		return nil
	}

	for _, m := range msgs {
		fmt.Fprintf(a.out, "%s  %s  to %-12s  %s  %s\n",
			m.GetId(), formatTime(m.GetSentAt()), m.GetToUser().GetUsername(), formatReadAt(m.GetReadAt()), preview(m.GetBody()))
	}
	return nil
}

// Show prints one message in full.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter message ID")
	if err != nil {
		return err
	}

	cctx, cancel := a.withTimeout(ctx)
	defer cancel()

	m, err := a.client.GetMessage(cctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "ID:   %s\n", m.GetId())
	fmt.Fprintf(a.out, "From: %s\n", displayName(m.GetFromUser()))
	fmt.Fprintf(a.out, "To:   %s\n", displayName(m.GetToUser()))
	fmt.Fprintf(a.out, "Sent: %s\n", formatTime(m.GetSentAt()))
	fmt.Fprintf(a.out, "Read: %s\n\n", formatReadAt(m.GetReadAt()))
	fmt.Fprintln(a.out, m.GetBody())
	return nil
}

// Read marks an incoming message as read.
func (a *App) Read(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter message ID")
	if err != nil {
		return err
	}

	cctx, cancel := a.withTimeout(ctx)
	defer cancel()

	rr, err := a.client.MarkRead(cctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Message %s read at %s\n", rr.GetId(), formatTime(rr.GetReadAt()))
	return nil
}

// preview returns the first line of body, cut to 40 runes.
func preview(body string) string {
	for i, r := range body {
		if r == '\n' {
			body = body[:i]
			break
		}
	}
	runes := []rune(body)
	if len(runes) > 40 {
		return string(runes[:40]) + "..."
	}
	return body
}
