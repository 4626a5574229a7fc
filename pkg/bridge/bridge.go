// Package bridge relays newly created AnswerHub items to a chat webhook.
//
// The bridge polls the platform's list endpoints, tracks the highest item ID
// seen per kind, and for every newly observed item posts its formatted body
// through a Notifier. The first successful fetch of each kind only primes
// that kind's high-water mark, so neither a restart nor a platform outage at
// startup replays history.
//
// A failed poll or delivery is logged and dropped; the next tick starts
// fresh. No retries, matching the client underneath.
package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hubbridge/hubbridge/pkg/answerhub"
	"github.com/hubbridge/hubbridge/pkg/debug"
	"github.com/hubbridge/hubbridge/pkg/format"
	"github.com/hubbridge/hubbridge/pkg/observability"
)

// Config holds bridge loop settings.
type Config struct {
	// PollInterval is the time between polls.
	PollInterval time.Duration

	// Kinds names the item kinds to watch: "question", "answer", "comment".
	Kinds []string
}

// Bridge watches the platform for new items and relays them. It is driven
// by a single goroutine via Run and is not safe for concurrent use.
type Bridge struct {
	client   *answerhub.Client
	notifier *Notifier
	cfg      Config

	lastSeen map[string]int
	primed   map[string]bool
}

// New creates a Bridge over the given client and notifier.
func New(client *answerhub.Client, notifier *Notifier, cfg Config) *Bridge {
	return &Bridge{
		client:   client,
		notifier: notifier,
		cfg:      cfg,
		lastSeen: make(map[string]int),
		primed:   make(map[string]bool),
	}
}

// Run polls until the context is cancelled. The first poll primes the
// high-water marks without relaying anything; a kind whose first fetch
// fails is primed by its first successful fetch instead.
func (b *Bridge) Run(ctx context.Context) error {
	b.Poll(ctx)

	ticker := time.NewTicker(b.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			b.Poll(ctx)
		}
	}
}

// Poll runs one cycle over all configured kinds.
func (b *Bridge) Poll(ctx context.Context) {
	for _, kind := range b.cfg.Kinds {
		nodes, err := b.fetch(ctx, kind)
		if err != nil {
			slog.Warn("poll failed", "kind", kind, "error", err)
			continue
		}

		high := b.lastSeen[kind]
		for _, n := range nodes {
			if b.primed[kind] && n.ID > b.lastSeen[kind] {
				b.relay(ctx, kind, n)
			}
			if n.ID > high {
				high = n.ID
			}
		}
		b.lastSeen[kind] = high

		// A kind is primed only by a successful fetch: a failed first cycle
		// must not cause the next successful one to replay history.
		b.primed[kind] = true

		debug.Log("bridge", "polled", "kind", kind, "items", len(nodes), "high_water", high)
	}
}

// fetch lists the first page of a kind and widens the items to Node for
// uniform handling.
func (b *Bridge) fetch(ctx context.Context, kind string) ([]answerhub.Node, error) {
	switch kind {
	case "question":
		page, err := b.client.ListQuestions(ctx, 1, "")
		if err != nil {
			return nil, err
		}
		nodes := make([]answerhub.Node, len(page.List))
		for i, item := range page.List {
			nodes[i] = answerhub.Node(item)
		}
		return nodes, nil

	case "answer":
		page, err := b.client.ListAnswers(ctx, 1, "")
		if err != nil {
			return nil, err
		}
		nodes := make([]answerhub.Node, len(page.List))
		for i, item := range page.List {
			nodes[i] = answerhub.Node(item)
		}
		return nodes, nil

	case "comment":
		page, err := b.client.ListComments(ctx, 1, "")
		if err != nil {
			return nil, err
		}
		nodes := make([]answerhub.Node, len(page.List))
		for i, item := range page.List {
			nodes[i] = answerhub.Node(item)
		}
		return nodes, nil

	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

// relay formats one item and posts it.
func (b *Bridge) relay(ctx context.Context, kind string, n answerhub.Node) {
	body, err := format.Body(n.BodyAsHTML)
	if err != nil {
		slog.Warn("formatting body failed", "kind", kind, "id", n.ID, "error", err)
		return
	}

	text := composeText(kind, n, body)
	debug.Trace("bridge", "relaying", "kind", kind, "id", n.ID, "text", debug.Clip(text, 200))

	if err := b.notifier.Post(ctx, text); err != nil {
		observability.NotificationsTotal.WithLabelValues("error").Inc()
		slog.Warn("notification failed", "kind", kind, "id", n.ID, "error", err)
		return
	}
	observability.NotificationsTotal.WithLabelValues("ok").Inc()
}

// composeText builds the chat message. Comments have no title of their own.
func composeText(kind string, n answerhub.Node, body string) string {
	if n.Title == "" {
		return fmt.Sprintf("New %s by %s:\n%s", kind, n.Author.Username, body)
	}
	return fmt.Sprintf("New %s by %s: %s\n%s", kind, n.Author.Username, n.Title, body)
}
