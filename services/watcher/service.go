// Package watcher drives the poll → diff → persist → notify pipeline
// for the configured player roster. Each Run is one shot and
// run-to-completion; an external scheduler is expected to invoke the
// bot periodically.
package watcher

import (
	"context"
	"database/sql"
	"log/slog"

	"aoewatch/lib/bluesky"
	"aoewatch/lib/scrapers/aoecompanion"
	"aoewatch/lib/statestore"
	"aoewatch/lib/timezone"
	"aoewatch/services/watcher/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/watcher")

// Player is one roster entry. The companion API is queried by
// profile id; Name is both the display name and the state-store key.
type Player struct {
	Name      string `json:"name"`
	ProfileId string `json:"profile_id"`
}

type MatchSource interface {
	GetMatches(ctx context.Context, profileId string) (aoecompanion.MatchesResponse, error)
}

type Notifier interface {
	PostText(ctx context.Context, text string) (bluesky.PostRef, error)
}

type Options struct {
	Players []Player
	Source  MatchSource
	Store   statestore.Store
	// Notifier may be nil, in which case the notify phase is skipped
	// (e.g. credentials were never configured).
	Notifier Notifier
	// Journal may be nil, in which case published posts are not
	// recorded.
	Journal *sql.DB
}

type Service struct {
	players  []Player
	source   MatchSource
	store    statestore.Store
	notifier Notifier
	journal  *db.Queries
}

func NewService(opts Options) Service {
	s := Service{
		players:  opts.Players,
		source:   opts.Source,
		store:    opts.Store,
		notifier: opts.Notifier,
	}
	if opts.Journal != nil {
		s.journal = db.New(opts.Journal)
	}
	return s
}

type RunResult struct {
	// full name → status mapping computed this run
	Statuses map[string]string
	// reportable changes in roster order
	Changes []Change
	// how many changes were actually published
	Posted int
}

// Run executes one full pipeline pass. It never fails as a whole:
// every per-player and per-post error is absorbed into degraded
// status text or a log line, and the new snapshot is persisted
// before any posting happens so a posting failure can never
// re-trigger the same notification on the next run.
func (s Service) Run(ctx context.Context) RunResult {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	previous := s.store.Load()
	current, order := s.fetchAll(ctx)
	changes := DetectChanges(previous, current, order)

	span.SetAttributes(
		attribute.Int("players", len(s.players)),
		attribute.Int("changes", len(changes)),
	)

	err := s.store.Save(current)
	if err != nil {
		// keep going: the in-memory results are still good enough to
		// notify from, the next run will just re-detect these changes
		slog.Warn("failed to persist state", "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	posted := s.notifyAll(ctx, changes)

	return RunResult{Statuses: current, Changes: changes, Posted: posted}
}

// Check computes statuses and changes without persisting or posting
// anything. Used by the CLI for dry runs.
func (s Service) Check(ctx context.Context) RunResult {
	ctx, span := tracer.Start(ctx, "Check")
	defer span.End()

	previous := s.store.Load()
	current, order := s.fetchAll(ctx)
	changes := DetectChanges(previous, current, order)

	return RunResult{Statuses: current, Changes: changes}
}

func (s Service) fetchAll(ctx context.Context) (map[string]string, []string) {
	ctx, span := tracer.Start(ctx, "fetchAll")
	defer span.End()

	statuses := make(map[string]string, len(s.players))
	order := make([]string, 0, len(s.players))
	for _, player := range s.players {
		probe := s.probePlayer(ctx, player)
		status := probe.Status(player.Name)
		statuses[player.Name] = status
		order = append(order, player.Name)

		slog.Info("probed player", "player", player.Name, "status", status)
	}
	return statuses, order
}

func (s Service) notifyAll(ctx context.Context, changes []Change) int {
	if s.notifier == nil {
		if len(changes) > 0 {
			slog.Info("notifier not configured, skipping posts", "changes", len(changes))
		}
		return 0
	}

	ctx, span := tracer.Start(ctx, "notifyAll")
	defer span.End()

	posted := 0
	for _, change := range changes {
		ref, err := s.notifier.PostText(ctx, change.Status)
		if err != nil {
			// one failed post must not block the rest of the roster
			slog.Error("failed to post status change", "player", change.Player, "err", err)
			span.RecordError(err)
			continue
		}
		posted++
		slog.Info("posted status change",
			"player", change.Player,
			"uri", ref.Uri,
			"cid", ref.Cid,
		)

		if s.journal != nil {
			err := s.journal.CreatePost(ctx, db.CreatePostParams{
				Time:   timezone.Now().Unix(),
				Player: change.Player,
				Status: change.Status,
				Uri:    ref.Uri,
				Cid:    ref.Cid,
			})
			if err != nil {
				slog.Warn("failed to record post in journal", "player", change.Player, "err", err)
			}
		}
	}
	return posted
}
