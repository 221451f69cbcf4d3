package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/decklab/chainquiz/internal/chainquiz"
)

// request kinds used for the in-flight guard: a second call of the same
// kind while one is outstanding is a no-op, never a second request.
type requestKind string

const (
	kindStart requestKind = "start"
	kindDraw  requestKind = "draw"
	kindStats requestKind = "stats"
	kindEnd   requestKind = "end"
)

// Controller is the session state machine. One instance serves one game;
// a fresh instance is required to play again after End.
//
// The mutex protects state across the goroutines that service calls may
// complete on, but gating is done by the state machine itself: transitions
// happen before the round trip (Answer) or refuse re-entry (in-flight
// kinds), and late responses are discarded when the session id they were
// issued for no longer matches.
type Controller struct {
	svc    GameService
	sink   Presenter
	logger *slog.Logger

	mu          sync.Mutex
	state       State
	sessionID   string
	playerName  string
	currentCard *chainquiz.Card
	answered    bool
	lastResult  *chainquiz.Result
	stats       chainquiz.Stats
	inFlight    map[requestKind]bool
}

func NewController(svc GameService, sink Presenter, logger *slog.Logger) *Controller {
	return &Controller{
		svc:      svc,
		sink:     sink,
		logger:   logger,
		state:    StateNoSession,
		inFlight: make(map[requestKind]bool),
	}
}

// State reports the controller's current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Stats returns the last server-reported aggregates.
func (c *Controller) Stats() chainquiz.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// CurrentCard returns the live card, or false if none is shown.
func (c *Controller) CurrentCard() (chainquiz.Card, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentCard == nil {
		return chainquiz.Card{}, false
	}
	return *c.currentCard, true
}

// Start creates the session and immediately draws the first card at easy
// difficulty, so the player is never shown an empty game screen. If that
// first draw fails the session stays in awaiting_card and a later Draw
// recovers it.
func (c *Controller) Start(ctx context.Context, playerName string) error {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		c.sink.ShowError("please enter your name")
		return ErrInvalidInput
	}

	c.mu.Lock()
	if c.state != StateNoSession || c.inFlight[kindStart] {
		c.mu.Unlock()
		c.logger.Debug("start ignored", "state", c.state)
		return nil
	}
	c.inFlight[kindStart] = true
	c.mu.Unlock()

	started, err := c.svc.StartGame(ctx, playerName)
	c.mu.Lock()
	delete(c.inFlight, kindStart)
	if err != nil {
		c.mu.Unlock()
		c.logger.Error("start game failed", "error", err)
		c.sink.ShowError("failed to start game")
		return err
	}
	c.sessionID = started.GameID
	c.playerName = started.PlayerName
	c.state = StateAwaitingCard
	c.mu.Unlock()

	return c.Draw(ctx, chainquiz.DifficultyEasy)
}

// Draw requests the next card. Valid only between cards (awaiting_card or
// answered); anywhere else it is a deliberate no-op so that double
// invocation cannot produce a second in-flight request.
func (c *Controller) Draw(ctx context.Context, difficulty chainquiz.Difficulty) error {
	if _, err := chainquiz.ParseDifficulty(string(difficulty)); err != nil {
		c.sink.ShowError("invalid difficulty")
		return ErrInvalidInput
	}

	c.mu.Lock()
	if c.sessionID == "" {
		c.mu.Unlock()
		c.sink.ShowError("no active game")
		return ErrNoSession
	}
	if c.state != StateAwaitingCard && c.state != StateAnswered {
		c.mu.Unlock()
		c.logger.Debug("draw ignored", "state", c.state)
		return nil
	}
	if c.inFlight[kindDraw] {
		c.mu.Unlock()
		c.logger.Debug("draw already in flight")
		return nil
	}
	c.inFlight[kindDraw] = true
	sid := c.sessionID
	c.mu.Unlock()

	card, err := c.svc.DrawCard(ctx, sid, difficulty)

	c.mu.Lock()
	delete(c.inFlight, kindDraw)
	if c.sessionID != sid {
		c.mu.Unlock()
		c.logger.Debug("discarding draw response for stale session", "session_id", sid)
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		return c.handleServiceError("draw card", err)
	}
	c.currentCard = &card
	c.answered = false
	c.lastResult = nil
	c.state = StateCardShown
	c.mu.Unlock()

	c.sink.ShowGame(card)

	// Read-through refresh; the draw itself does not carry stats.
	return c.RefreshStats(ctx)
}

// Answer submits the chosen answer by position. The transition to
// answered happens before the round trip: once a submission is in flight
// the card can never be submitted twice, even if the request fails.
func (c *Controller) Answer(ctx context.Context, answerIndex int) error {
	c.mu.Lock()
	if c.sessionID == "" {
		c.mu.Unlock()
		c.sink.ShowError("no active game")
		return ErrNoSession
	}
	if c.state != StateCardShown || c.answered || c.currentCard == nil {
		c.mu.Unlock()
		c.logger.Debug("answer ignored", "state", c.state)
		return nil
	}
	if answerIndex < 0 || answerIndex >= len(c.currentCard.Answers) {
		c.mu.Unlock()
		c.sink.ShowError("invalid answer choice")
		return ErrInvalidInput
	}
	c.answered = true
	c.state = StateAnswered
	sid := c.sessionID
	c.mu.Unlock()

	result, err := c.svc.SubmitAnswer(ctx, sid, answerIndex)

	c.mu.Lock()
	if c.sessionID != sid {
		c.mu.Unlock()
		c.logger.Debug("discarding answer response for stale session", "session_id", sid)
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		// Submissions are never retried: the card stays answered and the
		// player continues by drawing a new card.
		return c.handleServiceError("submit answer", err)
	}
	c.lastResult = &result
	c.stats = chainquiz.Stats{
		PlayerName:  c.playerName,
		TotalScore:  result.TotalScore,
		Accuracy:    result.Accuracy,
		CardsPlayed: result.CardsPlayed,
		CardsWon:    result.CardsWon,
	}
	stats := c.stats
	c.mu.Unlock()

	c.sink.ShowResult(result)
	c.sink.ShowStats(stats)
	return nil
}

// RefreshStats re-reads the aggregates from the service. Best-effort:
// failures are logged and the stale stats stay on display.
func (c *Controller) RefreshStats(ctx context.Context) error {
	c.mu.Lock()
	if c.sessionID == "" {
		c.mu.Unlock()
		return ErrNoSession
	}
	if c.inFlight[kindStats] {
		c.mu.Unlock()
		return nil
	}
	c.inFlight[kindStats] = true
	sid := c.sessionID
	c.mu.Unlock()

	stats, err := c.svc.Stats(ctx, sid)

	c.mu.Lock()
	delete(c.inFlight, kindStats)
	if c.sessionID != sid {
		c.mu.Unlock()
		c.logger.Debug("discarding stats response for stale session", "session_id", sid)
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		c.logger.Warn("stats refresh failed", "error", err)
		return nil
	}
	c.stats = stats
	c.mu.Unlock()

	c.sink.ShowStats(stats)
	return nil
}

// End finishes the session from any non-terminal state and invalidates
// it for all further operations.
func (c *Controller) End(ctx context.Context) (chainquiz.FinalSummary, error) {
	c.mu.Lock()
	if c.sessionID == "" || c.state == StateEnded {
		c.mu.Unlock()
		c.sink.ShowError("no active game")
		return chainquiz.FinalSummary{}, ErrNoSession
	}
	if c.inFlight[kindEnd] {
		c.mu.Unlock()
		return chainquiz.FinalSummary{}, nil
	}
	c.inFlight[kindEnd] = true
	sid := c.sessionID
	c.mu.Unlock()

	summary, err := c.svc.EndGame(ctx, sid)

	c.mu.Lock()
	delete(c.inFlight, kindEnd)
	if err != nil {
		c.mu.Unlock()
		return chainquiz.FinalSummary{}, c.handleServiceError("end game", err)
	}
	c.state = StateEnded
	c.sessionID = ""
	c.currentCard = nil
	c.answered = false
	c.mu.Unlock()

	c.sink.ShowFinalSummary(summary)
	return summary, nil
}

// Leaderboard fetches and renders the leaderboard. It needs no session.
func (c *Controller) Leaderboard(ctx context.Context) error {
	entries, err := c.svc.Leaderboard(ctx)
	if err != nil {
		c.logger.Error("leaderboard fetch failed", "error", err)
		c.sink.ShowError("failed to load leaderboard")
		return err
	}
	c.sink.ShowLeaderboard(entries)
	return nil
}

// handleServiceError classifies a failed call. A logical rejection means
// the remote session is gone, so the local one is force-ended; anything
// else is a transport failure surfaced with a retry affordance, leaving
// state untouched.
func (c *Controller) handleServiceError(op string, err error) error {
	if isRejection(err) {
		c.logger.Error("service rejected request", "op", op, "error", err)
		c.mu.Lock()
		c.state = StateEnded
		c.sessionID = ""
		c.currentCard = nil
		c.answered = false
		c.mu.Unlock()
		c.sink.ShowError("the game is no longer available")
		return err
	}
	c.logger.Error("request failed", "op", op, "error", err)
	c.sink.ShowError("connection problem, please try again")
	return err
}
