package app

import (
    "context"
    "errors"
    "fmt"
    "io"
    "log"
    "sync"
    "time"

    "github.com/google/uuid"
    "github.com/jaminalder/goban9/internal/domain"
)

// Errors exposed by the service layer.
var (
    ErrNotFound     = errors.New("game not found")
    ErrInvalidColor = errors.New("side to move must be black or white")
)

// GameState is an immutable snapshot of one game.
type GameState struct {
    ID            string
    Board         domain.Board
    Turn          domain.Stone
    Moves         int
    BlackCaptures int
    WhiteCaptures int
    Created       time.Time
    Updated       time.Time
}

type session struct {
    id      string
    game    *domain.Game
    created time.Time
    updated time.Time
}

func (gs *session) snapshot() GameState {
    return GameState{
        ID:            gs.id,
        Board:         gs.game.Board(),
        Turn:          gs.game.Turn(),
        Moves:         gs.game.Moves(),
        BlackCaptures: gs.game.BlackCaptures(),
        WhiteCaptures: gs.game.WhiteCaptures(),
        Created:       gs.created,
        Updated:       gs.updated,
    }
}

type subscriber struct {
    ch        chan GameState
    done      chan struct{}
    closeOnce sync.Once
}

func (s *subscriber) close() {
    s.closeOnce.Do(func() {
        close(s.ch)
        close(s.done)
    })
}

// Config configures a Service.
type Config struct {
    // SubscriberBuffer is the channel capacity per subscriber. A subscriber
    // whose buffer is full when an update arrives is dropped.
    SubscriberBuffer int
    // Logger receives service events. Nil discards them.
    Logger *log.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
    return Config{SubscriberBuffer: 1}
}

// Service owns a set of games and serializes every access to them.
type Service struct {
    mu     sync.Mutex
    games  map[string]*session
    subs   map[string]map[*subscriber]struct{}
    buffer int
    log    *log.Logger
}

// NewService creates a service with the default configuration.
func NewService() *Service { return NewServiceWithConfig(DefaultConfig()) }

// NewServiceWithConfig creates a service; zero fields fall back to defaults.
func NewServiceWithConfig(cfg Config) *Service {
    if cfg.SubscriberBuffer <= 0 {
        cfg.SubscriberBuffer = DefaultConfig().SubscriberBuffer
    }
    if cfg.Logger == nil {
        cfg.Logger = log.New(io.Discard, "", 0)
    }
    return &Service{
        games:  make(map[string]*session),
        subs:   make(map[string]map[*subscriber]struct{}),
        buffer: cfg.SubscriberBuffer,
        log:    cfg.Logger,
    }
}

// CreateGame registers a new game on an empty board with Black to move.
func (s *Service) CreateGame() (*GameState, error) {
    return s.register(domain.New())
}

// CreateFromBoard registers a game starting from b with toMove to play.
func (s *Service) CreateFromBoard(b domain.Board, toMove domain.Stone) (*GameState, error) {
    if toMove != domain.Black && toMove != domain.White {
        return nil, ErrInvalidColor
    }
    return s.register(domain.NewFromBoard(b, toMove))
}

func (s *Service) register(g *domain.Game) (*GameState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    id := uuid.NewString()
    now := time.Now()
    gs := &session{id: id, game: g, created: now, updated: now}
    s.games[id] = gs
    s.log.Printf("game %s created, %v to move", id, g.Turn())
    cp := gs.snapshot()
    return &cp, nil
}

// Get returns a snapshot of the game if present.
func (s *Service) Get(id string) (*GameState, bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return nil, false
    }
    cp := gs.snapshot()
    return &cp, true
}

// Play places a stone for the side to move and broadcasts the new state.
// Rule violations are returned wrapping the domain errors.
func (s *Service) Play(id string, c domain.Coord) (*GameState, error) {
    return s.mutate(id, "play "+c.String(), func(g *domain.Game) error { return g.Play(c) })
}

// Undo takes back the last move and broadcasts the new state.
func (s *Service) Undo(id string) (*GameState, error) {
    return s.mutate(id, "undo", func(g *domain.Game) error { return g.Undo() })
}

func (s *Service) mutate(id, op string, apply func(*domain.Game) error) (*GameState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return nil, ErrNotFound
    }
    if err := apply(gs.game); err != nil {
        s.log.Printf("game %s: %s rejected: %v", id, op, err)
        return nil, fmt.Errorf("game %s: %s: %w", id, op, err)
    }
    gs.updated = time.Now()
    cp := gs.snapshot()

    // Sends never block, so fan-out stays under the lock and cannot race
    // with a close. Slow subscribers are closed and dropped.
    dropped := 0
    for sub := range s.subs[id] {
        select {
        case sub.ch <- cp:
        default:
            sub.close()
            delete(s.subs[id], sub)
            dropped++
        }
    }
    if dropped > 0 {
        s.log.Printf("game %s: dropped %d slow subscribers", id, dropped)
    }
    return &cp, nil
}

// Score returns the territory estimate for the current position.
func (s *Service) Score(id string) (black, white int, err error) {
    s.mu.Lock()
    gs, ok := s.games[id]
    if !ok {
        s.mu.Unlock()
        return 0, 0, ErrNotFound
    }
    b := gs.game.Board()
    s.mu.Unlock()

    black, white = domain.VoronoiScore(b)
    return black, white, nil
}

// LegalMoves lists the points the side to move may play.
func (s *Service) LegalMoves(id string) ([]domain.Coord, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return nil, ErrNotFound
    }
    return gs.game.LegalMoves(), nil
}

// Delete removes a game and closes its subscribers.
func (s *Service) Delete(id string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.games[id]; !ok {
        return ErrNotFound
    }
    delete(s.games, id)
    for sub := range s.subs[id] {
        sub.close()
    }
    delete(s.subs, id)
    s.log.Printf("game %s deleted", id)
    return nil
}

// Subscribe registers for state updates of a game. The channel is closed
// when the returned func is called, ctx is done, the subscriber falls
// behind, or the game is deleted.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan GameState, func(), error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.games[id]; !ok {
        return nil, nil, ErrNotFound
    }
    set := s.subs[id]
    if set == nil {
        set = make(map[*subscriber]struct{})
        s.subs[id] = set
    }
    sub := &subscriber{ch: make(chan GameState, s.buffer), done: make(chan struct{})}
    set[sub] = struct{}{}

    unsubOnce := &sync.Once{}
    unsub := func() {
        unsubOnce.Do(func() {
            s.mu.Lock()
            if set, ok := s.subs[id]; ok {
                delete(set, sub)
            }
            s.mu.Unlock()
            sub.close()
        })
    }
    go func() {
        select {
        case <-ctx.Done():
            unsub()
        case <-sub.done:
        }
    }()
    return sub.ch, unsub, nil
}
