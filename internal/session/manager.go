// Package session keeps many games alive at once for the server.
//
// The engine's Game is single-threaded; the Manager confines each game
// behind its own mutex so that requests for different games proceed in
// parallel while requests for the same game are serialised.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// subscriberBuffer is the number of state updates queued per watcher.
// Updates to a watcher whose buffer is full are dropped.
const subscriberBuffer = 8

// entry is one hosted game and its watchers.
type entry struct {
	mu      sync.Mutex
	id      string
	game    *engine.Game
	subs    map[int]chan *output.GameState
	nextSub int
	deleted bool
}

// Manager holds games keyed by identifier.
type Manager struct {
	mu       sync.RWMutex
	games    map[string]*entry
	maxGames int // 0 = unlimited
}

// NewManager creates a Manager holding at most maxGames games.
// maxGames 0 means no limit.
func NewManager(maxGames int) *Manager {
	return &Manager{
		games:    make(map[string]*entry),
		maxGames: maxGames,
	}
}

// Create starts a game from fen, or from the opening position when fen is
// empty, and returns its identifier with the initial state.
func (m *Manager) Create(fen string) (string, *output.GameState, error) {
	g := engine.NewGame()
	if fen != "" {
		var err error
		if g, err = engine.NewGameFromFEN(fen); err != nil {
			return "", nil, err
		}
	}

	e := &entry{
		id:   uuid.New().String(),
		game: g,
		subs: make(map[int]chan *output.GameState),
	}
	state := e.state()

	m.mu.Lock()
	if m.maxGames > 0 && len(m.games) >= m.maxGames {
		m.mu.Unlock()
		return "", nil, fmt.Errorf("limit of %d reached: %w", m.maxGames, errors.ErrTooManyGames)
	}
	m.games[e.id] = e
	m.mu.Unlock()

	return e.id, state, nil
}

// lookup returns the entry for id, locked. The caller must unlock it.
func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
	}

	e.mu.Lock()
	if e.deleted {
		e.mu.Unlock()
		return nil, fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
	}
	return e, nil
}

// State returns the current state of game id.
func (m *Manager) State(id string) (*output.GameState, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()
	return e.state(), nil
}

// ValidMoves returns the legal moves of the piece on from, whichever side it
// belongs to. With from empty it returns every legal move of the side to
// move. A square without a piece yields ErrEmptySquare.
func (m *Manager) ValidMoves(id, from string) (*output.MoveList, error) {
	var origin chess.Position
	if from != "" {
		var err error
		if origin, err = chess.ParsePosition(from); err != nil {
			return nil, err
		}
	}

	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()

	if from == "" {
		return output.NewMoveList("", engine.AllLegalMoves(e.game.Board(), e.game.TeamTurn())), nil
	}
	moves, ok := e.game.ValidMoves(origin)
	if !ok {
		return nil, fmt.Errorf("%s: %w", origin, errors.ErrEmptySquare)
	}
	return output.NewMoveList(origin.String(), moves), nil
}

// Move plays text, a move in long algebraic form, for the side to move and
// broadcasts the new state to the game's watchers.
func (m *Manager) Move(id, text string) (*output.GameState, error) {
	mv, err := chess.ParseMove(text)
	if err != nil {
		return nil, err
	}

	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	defer e.mu.Unlock()

	if err := e.game.MakeMove(mv); err != nil {
		return nil, err
	}
	state := e.state()
	e.broadcast(state)
	return state, nil
}

// Delete removes game id and closes its watchers' channels.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	e, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.deleted = true
	for key, ch := range e.subs {
		close(ch)
		delete(e.subs, key)
	}
	return nil
}

// IDs returns the identifiers of all hosted games in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := maps.Keys(m.games)
	m.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Len returns the number of hosted games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// Subscribe registers a watcher for game id. The channel receives the state
// after every move and is closed when the game is deleted or cancel is
// called. A slow watcher misses updates rather than stalling the game.
func (m *Manager) Subscribe(id string) (<-chan *output.GameState, func(), error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, nil, err
	}
	defer e.mu.Unlock()

	ch := make(chan *output.GameState, subscriberBuffer)
	key := e.nextSub
	e.nextSub++
	e.subs[key] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if c, ok := e.subs[key]; ok {
				close(c)
				delete(e.subs, key)
			}
		})
	}
	return ch, cancel, nil
}

// state builds the JSON view. e.mu must be held.
func (e *entry) state() *output.GameState {
	gs := output.NewGameState(e.game)
	gs.ID = e.id
	return gs
}

// broadcast sends state to every watcher without blocking. e.mu must be held.
func (e *entry) broadcast(state *output.GameState) {
	for _, ch := range e.subs {
		select {
		case ch <- state:
		default:
		}
	}
}
