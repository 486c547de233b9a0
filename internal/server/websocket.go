package server

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-rules-go/internal/output"
)

// MessageType names a WebSocket message.
type MessageType string

const (
	MessageTypeMove  MessageType = "move"
	MessageTypeState MessageType = "state"
	MessageTypeError MessageType = "error"
)

// Message is the WebSocket envelope in both directions. Clients send
// {"type":"move","move":"e2e4"}; the server answers with state or error
// messages.
type Message struct {
	Type  MessageType       `json:"type"`
	Move  string            `json:"move,omitempty"`
	State *output.GameState `json:"state,omitempty"`
	Error string            `json:"error,omitempty"`
}

// watchGame streams state updates for one game and plays moves sent by the
// client. Every watcher, the mover included, sees the state after a move.
func (s *Server) watchGame(c *websocket.Conn) {
	id := c.Params("id")
	defer c.Close()

	var writeMu sync.Mutex
	send := func(msg Message) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return c.WriteJSON(msg)
	}

	updates, cancel, err := s.games.Subscribe(id)
	if err != nil {
		_ = send(Message{Type: MessageTypeError, Error: err.Error()})
		return
	}
	defer cancel()

	state, err := s.games.State(id)
	if err != nil {
		_ = send(Message{Type: MessageTypeError, Error: err.Error()})
		return
	}
	if err := send(Message{Type: MessageTypeState, State: state}); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Closing the subscription ends the write loop below.
		defer cancel()
		for {
			messageType, data, err := c.ReadMessage()
			if err != nil {
				return
			}
			if messageType != websocket.TextMessage {
				continue
			}

			var msg Message
			if err := json.Unmarshal(data, &msg); err != nil {
				_ = send(Message{Type: MessageTypeError, Error: "malformed message: " + err.Error()})
				continue
			}
			if msg.Type != MessageTypeMove {
				_ = send(Message{Type: MessageTypeError, Error: "unknown message type: " + string(msg.Type)})
				continue
			}
			if _, err := s.games.Move(id, msg.Move); err != nil {
				_ = send(Message{Type: MessageTypeError, Error: err.Error()})
			}
		}
	}()

	for state := range updates {
		if err := send(Message{Type: MessageTypeState, State: state}); err != nil {
			s.log.Printf("game %s: write: %v", id, err)
			break
		}
	}

	// The connection is released when this handler returns, so the reader
	// must be finished first.
	_ = c.Close()
	<-done
}
