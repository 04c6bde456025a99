package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message is the envelope of every frame sent on /ws/battles.
type Message struct {
	Type    string      `json:"type"` // "line", "done" or "error"
	Payload interface{} `json:"payload"`
}

type donePayload struct {
	ID     string `json:"id"`
	Rounds int    `json:"rounds"`
	Winner string `json:"winner"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// streamBattles runs one battle per inbound text message and streams its
// transcript back. Battles on one connection run one after another.
func (s *Server) streamBattles(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxConfigBytes)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		id := uuid.New().String()
		battle, err := s.build(id, data)
		if err != nil {
			if werr := conn.WriteJSON(Message{Type: "error", Payload: err.Error()}); werr != nil {
				return
			}
			continue
		}

		var writeErr error
		res := runBattle(battle, func(line string) {
			if writeErr == nil {
				writeErr = conn.WriteJSON(Message{Type: "line", Payload: line})
			}
		})
		if writeErr != nil {
			s.log.Warn("websocket write failed", zap.String("battle", id), zap.Error(writeErr))
			return
		}
		done := donePayload{ID: id, Rounds: res.Rounds, Winner: res.Winner}
		if err := conn.WriteJSON(Message{Type: "done", Payload: done}); err != nil {
			return
		}
	}
}
