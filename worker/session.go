package worker

import (
	"encoding/json"
	"net/http"
	"time"

	"boardgames/config"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const sessionPingInterval = 30 * time.Second

// sessionMessage frames every websocket message. Clients send "bestmove" with
// the request as payload; the worker answers with "move" or "error" under the
// same id.
type sessionMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Game    config.Game     `json:"game,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func mustMarshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

// handleSession answers requests one at a time, in order
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("failed to upgrade session")
		return
	}
	defer conn.Close()

	send := make(chan []byte, 16)
	writerDone := make(chan error, 1)
	go func() {
		writerDone <- writeWithHeartbeat(conn, send)
	}()
	defer func() {
		close(send)
		<-writerDone
	}()

	log.Info().Str("remote", r.RemoteAddr).Msg("session opened")
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Msg("session read failed")
			}
			log.Info().Str("remote", r.RemoteAddr).Msg("session closed")
			return
		}

		reply := s.answer(r, data)
		if err := deliver(send, writerDone, mustMarshal(reply)); err != nil {
			log.Warn().Err(err).Msg("session write failed")
			return
		}
	}
}

// deliver queues msg unless the writer has already stopped, in which case the
// writer's error is returned and left in writerDone for the deferred wait.
func deliver(send chan<- []byte, writerDone chan error, msg []byte) error {
	select {
	case err := <-writerDone:
		writerDone <- err
		return err
	default:
	}

	select {
	case send <- msg:
		return nil
	case err := <-writerDone:
		writerDone <- err
		return err
	}
}

func (s *Server) answer(r *http.Request, data []byte) sessionMessage {
	var request sessionMessage
	if err := json.Unmarshal(data, &request); err != nil {
		return sessionMessage{Type: "error", Error: "malformed message: " + err.Error()}
	}
	if request.Type != "bestmove" {
		return sessionMessage{ID: request.ID, Type: "error", Error: "unknown message type " + request.Type}
	}

	response, err := bestMove(r.Context(), s.timeout, request.Game, request.Payload)
	if err != nil {
		log.Warn().Err(err).Str("game", string(request.Game)).Msg("session request failed")
		return sessionMessage{ID: request.ID, Type: "error", Game: request.Game, Error: err.Error()}
	}
	return sessionMessage{ID: request.ID, Type: "move", Game: request.Game, Payload: mustMarshal(response)}
}

func writeWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(sessionPingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < sessionPingInterval {
				continue
			}
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
