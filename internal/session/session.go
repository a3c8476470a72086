// Package session interprets inbound protocol messages on behalf of one
// connection: it resolves or creates the connection's room, mutates it, and
// owns the cleanup that runs when the connection closes.
package session

import (
	"encoding/json"
	"log"

	"quizarena/internal/metrics"
	"quizarena/internal/protocol"
	"quizarena/internal/rooms"

	"github.com/google/uuid"
)

// Session is one connection's view of the game: the room it belongs to (if
// any), whether it is that room's host, and its player ID when it joined as
// a member.
type Session struct {
	id       string
	store    *rooms.Store
	conn     rooms.Sender
	room     *rooms.Room
	isHost   bool
	playerID string
}

func New(store *rooms.Store, conn rooms.Sender) *Session {
	return &Session{
		id:    uuid.New().String(),
		store: store,
		conn:  conn,
	}
}

// HandleMessage dispatches one inbound message. Unparseable payloads get an
// error reply and change nothing; unrecognized types are silently ignored.
func (s *Session) HandleMessage(data []byte) {
	var msg protocol.ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		log.Printf("[Session %s] Error processing message: %v\n", s.id, err)
		s.sendError("Invalid message format")
		return
	}
	metrics.MessagesIn.WithLabelValues(metrics.MessageType(msg.Type)).Inc()

	switch msg.Type {
	case protocol.TypeCreateRoom:
		s.createRoom()
	case protocol.TypeJoinGame:
		s.joinGame(msg.Player)
	case protocol.TypeStartGame:
		if s.room != nil && s.isHost {
			s.room.Start()
			log.Printf("[Session] Game started in room %s\n", s.room.Code)
		}
	case protocol.TypeAnswerSubmitted:
		if s.room != nil && msg.IsCorrect {
			s.room.UpdateScore(msg.PlayerID, msg.NewScore)
		}
	case protocol.TypePlayerFinished:
		if s.room != nil {
			s.room.FinishPlayer(msg.PlayerID, msg.FinalScore)
		}
	case protocol.TypeRestartGame:
		if s.room != nil && s.isHost {
			s.room.Restart()
			log.Printf("[Session] Game restarted in room %s\n", s.room.Code)
		}
	}
}

// Close runs connection-close cleanup. A host takes its room down with it:
// timers are released and the room leaves the directory, orphaning any
// remaining members. A member is simply removed from its room's roster.
func (s *Session) Close() {
	if s.room == nil {
		return
	}
	if s.isHost {
		s.store.Delete(s.room.Code)
		log.Printf("[Session] Room %s deleted - host disconnected\n", s.room.Code)
	} else if s.playerID != "" {
		s.room.RemovePlayer(s.playerID)
		log.Printf("[Session] Player %s disconnected from room %s\n", s.playerID, s.room.Code)
	}
	s.room = nil
}

func (s *Session) createRoom() {
	room, err := s.store.Create()
	if err != nil {
		log.Printf("[Session] Create room failed: %v\n", err)
		s.sendError("Failed to create room")
		return
	}
	room.SetHost(s.conn)
	s.room = room
	s.isHost = true
	s.send(protocol.NewRoomCreated(room.Code))
	log.Printf("[Session %s] Room created: %s\n", s.id, room.Code)
}

func (s *Session) joinGame(player *protocol.PlayerState) {
	if player == nil {
		s.sendError("Invalid message format")
		return
	}
	room := s.store.FindOpen()
	if room == nil {
		s.sendError("No available rooms found")
		return
	}
	s.room = room
	s.playerID = player.ID
	room.AddPlayer(*player, s.conn)
	log.Printf("[Session] Player %s joined room %s\n", player.Name, room.Code)
}

func (s *Session) send(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[Session] Marshal error: %v\n", err)
		return
	}
	s.conn.TrySend(data)
}

func (s *Session) sendError(message string) {
	s.send(protocol.NewError(message))
}
