package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"quizarena/internal/metrics"
	"quizarena/internal/questions"
	"quizarena/internal/rooms"
	"quizarena/internal/session"
	"quizarena/internal/wshub"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

type Server struct {
	Rooms *rooms.Store
	Hub   *wshub.Hub
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Printf("[WS] Accept error: %v\n", err)
		return
	}

	id := uuid.New().String()
	client := wshub.NewClient(id, conn)
	s.Hub.Register(client)
	metrics.ConnectionsActive.Inc()
	log.Println("[WS] New WebSocket connection established")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go client.WritePump(ctx)

	sess := session.New(s.Rooms, client)
	defer func() {
		sess.Close()
		s.Hub.Unregister(id)
		metrics.ConnectionsActive.Dec()
		conn.CloseNow()
		log.Println("[WS] WebSocket connection closed")
	}()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		sess.HandleMessage(data)
	}
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(questions.Default()); err != nil {
		log.Printf("[Handle:Questions] Encode error: %v\n", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, `{"status":"ok","rooms":%d,"connections":%d}`, len(s.Rooms.List()), s.Hub.Len())
}
