package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quizarena_rooms_created_total",
		Help: "Rooms created since process start.",
	})

	RoomsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quizarena_rooms_active",
		Help: "Rooms currently registered in the directory.",
	})

	ConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quizarena_connections_active",
		Help: "Open WebSocket connections.",
	})

	MessagesIn = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizarena_messages_in_total",
		Help: "Inbound messages by type.",
	}, []string{"type"})
)

var knownTypes = map[string]bool{
	"create_room":      true,
	"join_game":        true,
	"start_game":       true,
	"answer_submitted": true,
	"player_finished":  true,
	"restart_game":     true,
}

// MessageType maps arbitrary client-supplied discriminators onto a bounded
// label set.
func MessageType(t string) string {
	if knownTypes[t] {
		return t
	}
	return "unknown"
}
