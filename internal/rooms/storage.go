package rooms

import (
	"fmt"
	"sync"

	"quizarena/internal/metrics"
	"quizarena/internal/questions"
)

// Store is the room directory: code → room. It exclusively owns room
// lifetimes; Delete is the single teardown path and releases the room's
// timers before dropping it.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*Room
	cfg   Config
	bank  []questions.Question
}

func NewStore(cfg Config, bank []questions.Question) *Store {
	return &Store{
		rooms: make(map[string]*Room),
		cfg:   cfg,
		bank:  bank,
	}
}

func (s *Store) Create() (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Try up to 10 times to generate a unique code
	for i := 0; i < 10; i++ {
		code, err := GenerateCode()
		if err != nil {
			return nil, fmt.Errorf("generating room code: %w", err)
		}
		if _, exists := s.rooms[code]; exists {
			continue
		}

		room := NewRoom(code, s.cfg, s.bank)
		s.rooms[code] = room
		metrics.RoomsCreated.Inc()
		metrics.RoomsActive.Inc()
		return room, nil
	}
	return nil, fmt.Errorf("failed to generate unique room code after 10 attempts")
}

func (s *Store) Get(code string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[code]
}

// FindOpen returns some room still in the lobby, or nil. With more than one
// open room the pick is whichever map iteration yields first; plain join
// requests are not keyed by code.
func (s *Store) FindOpen() *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.Phase() == PhaseLobby {
			return room
		}
	}
	return nil
}

func (s *Store) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[code]
	if !ok {
		return
	}
	room.Shutdown()
	delete(s.rooms, code)
	metrics.RoomsActive.Dec()
}

func (s *Store) List() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		list = append(list, r)
	}
	return list
}
