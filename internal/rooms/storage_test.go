package rooms

import (
	"sync"
	"testing"

	"quizarena/internal/questions"
)

func newTestStore() *Store {
	return NewStore(testConfig(), questions.Default())
}

func TestNewStore(t *testing.T) {
	s := newTestStore()
	if s == nil {
		t.Fatal("NewStore() returned nil")
	}
	if len(s.List()) != 0 {
		t.Error("new store should have no rooms")
	}
}

func TestStore_Create(t *testing.T) {
	s := newTestStore()
	room, err := s.Create()
	if err != nil {
		t.Fatal(err)
	}
	if room == nil {
		t.Fatal("Create() returned nil room")
	}
	if room.Code == "" {
		t.Error("room code should not be empty")
	}
	if room.Phase() != PhaseLobby {
		t.Errorf("new room phase = %v, want lobby", room.Phase())
	}
	if room.TimerActive() {
		t.Error("new room should not have an active timer")
	}
	if len(room.Questions) == 0 {
		t.Error("room should share the process question bank")
	}
}

func TestStore_Get(t *testing.T) {
	s := newTestStore()
	room, _ := s.Create()

	got := s.Get(room.Code)
	if got == nil {
		t.Fatal("Get() returned nil for existing room")
	}
	if got.Code != room.Code {
		t.Errorf("Code = %q, want %q", got.Code, room.Code)
	}

	if s.Get("ZZZZZZ") != nil {
		t.Error("Get() should return nil for nonexistent room")
	}
}

func TestStore_Delete_ReleasesTimers(t *testing.T) {
	s := newTestStore()
	room, _ := s.Create()
	room.Start()

	s.Delete(room.Code)

	if s.Get(room.Code) != nil {
		t.Error("room should be deleted")
	}
	if room.TimerActive() {
		t.Error("delete must release the room's countdown")
	}

	// Deleting again is a no-op.
	s.Delete(room.Code)
}

func TestStore_FindOpen_SkipsStartedRooms(t *testing.T) {
	s := newTestStore()
	r1, _ := s.Create()
	r2, _ := s.Create()

	r1.Start()

	open := s.FindOpen()
	if open == nil {
		t.Fatal("FindOpen() should find the lobby room")
	}
	if open.Code != r2.Code {
		t.Errorf("FindOpen() = %s, want %s", open.Code, r2.Code)
	}

	r2.Start()
	if s.FindOpen() != nil {
		t.Error("FindOpen() should return nil when every room has started")
	}
}

func TestStore_FindOpen_Empty(t *testing.T) {
	s := newTestStore()
	if s.FindOpen() != nil {
		t.Error("FindOpen() on an empty store should return nil")
	}
}

func TestStore_ConcurrentCreates_UniqueCodes(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Create(); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	list := s.List()
	if len(list) != 50 {
		t.Fatalf("concurrent creates: got %d rooms, want 50", len(list))
	}
	seen := make(map[string]bool)
	for _, r := range list {
		if seen[r.Code] {
			t.Errorf("colliding room code %q", r.Code)
		}
		seen[r.Code] = true
	}
}

func TestStore_RoomIsolation(t *testing.T) {
	s := newTestStore()
	r1, _ := s.Create()
	r2, _ := s.Create()

	join(r1, "p1", "Alice")
	join(r2, "p2", "Bob")

	if len(r1.Roster()) != 1 || r1.Roster()[0].Name != "Alice" {
		t.Error("room1 should only have Alice")
	}
	if len(r2.Roster()) != 1 || r2.Roster()[0].Name != "Bob" {
		t.Error("room2 should only have Bob")
	}
}
