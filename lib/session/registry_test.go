package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/go-splp/go-splp-validator/lib/protocol"
)

func TestRegistryGetCreatesOnFirstUse(t *testing.T) {
	r, err := NewRegistry(DefaultConfig(), 0)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	s := r.Get("peer-1")
	if s == nil {
		t.Fatal("Get() = nil")
	}
	if s.Phase() != PhaseInit {
		t.Errorf("new session phase = %v, want PhaseInit", s.Phase())
	}
	if r.Get("peer-1") != s {
		t.Error("Get() did not return the same session for the same peer")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistrySessionsAreIndependent(t *testing.T) {
	r, err := NewRegistry(DefaultConfig(), 0)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	a := r.Get("peer-a")
	b := r.Get("peer-b")

	if got := a.Validate(protocol.Message{Direction: protocol.DirAToB, Text: "CONNECT"}); got != VerdictValid {
		t.Fatalf("peer-a CONNECT = %v, want VerdictValid", got)
	}

	// Advancing one session must not leak into another.
	if b.Phase() != PhaseInit {
		t.Errorf("peer-b phase = %v, want PhaseInit", b.Phase())
	}
	if a.Phase() != PhaseConnecting {
		t.Errorf("peer-a phase = %v, want PhaseConnecting", a.Phase())
	}
}

func TestRegistryRemove(t *testing.T) {
	r, err := NewRegistry(DefaultConfig(), 0)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	r.Get("peer-1")
	if !r.Remove("peer-1") {
		t.Error("Remove(peer-1) = false, want true")
	}
	if r.Remove("peer-1") {
		t.Error("Remove(peer-1) second call = true, want false")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistryEviction(t *testing.T) {
	r, err := NewRegistry(DefaultConfig(), 2)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	r.Get("peer-1")
	r.Get("peer-2")
	r.Get("peer-3") // evicts peer-1

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	// The evicted peer comes back as a fresh session in PhaseInit.
	s := r.Get("peer-1")
	if s.Phase() != PhaseInit {
		t.Errorf("recreated session phase = %v, want PhaseInit", s.Phase())
	}
}

func TestRegistryReset(t *testing.T) {
	r, err := NewRegistry(DefaultConfig(), 0)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	r.Get("peer-1")
	r.Get("peer-2")
	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", r.Len())
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r, err := NewRegistry(DefaultConfig(), 0)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("peer-%d", n)
			s := r.Get(id)
			s.Validate(protocol.Message{Direction: protocol.DirAToB, Text: "CONNECT"})
			s.Validate(protocol.Message{Direction: protocol.DirBToA, Text: "CONNECT_OK"})
		}(i)
	}
	wg.Wait()

	if r.Len() != 16 {
		t.Errorf("Len() = %d, want 16", r.Len())
	}
	for i := 0; i < 16; i++ {
		id := fmt.Sprintf("peer-%d", i)
		if phase := r.Get(id).Phase(); phase != PhaseConnected {
			t.Errorf("%s phase = %v, want PhaseConnected", id, phase)
		}
	}
}

func TestRegistryConfigPropagation(t *testing.T) {
	r, err := NewRegistry(Config{AllowEmptyVersion: true}, 0)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	s := r.Get("peer-1")
	s.Validate(protocol.Message{Direction: protocol.DirAToB, Text: "CONNECT"})
	s.Validate(protocol.Message{Direction: protocol.DirBToA, Text: "CONNECT_OK"})
	s.Validate(protocol.Message{Direction: protocol.DirAToB, Text: "GET_VER"})
	if got := s.Validate(protocol.Message{Direction: protocol.DirBToA, Text: "VERSION "}); got != VerdictValid {
		t.Errorf("empty version with AllowEmptyVersion config = %v, want VerdictValid", got)
	}
}
