package registry

import "testing"

type stubSession struct {
	id string
}

func (s *stubSession) ID() string                    { return s.id }
func (s *stubSession) Title() string                 { return "Stub " + s.id }
func (s *stubSession) Description() string           { return "test session" }
func (s *stubSession) Categories() []string          { return []string{"testing"} }
func (s *stubSession) Setup(Config) error            { return nil }
func (s *stubSession) Start(string, int) error       { return nil }
func (s *stubSession) Prompt() (Prompt, bool)        { return Prompt{}, false }
func (s *stubSession) Submit(int) (Judgement, error) { return Judgement{}, nil }
func (s *stubSession) Timeout() Judgement            { return Judgement{} }
func (s *stubSession) Summary() Summary              { return Summary{} }
func (s *stubSession) Reset()                        {}
func (s *stubSession) State() State                  { return StateMenu }

var _ Session = (*stubSession)(nil)

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Session { return &stubSession{id: "stub-b"} })
	Register("stub-a", func() Session { return &stubSession{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Expected stub-a to be registered")
	}
	if Exists("stub-z") {
		t.Error("Expected stub-z to be unknown")
	}

	s, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if s.ID() != "stub-a" {
		t.Errorf("Expected session stub-a, got %q", s.ID())
	}

	if _, err := Create("stub-z"); err == nil {
		t.Error("Expected error for unknown session")
	}
}

func TestListSortedByID(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub-a" && info.Title == "Stub stub-a" {
			found = true
		}
	}
	if !found {
		t.Error("Expected stub-a info in list")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Session { return &stubSession{id: "stub-dup"} })
	Register("stub-dup", func() Session { return &stubSession{id: "stub-dup"} })
}

func TestBand(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, "excellent"},
		{90, "excellent"},
		{89, "great"},
		{70, "great"},
		{69, "good"},
		{50, "good"},
		{49, "keep practicing"},
		{0, "keep practicing"},
	}

	for _, tt := range tests {
		if got := Band(tt.pct); got != tt.want {
			t.Errorf("Band(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}
