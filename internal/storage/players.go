package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/content"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
)

// ErrNameTaken signals that a player with the requested name already
// exists. Player names are unique.
var ErrNameTaken = fmt.Errorf("storage: player name already taken")

// PlayerRecord identifies one API-managed player profile. The profile's
// game state lives in the saves table under the player's ID.
type PlayerRecord struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// CreatePlayer registers a new player profile. Returns ErrNameTaken
// when the name is already in use.
func (s *Store) CreatePlayer(id, name string) error {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM players WHERE name = ?",
		name,
	).Scan(&n)
	if err != nil {
		return fmt.Errorf("storage: cannot check player name: %w", err)
	}
	if n > 0 {
		return ErrNameTaken
	}

	_, err = s.db.Exec(
		"INSERT INTO players (id, name) VALUES (?, ?)",
		id, name,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot create player: %w", err)
	}
	return nil
}

// Players lists all registered player profiles, oldest first.
func (s *Store) Players() ([]PlayerRecord, error) {
	rows, err := s.db.Query(
		"SELECT id, name, created_at FROM players ORDER BY created_at",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var players []PlayerRecord
	for rows.Next() {
		var p PlayerRecord
		var createdAt any
		if err := rows.Scan(&p.ID, &p.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan player row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			p.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				p.CreatedAt = parsed
			}
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return players, nil
}

// PlayerByID retrieves a player profile, or nil when unknown.
func (s *Store) PlayerByID(id string) (*PlayerRecord, error) {
	var p PlayerRecord
	var createdAt any
	err := s.db.QueryRow(
		"SELECT id, name, created_at FROM players WHERE id = ?",
		id,
	).Scan(&p.ID, &p.Name, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player: %w", err)
	}

	switch v := createdAt.(type) {
	case time.Time:
		p.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			p.CreatedAt = parsed
		}
	}
	return &p, nil
}

// AddTriviaQuestion stores a custom question alongside the embedded pool.
func (s *Store) AddTriviaQuestion(q content.TriviaQuestion) error {
	payload, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("storage: cannot encode question: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO trivia_questions (id, payload) VALUES (?, ?)",
		q.ID, string(payload),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot add question: %w", err)
	}
	return nil
}

// CustomTriviaQuestions returns all stored custom questions.
func (s *Store) CustomTriviaQuestions() ([]content.TriviaQuestion, error) {
	rows, err := s.db.Query(
		"SELECT payload FROM trivia_questions ORDER BY created_at",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query questions: %w", err)
	}
	defer rows.Close()

	var questions []content.TriviaQuestion
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("storage: cannot scan question row: %w", err)
		}
		var q content.TriviaQuestion
		if err := json.Unmarshal([]byte(payload), &q); err != nil {
			return nil, fmt.Errorf("storage: cannot decode question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return questions, nil
}

// AddLesson stores a custom vocabulary lesson alongside the embedded pool.
func (s *Store) AddLesson(l content.Lesson) error {
	payload, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("storage: cannot encode lesson: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO spanish_lessons (id, payload) VALUES (?, ?)",
		l.ID, string(payload),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot add lesson: %w", err)
	}
	return nil
}

// CustomLessons returns all stored custom lessons.
func (s *Store) CustomLessons() ([]content.Lesson, error) {
	rows, err := s.db.Query(
		"SELECT payload FROM spanish_lessons ORDER BY created_at",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []content.Lesson
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("storage: cannot scan lesson row: %w", err)
		}
		var l content.Lesson
		if err := json.Unmarshal([]byte(payload), &l); err != nil {
			return nil, fmt.Errorf("storage: cannot decode lesson: %w", err)
		}
		lessons = append(lessons, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return lessons, nil
}

// AddZone stores a custom zone alongside the default catalog.
func (s *Store) AddZone(z game.Zone) error {
	payload, err := json.Marshal(z)
	if err != nil {
		return fmt.Errorf("storage: cannot encode zone: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO zones (id, payload) VALUES (?, ?)",
		z.ID, string(payload),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot add zone: %w", err)
	}
	return nil
}

// CustomZones returns all stored custom zones.
func (s *Store) CustomZones() ([]game.Zone, error) {
	rows, err := s.db.Query(
		"SELECT payload FROM zones ORDER BY created_at",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query zones: %w", err)
	}
	defer rows.Close()

	var zones []game.Zone
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("storage: cannot scan zone row: %w", err)
		}
		var z game.Zone
		if err := json.Unmarshal([]byte(payload), &z); err != nil {
			return nil, fmt.Errorf("storage: cannot decode zone: %w", err)
		}
		zones = append(zones, z)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return zones, nil
}
