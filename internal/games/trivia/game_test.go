package trivia

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/content"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/registry"
)

// testPool builds n questions in one category where answer 0 is always
// correct, so scoring paths can be exercised deterministically.
func testPool(n, difficulty int) []content.TriviaQuestion {
	pool := make([]content.TriviaQuestion, n)
	for i := range pool {
		pool[i] = content.TriviaQuestion{
			ID:         fmt.Sprintf("q%d", i),
			Question:   fmt.Sprintf("Question %d?", i),
			Answers:    []string{"right", "wrong", "wrong", "wrong"},
			Correct:    0,
			Category:   "testing",
			Difficulty: difficulty,
		}
	}
	return pool
}

func testGame(pool []content.TriviaQuestion) *Game {
	g := New()
	g.pool = pool
	g.rng = rand.New(rand.NewSource(1))
	return g
}

func TestSetupLoadsEmbeddedPool(t *testing.T) {
	g := New()
	if err := g.Setup(registry.Config{Seed: 42}); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if len(g.pool) == 0 {
		t.Fatal("expected a non-empty embedded question pool")
	}
}

func TestStartFiltersCategoryAndDifficulty(t *testing.T) {
	g := New()
	if err := g.Setup(registry.Config{Seed: 42}); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := g.Start("animals", 2); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(g.questions) == 0 || len(g.questions) > maxQuestions {
		t.Fatalf("got %d questions, want 1..%d", len(g.questions), maxQuestions)
	}
	for _, q := range g.questions {
		if q.Category != "animals" {
			t.Errorf("question %s: category %q leaked through the filter", q.ID, q.Category)
		}
		if q.Difficulty > 2 {
			t.Errorf("question %s: difficulty %d above the ceiling", q.ID, q.Difficulty)
		}
	}
	if g.State() != registry.StateActive {
		t.Errorf("state = %q, want %q", g.State(), registry.StateActive)
	}
}

func TestStartShuffleIsSeeded(t *testing.T) {
	order := func(seed int64) []string {
		g := New()
		if err := g.Setup(registry.Config{Seed: seed}); err != nil {
			t.Fatalf("Setup: %v", err)
		}
		if err := g.Start("science", 5); err != nil {
			t.Fatalf("Start: %v", err)
		}
		ids := make([]string, len(g.questions))
		for i, q := range g.questions {
			ids[i] = q.ID
		}
		return ids
	}

	a, b := order(7), order(7)
	if len(a) != len(b) {
		t.Fatalf("runs disagree on length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestStartNoContent(t *testing.T) {
	g := testGame(testPool(5, 1))
	if err := g.Start("geology", 3); !errors.Is(err, registry.ErrNoContent) {
		t.Fatalf("Start with unknown category: got %v, want ErrNoContent", err)
	}
	if g.State() != registry.StateMenu {
		t.Errorf("state = %q after failed start, want %q", g.State(), registry.StateMenu)
	}
}

func TestStartDifficultyOutOfRange(t *testing.T) {
	g := testGame(testPool(5, 1))
	for _, d := range []int{0, -1, MaxDifficulty + 1} {
		if err := g.Start("testing", d); err == nil {
			t.Errorf("Start with difficulty %d: expected error", d)
		}
	}
}

func TestSubmitRewards(t *testing.T) {
	g := testGame(testPool(maxQuestions, 3))
	if err := g.Start("testing", 5); err != nil {
		t.Fatalf("Start: %v", err)
	}

	j, err := g.Submit(0)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !j.Correct {
		t.Fatal("answer 0 should be correct")
	}
	if j.Reward.Coins != 5 { // 2 base + 3 difficulty, no streak bonus yet
		t.Errorf("coins = %d, want 5", j.Reward.Coins)
	}
	if j.Reward.XP != 25 { // 10 base + 3*5
		t.Errorf("xp = %d, want 25", j.Reward.XP)
	}
	if j.Stats.TriviaQuestionsAnswered != 1 || j.Stats.TriviaCorrectAnswers != 1 {
		t.Errorf("stats = %+v, want one answered, one correct", j.Stats)
	}
}

func TestStreakBonus(t *testing.T) {
	g := testGame(testPool(maxQuestions, 1))
	if err := g.Start("testing", 5); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Coins are 2 + 1 difficulty + 2*(streak before the answer / 3).
	wantCoins := []int{3, 3, 3, 5, 5, 5, 7, 7, 7, 9}
	for i, want := range wantCoins {
		j, err := g.Submit(0)
		if err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
		if j.Reward.Coins != want {
			t.Errorf("answer %d: coins = %d, want %d", i, j.Reward.Coins, want)
		}
	}
}

func TestWrongAnswerResetsStreak(t *testing.T) {
	g := testGame(testPool(maxQuestions, 1))
	if err := g.Start("testing", 5); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := 0; i < 4; i++ {
		if _, err := g.Submit(0); err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}
	j, err := g.Submit(1)
	if err != nil {
		t.Fatalf("Submit wrong: %v", err)
	}
	if j.Correct {
		t.Fatal("answer 1 should be wrong")
	}
	if j.Reward.Coins != 0 || j.Reward.XP != 0 {
		t.Errorf("wrong answer earned %+v, want nothing", j.Reward)
	}
	if j.Stats.TriviaCorrectAnswers != 0 {
		t.Errorf("wrong answer counted as correct: %+v", j.Stats)
	}

	// Streak restarts at zero, so the bonus is gone.
	j, err = g.Submit(0)
	if err != nil {
		t.Fatalf("Submit after miss: %v", err)
	}
	if j.Reward.Coins != 3 {
		t.Errorf("coins after streak reset = %d, want 3", j.Reward.Coins)
	}
}

func TestTimeoutCountsAsWrongAnswer(t *testing.T) {
	g := testGame(testPool(3, 1))
	if err := g.Start("testing", 5); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := g.Submit(0); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	j := g.Timeout()
	if j.Correct {
		t.Fatal("timeout judged correct")
	}
	if j.Stats.TriviaQuestionsAnswered != 1 {
		t.Errorf("timeout did not count as an answered question: %+v", j.Stats)
	}
	if g.streak != 0 {
		t.Errorf("streak = %d after timeout, want 0", g.streak)
	}
	if p, ok := g.Prompt(); !ok || p.Index != 2 {
		t.Errorf("session did not advance past the timed-out question: %+v ok=%v", p, ok)
	}
}

func TestPerfectSessionSummary(t *testing.T) {
	g := testGame(testPool(maxQuestions, 2))
	if err := g.Start("testing", 5); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var last registry.Judgement
	for i := 0; i < maxQuestions; i++ {
		j, err := g.Submit(0)
		if err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
		last = j
	}
	if !last.Done {
		t.Fatal("final judgement not marked done")
	}
	if last.Stats.SessionsCompleted != 1 {
		t.Errorf("final stats = %+v, want one completed session", last.Stats)
	}
	if g.State() != registry.StateCompleted {
		t.Fatalf("state = %q, want %q", g.State(), registry.StateCompleted)
	}

	s := g.Summary()
	if s.Score != 10 || s.Total != 10 || s.Percentage != 100 {
		t.Errorf("summary = %+v, want 10/10 at 100%%", s)
	}
	if s.Coins != 30 || s.XP != 150 {
		t.Errorf("summary rewards = %d coins / %d xp, want 30 / 150", s.Coins, s.XP)
	}
	if s.Band != "excellent" {
		t.Errorf("band = %q, want excellent", s.Band)
	}
}

func TestSummaryRoundsPercentage(t *testing.T) {
	g := testGame(testPool(3, 1))
	if err := g.Start("testing", 5); err != nil {
		t.Fatalf("Start: %v", err)
	}
	g.Submit(0)
	g.Submit(1)
	g.Submit(1)
	if s := g.Summary(); s.Percentage != 33 {
		t.Errorf("percentage = %d, want 33", s.Percentage)
	}
}

func TestSubmitOutsideActiveSession(t *testing.T) {
	g := testGame(testPool(3, 1))
	if _, err := g.Submit(0); err == nil {
		t.Fatal("Submit before Start should fail")
	}
	if _, ok := g.Prompt(); ok {
		t.Fatal("Prompt before Start should report not ok")
	}
}

func TestReset(t *testing.T) {
	g := testGame(testPool(3, 1))
	if err := g.Start("testing", 5); err != nil {
		t.Fatalf("Start: %v", err)
	}
	g.Submit(0)
	g.Reset()
	if g.State() != registry.StateMenu {
		t.Errorf("state = %q after reset, want %q", g.State(), registry.StateMenu)
	}
	if g.questions != nil || g.score != 0 {
		t.Error("reset did not clear session fields")
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("trivia") {
		t.Fatal("trivia not registered")
	}
	s, err := registry.Create("trivia")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID() != "trivia" {
		t.Errorf("ID = %q, want trivia", s.ID())
	}
}
