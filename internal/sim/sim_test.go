package sim

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
)

func testSave() game.SaveData {
	return *game.NewSave()
}

// cloneSave deep-copies a snapshot so before/after comparisons don't alias
// the same backing arrays.
func cloneSave(t *testing.T, s game.SaveData) game.SaveData {
	t.Helper()
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	var out game.SaveData
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	return out
}

func TestTickDecay(t *testing.T) {
	p := game.Puppy{Happiness: 100, Hunger: 80, Energy: 100, Level: 1, AgeStage: game.StageBaby}

	Tick(&p)

	if p.Hunger != 79 {
		t.Errorf("Expected hunger 79, got %v", p.Hunger)
	}
	if p.Energy != 99.5 {
		t.Errorf("Expected energy 99.5, got %v", p.Energy)
	}
	if p.Happiness != 100 {
		t.Errorf("Happiness should not decay while needs are met, got %v", p.Happiness)
	}
}

func TestTickHappinessDecayWhenNeedy(t *testing.T) {
	p := game.Puppy{Happiness: 50, Hunger: 20, Energy: 100, Level: 1, AgeStage: game.StageBaby}

	Tick(&p)

	if p.Happiness != 48 {
		t.Errorf("Expected happiness 48 when hungry, got %v", p.Happiness)
	}
}

func TestTickClampsAtZero(t *testing.T) {
	p := game.Puppy{Happiness: 1, Hunger: 0, Energy: 0.2, Level: 1, AgeStage: game.StageBaby}

	for i := 0; i < 10; i++ {
		Tick(&p)
	}

	if p.Hunger < 0 || p.Energy < 0 || p.Happiness < 0 {
		t.Errorf("Stats went negative: hunger=%v energy=%v happiness=%v", p.Hunger, p.Energy, p.Happiness)
	}
}

func TestMoodBands(t *testing.T) {
	for h := 0; h <= 100; h++ {
		var want game.Mood
		switch {
		case h >= 80:
			want = game.MoodHappy
		case h >= 60:
			want = game.MoodContent
		case h >= 40:
			want = game.MoodSad
		default:
			want = game.MoodMiserable
		}
		if got := game.MoodFor(float64(h)); got != want {
			t.Errorf("MoodFor(%d) = %q, want %q", h, got, want)
		}
	}
}

func TestFeedEffect(t *testing.T) {
	save := testSave()
	save.Inventory = []game.InventoryItem{
		{ID: "1", Name: "Dog Food", Type: game.ItemFood, Quantity: 1, Rarity: game.RarityCommon},
	}
	p := save.PuppyByID("kk")
	p.Hunger = 50
	p.Happiness = 50

	eng := New(1)
	now := time.Now()
	out := eng.Apply(&save, "kk", ActionFeed, now)

	if !out.Applied {
		t.Fatal("feed should apply with food in stock")
	}
	if out.Animation != game.AnimEating {
		t.Errorf("Expected eating animation, got %q", out.Animation)
	}
	if p.Hunger != 75 {
		t.Errorf("Expected hunger 75, got %v", p.Hunger)
	}
	if p.Happiness != 65 {
		t.Errorf("Expected happiness 65, got %v", p.Happiness)
	}
	if save.Inventory[0].Quantity != 0 {
		t.Errorf("Expected food quantity 0, got %d", save.Inventory[0].Quantity)
	}
	if p.LastFed == nil || !p.LastFed.Equal(now) {
		t.Error("lastFed should be stamped with the action time")
	}
	if save.GameStats.PuppyFeedings != 1 {
		t.Errorf("Expected 1 feeding counted, got %d", save.GameStats.PuppyFeedings)
	}
}

func TestFeedGuardWithoutFood(t *testing.T) {
	save := testSave()
	save.Inventory = []game.InventoryItem{
		{ID: "3", Name: "Ball", Type: game.ItemToy, Quantity: 1, Rarity: game.RarityCommon},
	}
	before := cloneSave(t, save)

	eng := New(1)
	out := eng.Apply(&save, "kk", ActionFeed, time.Now())

	if out.Applied {
		t.Fatal("feed should be rejected without food")
	}
	if !reflect.DeepEqual(before, save) {
		t.Error("failed guard must leave the snapshot unchanged")
	}
}

func TestGuardRejectionLeavesStateUntouched(t *testing.T) {
	cases := []struct {
		name   string
		action Action
		setup  func(p *game.Puppy)
	}{
		{"play low energy", ActionPlay, func(p *game.Puppy) { p.Energy = 10 }},
		{"train low energy", ActionTrain, func(p *game.Puppy) { p.Energy = 15 }},
		{"fetch low energy", ActionFetch, func(p *game.Puppy) { p.Energy = 20 }},
		{"fetch mastered", ActionFetch, func(p *game.Puppy) { p.Energy = 100; p.Skills.Fetch = 100 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			save := testSave()
			tc.setup(save.PuppyByID("kk"))
			before := cloneSave(t, save)

			eng := New(7)
			out := eng.Apply(&save, "kk", tc.action, time.Now())

			if out.Applied {
				t.Fatalf("%s should be rejected", tc.action)
			}
			if !reflect.DeepEqual(before, save) {
				t.Error("failed guard must leave the snapshot unchanged")
			}
		})
	}
}

func TestPlayEffect(t *testing.T) {
	save := testSave()
	p := save.PuppyByID("kk")
	p.Energy = 50
	p.Happiness = 50

	eng := New(1)
	out := eng.Apply(&save, "kk", ActionPlay, time.Now())

	if !out.Applied {
		t.Fatal("play should apply with energy 50")
	}
	if p.Energy != 25 {
		t.Errorf("Expected energy 25, got %v", p.Energy)
	}
	if p.Happiness != 70 {
		t.Errorf("Expected happiness 70, got %v", p.Happiness)
	}
	if p.Experience != 5 {
		t.Errorf("Expected puppy xp 5, got %d", p.Experience)
	}
	// KK is energetic, so play shows jumping.
	if out.Animation != game.AnimJumping {
		t.Errorf("Expected jumping animation, got %q", out.Animation)
	}
	if save.GameStats.PuppyPlaySessions != 1 {
		t.Errorf("Expected 1 play session, got %d", save.GameStats.PuppyPlaySessions)
	}
}

func TestPlayAnimationForCalmPuppy(t *testing.T) {
	save := testSave()

	eng := New(1)
	out := eng.Apply(&save, "hailey", ActionPlay, time.Now())

	if out.Animation != game.AnimWagging {
		t.Errorf("Expected wagging animation for calm puppy, got %q", out.Animation)
	}
}

func TestPlayerRewards(t *testing.T) {
	cases := []struct {
		action Action
		xp     int
	}{
		{ActionFeed, 6},
		{ActionPlay, 6},
		{ActionCuddle, 6},
		{ActionTrain, 10},
		{ActionFetch, 10},
		{ActionGroom, 6},
		{ActionSleep, 6},
		{ActionBathe, 6},
	}

	for _, tc := range cases {
		save := testSave()

		eng := New(1)
		out := eng.Apply(&save, "kk", tc.action, time.Now())

		if !out.Applied {
			t.Fatalf("%s should apply on a fresh save", tc.action)
		}
		if out.PlayerXP != tc.xp {
			t.Errorf("%s: expected player xp %d, got %d", tc.action, tc.xp, out.PlayerXP)
		}
		if save.PlayerData.Experience != tc.xp {
			t.Errorf("%s: expected player experience %d, got %d", tc.action, tc.xp, save.PlayerData.Experience)
		}
		if save.GameStats.PuppyInteractions != 1 {
			t.Errorf("%s: expected 1 interaction, got %d", tc.action, save.GameStats.PuppyInteractions)
		}
	}
}

func TestPlayerXPClampedToNext(t *testing.T) {
	save := testSave()
	save.PlayerData.Experience = 98
	save.PlayerData.ExperienceToNext = 100

	eng := New(1)
	eng.Apply(&save, "kk", ActionCuddle, time.Now())

	if save.PlayerData.Experience != 100 {
		t.Errorf("Expected experience clamped to 100, got %d", save.PlayerData.Experience)
	}
}

func TestStatsClampedAfterActions(t *testing.T) {
	save := testSave()
	eng := New(42)

	actions := Actions()
	for i := 0; i < 500; i++ {
		eng.Apply(&save, "kk", actions[i%len(actions)], time.Now())
		TickAll(save.Puppies)

		for _, p := range save.Puppies {
			if p.Happiness < 0 || p.Happiness > 100 ||
				p.Hunger < 0 || p.Hunger > 100 ||
				p.Energy < 0 || p.Energy > 100 {
				t.Fatalf("stat out of bounds: %+v", p)
			}
			for _, k := range game.Skills() {
				if v := p.Skills.Get(k); v < 0 || v > 100 {
					t.Fatalf("skill %s out of bounds: %d", k, v)
				}
			}
		}
	}
}

func TestLeveling(t *testing.T) {
	save := testSave()
	p := save.PuppyByID("kk")
	p.Level = 1
	p.Experience = 55
	p.Energy = 100

	eng := New(1)
	out := eng.Apply(&save, "kk", ActionTrain, time.Now())

	if !out.Applied {
		t.Fatal("train should apply")
	}
	// 55 + 8 = 63 >= 60 triggers the level-up.
	if p.Level != 2 {
		t.Errorf("Expected level 2, got %d", p.Level)
	}
	if p.Experience != 0 {
		t.Errorf("Expected experience reset to 0, got %d", p.Experience)
	}
	if p.Age != 1 {
		t.Errorf("Expected age 1, got %d", p.Age)
	}
}

func TestAgeStageMonotonic(t *testing.T) {
	save := testSave()
	p := save.PuppyByID("kk")

	eng := New(99)
	rank := map[game.AgeStage]int{game.StageBaby: 0, game.StageYoung: 1, game.StageAdult: 2}
	prev := rank[p.AgeStage]

	for i := 0; i < 100; i++ {
		p.Energy = 100
		p.Hunger = 100
		eng.Apply(&save, "kk", ActionTrain, time.Now())
		// Force a level-up per iteration so the stage gates get exercised.
		p.Experience = p.XPToNextLevel()
		Tick(p)

		cur := rank[p.AgeStage]
		if cur < prev {
			t.Fatalf("age stage regressed from rank %d to %d", prev, cur)
		}
		prev = cur
	}

	if p.AgeStage != game.StageAdult {
		t.Errorf("Expected adult after heavy leveling, got %q", p.AgeStage)
	}
}

func TestTrainSaturatesAllSkills(t *testing.T) {
	save := testSave()
	p := save.PuppyByID("kk")

	eng := New(12345)
	for i := 0; i < 600; i++ {
		p.Energy = 100
		eng.Apply(&save, "kk", ActionTrain, time.Now())
	}

	// 600 uniform picks over 6 skills make a sub-maxed skill vanishingly
	// unlikely (each needs 20 hits).
	for _, k := range game.Skills() {
		if v := p.Skills.Get(k); v != 100 {
			t.Errorf("skill %s not saturated after 600 trainings: %d", k, v)
		}
	}
}

func TestTrainDeterministicWithSeed(t *testing.T) {
	run := func() game.SkillSet {
		save := testSave()
		p := save.PuppyByID("kk")
		eng := New(777)
		for i := 0; i < 30; i++ {
			p.Energy = 100
			eng.Apply(&save, "kk", ActionTrain, time.Now())
		}
		return p.Skills
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different skills: %+v vs %+v", a, b)
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("nap"); ok {
		t.Error("ParseAction should reject unknown names")
	}
}

func TestUnknownPuppyIsNoOp(t *testing.T) {
	save := testSave()
	before := cloneSave(t, save)

	eng := New(1)
	out := eng.Apply(&save, "rex", ActionCuddle, time.Now())

	if out.Applied {
		t.Error("action on unknown puppy should not apply")
	}
	if !reflect.DeepEqual(before, save) {
		t.Error("action on unknown puppy must not change state")
	}
}
