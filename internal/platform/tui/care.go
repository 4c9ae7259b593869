package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/sim"
)

// actionLabels decorate sim actions for the care menu.
var actionLabels = map[sim.Action]string{
	sim.ActionFeed:   "🍖 Feed",
	sim.ActionPlay:   "🎾 Play",
	sim.ActionCuddle: "🤗 Cuddle",
	sim.ActionTrain:  "🎓 Train",
	sim.ActionFetch:  "🥏 Fetch",
	sim.ActionGroom:  "🪮 Groom",
	sim.ActionSleep:  "💤 Sleep",
	sim.ActionBathe:  "🛁 Bathe",
}

// CareModel is the puppy care view: stat bars, action menu, and the
// transient animation per puppy.
type CareModel struct {
	save   *game.SaveData
	engine *sim.Engine
	theme  Theme
	keys   *KeyMapper
	bar    progress.Model

	puppyIdx   int
	actionIdx  int
	animations map[string]game.Animation
	feedback   string
}

// NewCareModel builds the care view over the shared save.
func NewCareModel(save *game.SaveData, engine *sim.Engine, theme Theme) CareModel {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(24))
	return CareModel{
		save:       save,
		engine:     engine,
		theme:      theme,
		keys:       NewKeyMapper(),
		bar:        bar,
		animations: make(map[string]game.Animation),
	}
}

// ClearAnimation resets a puppy's animation back to idle.
func (c *CareModel) ClearAnimation(puppyID string) {
	delete(c.animations, puppyID)
}

// HandleKey processes input. The returned bool is true when the user
// wants back to the hub.
func (c CareModel) HandleKey(msg tea.KeyMsg) (CareModel, tea.Cmd, bool) {
	actions := sim.Actions()

	switch c.keys.MapKeyToMenuAction(msg) {
	case MenuActionBack, MenuActionQuit:
		c.feedback = ""
		return c, nil, true

	case MenuActionLeft:
		if c.puppyIdx > 0 {
			c.puppyIdx--
			c.feedback = ""
		}

	case MenuActionRight:
		if c.puppyIdx < len(c.save.Puppies)-1 {
			c.puppyIdx++
			c.feedback = ""
		}

	case MenuActionUp:
		if c.actionIdx > 0 {
			c.actionIdx--
		}

	case MenuActionDown:
		if c.actionIdx < len(actions)-1 {
			c.actionIdx++
		}

	case MenuActionSelect:
		if len(c.save.Puppies) == 0 {
			return c, nil, false
		}
		puppy := &c.save.Puppies[c.puppyIdx]
		action := actions[c.actionIdx]
		out := c.engine.Apply(c.save, puppy.ID, action, time.Now())
		if !out.Applied {
			// Guard rejections are silent; state is untouched.
			return c, nil, false
		}
		c.animations[puppy.ID] = out.Animation
		c.feedback = fmt.Sprintf("%s %s! +%d XP", puppy.Name, pastTense(action), out.PlayerXP)
		return c, animDoneCmd(puppy.ID, out.AnimationDelay), false
	}

	return c, nil, false
}

func pastTense(a sim.Action) string {
	switch a {
	case sim.ActionFeed:
		return "munched it down"
	case sim.ActionPlay:
		return "had a blast"
	case sim.ActionCuddle:
		return "feels loved"
	case sim.ActionTrain:
		return "learned something new"
	case sim.ActionFetch:
		return "brought it right back"
	case sim.ActionGroom:
		return "looks fabulous"
	case sim.ActionSleep:
		return "is snoozing"
	case sim.ActionBathe:
		return "is squeaky clean"
	}
	return "enjoyed that"
}

// View renders the care screen.
func (c CareModel) View(width int) string {
	if len(c.save.Puppies) == 0 {
		return centerText("No puppies yet!", width)
	}
	p := &c.save.Puppies[c.puppyIdx]

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("< %s >  (%d of %d)", p.Name, c.puppyIdx+1, len(c.save.Puppies))
	b.WriteString(centerText(c.theme.Title.Render(header), width))
	b.WriteString("\n")

	mood := p.Mood()
	info := fmt.Sprintf("%s %s  •  %s %s  •  Level %d  •  Age %d",
		moodFace(mood), c.theme.moodStyle(mood).Render(string(mood)),
		string(p.AgeStage), string(p.Personality), p.Level, p.Age)
	b.WriteString(centerText(info, width))
	b.WriteString("\n")

	if anim := c.animations[p.ID]; anim != "" && anim != game.AnimIdle {
		b.WriteString(centerText(c.theme.Feedback.Render(animationFace(anim)), width))
	}
	b.WriteString("\n\n")

	b.WriteString(c.statLine("Happiness", p.Happiness))
	b.WriteString(c.statLine("Hunger   ", p.Hunger))
	b.WriteString(c.statLine("Energy   ", p.Energy))
	b.WriteString("\n")

	fed := fmt.Sprintf("Last fed: %s  •  Last played: %s",
		elapsedSince(p.LastFed), elapsedSince(p.LastPlayed))
	b.WriteString("  " + c.theme.Subtitle.Render(fed))
	b.WriteString("\n\n")

	for i, action := range sim.Actions() {
		style := c.theme.MenuItemNormal
		cursor := "  "
		if i == c.actionIdx {
			style = c.theme.MenuItemActive
			cursor = "> "
		}
		b.WriteString("  " + cursor + style.Render(actionLabels[action]))
		b.WriteString("\n")
	}

	if c.feedback != "" {
		b.WriteString("\n  " + c.theme.Feedback.Render(c.feedback))
		b.WriteString("\n")
	}

	b.WriteString("\n  " + c.theme.Help.Render("Left/Right: Switch puppy  |  Up/Down: Action  |  Enter: Do it  |  Esc: Back"))
	b.WriteString("\n")
	return b.String()
}

// statLine renders one labelled progress bar.
func (c CareModel) statLine(label string, value float64) string {
	return fmt.Sprintf("  %s %s %3.0f\n",
		c.theme.StatLabel.Render(label),
		c.bar.ViewAs(value/100),
		value,
	)
}
