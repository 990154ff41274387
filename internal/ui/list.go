package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/podx/internal/models"
)

var (
	_ list.Item = styleItem{}
	_ list.Item = planItem{}
)

// styleItem wraps [models.Style] to implement [list.Item].
type styleItem struct {
	style models.Style
	desc  string
}

func (i styleItem) FilterValue() string { return string(i.style) }
func (i styleItem) Title() string       { return string(i.style) }
func (i styleItem) Description() string { return i.desc }

// planItem wraps [models.Plan] to implement [list.Item].
type planItem struct {
	plan models.Plan
	desc string
}

func (i planItem) FilterValue() string { return string(i.plan) }
func (i planItem) Title() string       { return string(i.plan) }
func (i planItem) Description() string { return i.desc }

func styleItems() []list.Item {
	return []list.Item{
		styleItem{models.StyleCasual, "Relaxed, conversational hosts"},
		styleItem{models.StyleProfessional, "Polished delivery that stays on point"},
		styleItem{models.StyleEducational, "Structured walkthrough of the material"},
		styleItem{models.StyleEntertaining, "High energy with comedic timing"},
	}
}

func planItems() []list.Item {
	return []list.Item{
		planItem{models.PlanStingy, "Basic voices, quick turnaround"},
		planItem{models.PlanSigma, "Premium voices, richer production"},
	}
}

// newPickerList builds a single-choice list with the chrome stripped down to
// the items themselves.
func newPickerList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 60, pickerHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}
