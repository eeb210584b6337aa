package main

import (
	"github.com/andersonjoseph/primer/internal/components/bindinglist"
	"github.com/andersonjoseph/primer/internal/components/steplist"
	"github.com/andersonjoseph/primer/internal/lesson"
)

type sidebar struct {
	bindings bindinglist.Model
	steps    steplist.Model
}

func newSidebar(steps []lesson.Step) sidebar {
	var bindings []lesson.Binding
	if len(steps) > 0 {
		bindings = steps[0].Bindings
	}

	return sidebar{
		bindings: bindinglist.New(windowBindings, "Bindings", bindings),
		steps:    steplist.New(windowSteps, steps),
	}
}

func (s *sidebar) calcSize(w, h int) (int, int) {
	w = w / 3
	if w >= 40 {
		w = 40
	} else if w <= 20 {
		w = 20
	}

	h = h / 4
	if h >= 12 {
		h = 12
	} else if h <= 3 {
		h = 3
	}

	return w, h
}
