package sway

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type keyHandler struct {
	id  uint32
	key ebiten.Key
	fn  func()
}

// CallbackHandle allows removing a registered key binding.
type CallbackHandle struct {
	id    uint32
	scene *Scene
}

// Remove unregisters the binding. Removing an already-removed binding is a no-op.
func (h CallbackHandle) Remove() {
	if h.scene == nil {
		return
	}
	h.scene.keyHandlers = removeKeyHandler(h.scene.keyHandlers, h.id)
}

func removeKeyHandler(s []keyHandler, id uint32) []keyHandler {
	for i := range s {
		if s[i].id == id {
			return slices.Delete(s, i, i+1)
		}
	}
	return s
}

// OnKey registers fn to run on the frame key is pressed. Handlers run at the
// start of Update, before the driver steps, in registration order.
func (s *Scene) OnKey(key ebiten.Key, fn func()) CallbackHandle {
	if fn == nil {
		panic("sway: nil key handler")
	}
	s.nextHandlerID++
	s.keyHandlers = append(s.keyHandlers, keyHandler{id: s.nextHandlerID, key: key, fn: fn})
	return CallbackHandle{id: s.nextHandlerID, scene: s}
}

// BindDefaultControls binds the viewer keys:
//
//	Space   pause or resume the driver
//	Period  step a paused driver by one frame
//	P       queue a screenshot labeled "manual"
func (s *Scene) BindDefaultControls() {
	s.OnKey(ebiten.KeySpace, func() {
		if s.driver == nil {
			return
		}
		if s.driver.Paused() {
			s.driver.Resume()
		} else {
			s.driver.Pause()
		}
	})
	s.OnKey(ebiten.KeyPeriod, func() {
		if s.driver != nil && s.driver.Paused() {
			s.advanceDriver(1)
		}
	})
	s.OnKey(ebiten.KeyP, func() { s.Screenshot("manual") })
}

// advanceDriver steps the driver n times regardless of its paused flag and
// restores the flag afterwards.
func (s *Scene) advanceDriver(n int) {
	if s.driver == nil {
		return
	}
	paused := s.driver.Paused()
	s.driver.Resume()
	for i := 0; i < n; i++ {
		s.driver.Step()
	}
	if paused {
		s.driver.Pause()
	}
}

// processInput fires handlers for injected presses, or for keys pressed this
// tick when the inject queue is empty.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if len(s.keyHandlers) == 0 {
		return
	}
	s.dispatchKeys(inpututil.IsKeyJustPressed)
}

func (s *Scene) fireKey(key ebiten.Key) {
	s.dispatchKeys(func(k ebiten.Key) bool { return k == key })
}

// dispatchKeys runs the handlers whose key is pressed. It iterates a copy so
// handlers may add or remove bindings; a binding removed earlier in the same
// dispatch does not fire.
func (s *Scene) dispatchKeys(pressed func(ebiten.Key) bool) {
	for _, h := range slices.Clone(s.keyHandlers) {
		if !pressed(h.key) || !s.hasKeyHandler(h.id) {
			continue
		}
		h.fn()
	}
}

func (s *Scene) hasKeyHandler(id uint32) bool {
	return slices.ContainsFunc(s.keyHandlers, func(h keyHandler) bool { return h.id == id })
}
