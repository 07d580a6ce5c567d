package sway

import "github.com/hajimehoshi/ebiten/v2"

// InjectKey queues a synthetic key press. Queued presses are consumed one per
// frame at the start of Update and reach the same handlers as real presses;
// real keyboard input is ignored on frames that consume one.
func (s *Scene) InjectKey(key ebiten.Key) {
	s.injectQueue = append(s.injectQueue, key)
}

// InjectKeys queues several presses, one per frame, in order.
func (s *Scene) InjectKeys(keys ...ebiten.Key) {
	s.injectQueue = append(s.injectQueue, keys...)
}

// processInjectedInput pops one queued press and fires its handlers.
// Returns true if a press was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	key := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.fireKey(key)
	return true
}
