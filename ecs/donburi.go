package ecs

import (
	"github.com/phanxgames/sway"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TrackPose is the derived value of one track at the presented frame.
type TrackPose struct {
	Name  string
	Kind  sway.TrackKind
	Frame uint64
	// Angle is the rotation accumulator, or the orbit angle for orbit tracks.
	Angle float64
	// Position is only meaningful for orbit tracks.
	Position sway.Vec3
}

// FrameEvent is published once per presented step.
type FrameEvent struct {
	Frame  uint64
	Tracks int
}

// Pose is the component holding a track's TrackPose.
var Pose = donburi.NewComponentType[TrackPose]()

// FrameEventType is the Donburi event type for presented frames.
// Events are queued; call ProcessEvents from your systems to deliver them.
var FrameEventType = events.NewEventType[FrameEvent]()

type donburiPresenter struct {
	world    donburi.World
	entities map[string]donburi.Entity
}

// NewDonburiPresenter creates a Presenter backed by a Donburi world. Entities
// are created on first sight of a track name and reused afterwards; an entity
// removed from the world is recreated on the next frame.
func NewDonburiPresenter(world donburi.World) sway.Presenter {
	return &donburiPresenter{world: world, entities: make(map[string]donburi.Entity)}
}

func (p *donburiPresenter) Present(st sway.State) {
	for i := range st.Tracks {
		t := &st.Tracks[i]
		e, ok := p.entities[t.Name]
		if !ok || !p.world.Valid(e) {
			e = p.world.Create(Pose)
			p.entities[t.Name] = e
		}
		Pose.SetValue(p.world.Entry(e), poseOf(t, st.Frame))
	}
	FrameEventType.Publish(p.world, FrameEvent{Frame: st.Frame, Tracks: len(st.Tracks)})
}

func poseOf(t *sway.Track, frame uint64) TrackPose {
	pose := TrackPose{Name: t.Name, Kind: t.Kind, Frame: frame, Angle: t.Angle}
	if t.Kind == sway.TrackOrbit {
		pose.Angle = t.Orbit.Angle
		pose.Position = t.Orbit.Position()
	}
	return pose
}
