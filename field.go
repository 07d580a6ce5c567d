package sway

import "fmt"

// Field is a built box-field scene: a spinning central box, a population of
// small jittering boxes placed around it, and an orbiting rig node.
type Field struct {
	Root       *Node
	Center     *Node
	Members    []*Node
	Placements []Placement
	// Rig rides the layout's orbit; anchor a light or the camera to it.
	Rig    *Node
	Driver *Driver
}

// NewField builds the nodes and tracks for l. Placement uses a source seeded
// with l.Seed and the driver's jitter a source seeded with l.Seed+1, so a
// given layout always produces the same scene and the same motion.
func NewField(l Layout) (*Field, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("build field: %w", err)
	}
	placements, err := Populate(l.Population, l.Count, l.Shell, NewSource(l.Seed))
	if err != nil {
		return nil, fmt.Errorf("build field: %w", err)
	}

	f := &Field{
		Root:       NewContainer(l.Population),
		Placements: placements,
		Members:    make([]*Node, 0, len(placements)),
	}

	c := l.CenterSize
	f.Center = NewMesh("center", NewBoxGeometry(c, c, c), Material{Color: ColorHex(0x1137bf), Toon: true})
	f.Root.AddChild(f.Center)

	tracks := make([]Track, 0, 2*len(placements)+3)
	tracks = append(tracks,
		SpinTrack("center.x", f.Center, AxisX, l.CenterSpin),
		SpinTrack("center.y", f.Center, AxisY, l.CenterSpin),
	)

	b := l.BoxSize
	boxGeo := NewBoxGeometry(b, b, b)
	memberMat := Material{Color: ColorHex(0xf2f2f2)}
	for _, p := range placements {
		name := p.ID.String()
		m := NewMesh(name, boxGeo, memberMat)
		m.SetPosition(p.Position)
		m.UserData = p.ID
		f.Root.AddChild(m)
		f.Members = append(f.Members, m)
		tracks = append(tracks,
			JitterTrack(name+".x", m, AxisX, l.MemberSpin),
			JitterTrack(name+".y", m, AxisY, l.MemberSpin),
		)
	}

	f.Rig = NewContainer("rig")
	f.Rig.SetPosition(l.Rig.Position())
	f.Root.AddChild(f.Rig)
	tracks = append(tracks, OrbitTrack("rig", f.Rig, l.Rig))

	f.Driver, err = NewDriver(NewSource(l.Seed+1), tracks...)
	if err != nil {
		return nil, fmt.Errorf("build field: %w", err)
	}
	return f, nil
}

// Attach adds the field to scene, hands it the field's driver and lights it
// with a directional light riding the rig.
func (f *Field) Attach(scene *Scene) *DirectionalLight {
	scene.Root().AddChild(f.Root)
	scene.SetDriver(f.Driver)
	light := &DirectionalLight{Color: ColorWhite, Intensity: 1, Anchor: f.Rig}
	scene.AddLight(light)
	return light
}
