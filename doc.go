// Package sway animates small procedural 3D scenes for [Ebitengine].
//
// A scene is built once (meshes placed by rejection sampling, a fan assembled
// from primitives) and then animated by a [Driver] that advances a flat list
// of motion tracks exactly once per frame. Everything the driver does is a
// pure function of the previous state and a seeded random source, so a scene
// built from the same [Layout] replays the same motion frame for frame.
//
// # Quick start
//
//	field, err := sway.NewField(sway.DefaultLayout())
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene := sway.NewScene()
//	field.Attach(scene)
//	if err := sway.Run(scene, sway.RunConfig{Title: "boxes", Width: 960, Height: 540}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself and call [Scene.Update]
// and [Scene.Draw] directly. Forward the outside size from Layout to
// [Camera.Resize] so the projection follows the window.
//
// # Placement
//
// [SamplePosition] draws one point inside a [Shell]: a band of radii around
// the origin with an XZ exclusion rectangle cut out of it. The polar angle is
// drawn as acos(1-2u) so points do not bunch at the poles. [Populate] samples
// a whole population and gives each member a name-based [Placement.ID] that is
// stable across runs. A shell whose exclusion zone swallows it returns
// [ErrSamplingExhausted] after [Shell.MaxAttempts] candidates instead of
// looping forever.
//
// # Motion
//
// A [Track] is one accumulator bound to a node:
//
//   - [SpinTrack] adds a fixed rate every frame.
//   - [JitterTrack] adds an increment drawn from a [Range] every frame.
//   - [OscillateTrack] sweeps between -limit and +limit, reversing at the
//     bounds (see [AdvanceBounded]).
//   - [OrbitTrack] moves a node around the Y axis with a vertical bob.
//
// [Step] is the pure form: it returns the next [State] and never touches
// nodes. [Driver.Step] advances its tracks, writes the results into the
// target nodes and then calls every registered [Presenter]. [Scene.SetDriver]
// wires a driver into the scene's Update.
//
// # Scene graph
//
// Every visual element is a [Node], either a container or a mesh. Children
// inherit their parent's transform. Rotations are Euler angles applied in XYZ
// order. Geometry builders cover boxes, cylinders, capsules and extruded
// outlines built with [Path].
//
// # Rendering
//
// Meshes are projected with a perspective [Camera], back-face culled, shaded
// with one [AmbientLight] plus any number of [DirectionalLight] values
// (optionally toon banded), sorted far to near and drawn with
// [ebiten.Image.DrawTriangles] in batches.
//
// # Debugging
//
// [Scene.SetDebugMode] logs per-frame timings and face counts to stderr and
// turns on node tree checks. [LoadTestScript] drives pause, resume, advance,
// key and screenshot steps from JSON for automated visual checks.
//
// [Ebitengine]: https://ebitengine.org
package sway
