// Package ecs mirrors sway motion state into a [Donburi] world.
//
// [NewDonburiPresenter] returns a [sway.Presenter]. Register it on a driver
// and every step upserts one entity per track carrying a [TrackPose]
// component, then publishes a [FrameEvent]. ECS systems can query poses with
// [Pose] or subscribe to [FrameEventType]:
//
//	presenter := ecs.NewDonburiPresenter(world)
//	driver.AddPresenter(presenter)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
