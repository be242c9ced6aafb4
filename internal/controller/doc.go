// Package controller connects user input to filtering and rendering.
//
// The flow is "criteria changed, recompute, render", synchronously:
//
//	ctl := controller.New(render.NewText(""))
//	if err := ctl.Load(ctx, loader); err != nil {
//	    // the error is already rendered
//	}
//	ctl.SetSearch("echo")
//	ctl.SetCategory("Rock")
//	ctl.Clear()
//
// Interactive front ends that load asynchronously call Ready or Fail with
// the load result instead of Load.
package controller
