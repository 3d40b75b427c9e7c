// Package drag implements a single-pointer drag-and-drop controller.
//
// The controller tracks one dragged element at a time, asks an Evaluator
// whether a release over a zone is a valid placement, and then applies one of
// the configured drop behaviors: Stay, Return, ReturnImmediately or Destroy.
// Rendering, pointer capture and layout belong to the Host the controller
// drives.
//
// # Event order
//
// The host delivers, per drag cycle:
//
//	BeginDrag → Drag* → [Drop] → EndDrag
//
// Drop is delivered only when the release landed on a zone. Without it the
// cycle counts as a failed drop. Calls made out of order return one of the
// Err* sentinels and change nothing.
//
// # Anchors
//
// The first BeginDrag of an element records its position as the element's
// anchor. Return and ReturnImmediately always restore to that anchor, no
// matter how many cycles followed.
//
// # Animation
//
// Return does not block. It registers a restore that Tick advances once per
// frame:
//
//	for c.Tick() {
//	    <-frame
//	}
package drag
