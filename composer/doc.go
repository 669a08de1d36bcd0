// Package composer implements the editing session of a piano roll: the project
// being edited, the selection, the point and batch edits, and the transport
// that fires the notes while playing.
//
// The Model is driven by one goroutine, typically the UI loop, which calls
// Play().Advance once per frame. The model is split into views, e.g.
// Model.Play(), Model.Selection() and Model.Layers(), which are just type
// conversions of the same Model. Values the user can change are exposed as
// Bool, Int and Float, and user commands as Action, so that a UI can show
// whether they are enabled.
//
// Sound leaves the model only through an nbm.NoteTrigger. To keep a slow audio
// backend from stalling the frames, put a Broker in between and Run it in
// another goroutine.
package composer
