package server

import "github.com/labwc/labwc-core/view"

// HandleOutputDestroyed marks output unusable and migrates every view
// currently assigned to it onto the nearest surviving output. "Nearest"
// needs real output geometry the core's Output type doesn't carry beyond
// its usable box, so the first surviving output in s.Outputs is used as
// the simplest total-order fallback.
func (s *Server) HandleOutputDestroyed(output *view.Output) {
	output.MarkDestroyed()

	var target *view.Output
	for _, o := range s.Outputs {
		if o != output && o.Usable_() {
			target = o
			break
		}
	}
	if target == nil {
		return
	}

	for _, v := range s.Views {
		if v.Output == output.Name {
			v.SetOutput(target.Name)
		}
		if v.FullscreenOutput() == output.Name {
			v.SetFullscreen(true, target.Name)
		}
	}
}
