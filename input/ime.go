package input

// Keyboard is the subset of keyboard state the IME forwarding decision
// needs: whether it's a virtual (software/IME-created) device and, if so,
// which client created it.
type Keyboard struct {
	Virtual bool
	ClientID uint32
}

// ShouldForwardToIMEGrab decides whether a key/modifier event from kb
// should be forwarded to an active input-method keyboard grab: physical
// keyboards always forward; a virtual keyboard only forwards if it was
// not created by the IME client itself, which would otherwise loop the
// key straight back into the grab that produced it.
func ShouldForwardToIMEGrab(kb Keyboard, imeClientID uint32, imeGrabActive bool) bool {
	if !imeGrabActive {
		return false
	}
	if !kb.Virtual {
		return true
	}
	return kb.ClientID != imeClientID
}
