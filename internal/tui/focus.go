package tui

// focusRing cycles keyboard focus through a fixed ordered set of targets,
// wrapping at both ends. It is the focus boundary of the detail modal:
// while the modal is open, focus never leaves the ring.
type focusRing struct {
	targets []string
	index   int
}

func newFocusRing(targets ...string) focusRing {
	return focusRing{targets: targets}
}

func (f *focusRing) Current() string {
	if len(f.targets) == 0 {
		return ""
	}
	return f.targets[f.index]
}

// Next moves focus forward, wrapping from the last target to the first.
func (f *focusRing) Next() string {
	if len(f.targets) == 0 {
		return ""
	}
	f.index = (f.index + 1) % len(f.targets)
	return f.targets[f.index]
}

// Prev moves focus backward, wrapping from the first target to the last.
func (f *focusRing) Prev() string {
	if len(f.targets) == 0 {
		return ""
	}
	f.index = (f.index - 1 + len(f.targets)) % len(f.targets)
	return f.targets[f.index]
}

// Focus moves focus to target if it is in the ring.
func (f *focusRing) Focus(target string) bool {
	for i, t := range f.targets {
		if t == target {
			f.index = i
			return true
		}
	}
	return false
}
