package tui

import "github.com/charadex/charadex/internal/api"

type charactersLoadedMsg struct {
	characters []api.Character
}

type fetchErrMsg struct {
	err error
}

// searchDebounceMsg fires 300ms after a keystroke; only the latest
// generation triggers a recompute.
type searchDebounceMsg struct {
	gen int
}

type toastShowMsg struct {
	id int
}

type toastExpireMsg struct {
	id int
}

// modalTickMsg advances the modal's opening/closing transition.
type modalTickMsg struct{}
