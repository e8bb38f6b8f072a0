package tui

type credentialSavedMsg struct {
	err error
}

type submitDoneMsg struct {
	shareURL string
	err      error
}

type loadDoneMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
