package questions

// refreshedMsg is sent when a fetch-and-populate attempt finishes.
type refreshedMsg struct {
	Err error
}

// answerSavedMsg confirms the answer history write completed.
type answerSavedMsg struct {
	Err error
}
