package notification

// ShareResult reports which channels were attempted and which delivered.
type ShareResult struct {
	EmailAttempted bool
	EmailSent      bool
	Recipients     int
	SlackAttempted bool
	SlackSent      bool
}
