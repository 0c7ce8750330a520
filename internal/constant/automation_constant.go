package constant

// Event kinds accepted by the external automation endpoint.
const (
	EventChatInteraction = "chat_interaction"
	EventMoodLogged      = "mood_logged"
	EventJournalEntry    = "journal_entry"
	EventGoalAction      = "goal_action"
	EventSessionCreated  = "session_created"

	// AutomationSource identifies this backend in every outbound envelope.
	AutomationSource = "mindshift-app"
)

// KnownEventKinds is used to validate relayed events from the client.
var KnownEventKinds = map[string]bool{
	EventChatInteraction: true,
	EventMoodLogged:      true,
	EventJournalEntry:    true,
	EventGoalAction:      true,
	EventSessionCreated:  true,
}
