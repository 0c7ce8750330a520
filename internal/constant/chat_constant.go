package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"

	SessionModeReframe = "reframe"
	SessionModeJournal = "journal"

	ReframePlaceholderTitle = "New Chat"
	JournalPlaceholderTitle = "Journal Entry"

	// Session titles derived from the first user message are cut here.
	SessionTitleMaxLen = 50
)

// JournalOpeningPrompts seeds a fresh journal session with a first assistant
// message, picked uniformly at random.
var JournalOpeningPrompts = []string{
	"What's on your mind today?",
	"How are you feeling right now?",
	"What happened today that you'd like to put into words?",
	"Is there something you've been carrying around lately?",
	"Take your time. What would you like to write about?",
}

// PlaceholderTitleFor returns the default title for a session mode.
func PlaceholderTitleFor(mode string) string {
	if mode == SessionModeJournal {
		return JournalPlaceholderTitle
	}
	return ReframePlaceholderTitle
}
