package pubsub

// Topics published on the in-process bus. Subscribers (audit logging today,
// a telemetry sink tomorrow) attach without the publishers knowing about them.
const (
	TopicSessionSignedIn  = "session.signed_in"
	TopicSessionSignedOut = "session.signed_out"
	TopicProfileUpdated   = "session.profile_updated"
	TopicPreferencesSaved = "preferences.saved"
)

// TopicInfo describes one bus topic for tooling.
type TopicInfo struct {
	Name        string
	Description string
}

// Topics lists every topic published on the bus.
func Topics() []TopicInfo {
	return []TopicInfo{
		{TopicSessionSignedIn, "A user signed in or registered"},
		{TopicSessionSignedOut, "A user signed out"},
		{TopicProfileUpdated, "A user's account profile changed"},
		{TopicPreferencesSaved, "A preference record was saved"},
	}
}
