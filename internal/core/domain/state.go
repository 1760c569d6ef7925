package domain

// State selects which campaign construction step runs next. Exactly one state
// is active for a session at a time.
type State string

const (
	StateBudgeting                 State = "budgeting"
	StateCampaignSetup             State = "campaign_setup"
	StateTargetingLocationLanguage State = "targeting_location_language"
	StateAudienceTargeting         State = "audience_targeting"
	StateSchedulingDevices         State = "scheduling_devices"
	StateCreativeSetup             State = "creative_setup"
	StateTerminal                  State = "terminal"
)

// States lists every state in the order a session can visit them.
var States = []State{
	StateBudgeting,
	StateCampaignSetup,
	StateTargetingLocationLanguage,
	StateAudienceTargeting,
	StateSchedulingDevices,
	StateCreativeSetup,
	StateTerminal,
}

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	for _, v := range States {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s is the final, idempotent state.
func (s State) IsTerminal() bool { return s == StateTerminal }

func (s State) String() string { return string(s) }
