package model

// OnboardingStep is one entry of the first-time-user walkthrough
type OnboardingStep struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// OnboardingState is the first-time-user flow state; terminal once Completed
type OnboardingState struct {
	PlayerID           int              `json:"player_id"`
	Completed          bool             `json:"completed"`
	Steps              []OnboardingStep `json:"steps"`
	StarterSeedCharges int              `json:"starter_seed_charges"`
	CurrentNode        *QuestNode       `json:"current_node,omitempty"`
}
