package dto

type VoiceProfileResponse struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

type SetVoicePreferenceRequest struct {
	VoiceName string `json:"voice_name" validate:"required"`
}

type VoicePreferenceResponse struct {
	VoiceName string `json:"voice_name"`
	Gender    string `json:"gender"`
}

type SpeechStateResponse struct {
	Speaking bool `json:"speaking"`
}
