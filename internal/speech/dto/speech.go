package dto

import "discursos-backend/internal/speech/domain"

// ShareResponse carries the canonical speech URL plus ready-made share
// intents for the supported social platforms.
type ShareResponse struct {
	URL      string `json:"url"`
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	Whatsapp string `json:"whatsapp"`
}

// SpeechDetailResponse is the /speeches/:id payload. The upstream exposes
// no speech detail endpoint, so Speech is null until it grows one.
type SpeechDetailResponse struct {
	Speech *domain.SpeechRecord `json:"speech"`
}
