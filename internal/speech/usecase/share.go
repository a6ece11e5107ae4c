package usecase

import (
	"net/url"

	"discursos-backend/internal/speech/dto"
)

// BuildShareLinks builds the canonical URL for a speech and the share-intent
// links for each platform, percent-encoding the canonical URL into the
// platforms' URL templates.
func BuildShareLinks(baseURL, speechID string) dto.ShareResponse {
	canonical := baseURL + "/discurso/" + speechID
	encoded := url.QueryEscape(canonical)

	return dto.ShareResponse{
		URL:      canonical,
		Twitter:  "https://twitter.com/intent/tweet?url=" + encoded,
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + encoded,
		Whatsapp: "https://wa.me/?text=" + encoded,
	}
}
