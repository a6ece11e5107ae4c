package classify

import "strings"

// The nine canonical session types used by the chamber. Order matters:
// classification walks this list and the first substring match wins.
const (
	SessaoDeliberativa    = "Sessão Deliberativa"
	SessaoNaoDeliberativa = "Sessão Não Deliberativa"
	SessaoSolene          = "Sessão Solene"
	ReuniaoDeliberativa   = "Reunião Deliberativa"
	ReuniaoDeDebate       = "Reunião de Debate"
	ReuniaoTecnica        = "Reunião Técnica"
	AudienciaPublica      = "Audiência Pública"
	ComissaoGeral         = "Comissão Geral"
	Seminario             = "Seminário"

	// Outro is returned for empty event-phase labels.
	Outro = "Outro"
)

var categories = []string{
	SessaoDeliberativa,
	SessaoNaoDeliberativa,
	SessaoSolene,
	ReuniaoDeliberativa,
	ReuniaoDeDebate,
	ReuniaoTecnica,
	AudienciaPublica,
	ComissaoGeral,
	Seminario,
}

// Categories returns the canonical session types in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Classify maps a raw event-phase label to a canonical session type.
// Upstream labels carry extra qualifying text ("Sessão Deliberativa
// Extraordinária (semipresencial)"), so matching is case-insensitive
// substring containment, not equality. Unrecognized labels pass through
// unchanged; an empty label classifies as Outro.
func Classify(rawLabel string) string {
	if rawLabel == "" {
		return Outro
	}

	lower := strings.ToLower(rawLabel)

	for _, category := range categories {
		if strings.Contains(lower, strings.ToLower(category)) {
			return category
		}
	}

	return rawLabel
}
