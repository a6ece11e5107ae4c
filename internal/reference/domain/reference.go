package domain

// Party is one selectable party filter option.
type Party struct {
	Code string `json:"code"`
}

// State is one of the 27 first-level administrative divisions.
type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// FallbackParties is the static list of currently active parties, served
// when the upstream party listing is unavailable.
var FallbackParties = []Party{
	{Code: "AVANTE"},
	{Code: "CIDADANIA"},
	{Code: "DC"},
	{Code: "MDB"},
	{Code: "NOVO"},
	{Code: "PATRIOTA"},
	{Code: "PCdoB"},
	{Code: "PL"},
	{Code: "PODE"},
	{Code: "PP"},
	{Code: "PROS"},
	{Code: "PSB"},
	{Code: "PSD"},
	{Code: "PSDB"},
	{Code: "PSol"},
	{Code: "PT"},
	{Code: "PTB"},
	{Code: "PV"},
	{Code: "REPUBLICANOS"},
	{Code: "SOLIDARIEDADE"},
	{Code: "UNIÃO"},
}

// States lists every state plus the federal district.
var States = []State{
	{Code: "AC", Name: "Acre"},
	{Code: "AL", Name: "Alagoas"},
	{Code: "AP", Name: "Amapá"},
	{Code: "AM", Name: "Amazonas"},
	{Code: "BA", Name: "Bahia"},
	{Code: "CE", Name: "Ceará"},
	{Code: "DF", Name: "Distrito Federal"},
	{Code: "ES", Name: "Espírito Santo"},
	{Code: "GO", Name: "Goiás"},
	{Code: "MA", Name: "Maranhão"},
	{Code: "MT", Name: "Mato Grosso"},
	{Code: "MS", Name: "Mato Grosso do Sul"},
	{Code: "MG", Name: "Minas Gerais"},
	{Code: "PA", Name: "Pará"},
	{Code: "PB", Name: "Paraíba"},
	{Code: "PR", Name: "Paraná"},
	{Code: "PE", Name: "Pernambuco"},
	{Code: "PI", Name: "Piauí"},
	{Code: "RJ", Name: "Rio de Janeiro"},
	{Code: "RN", Name: "Rio Grande do Norte"},
	{Code: "RS", Name: "Rio Grande do Sul"},
	{Code: "RO", Name: "Rondônia"},
	{Code: "RR", Name: "Roraima"},
	{Code: "SC", Name: "Santa Catarina"},
	{Code: "SP", Name: "São Paulo"},
	{Code: "SE", Name: "Sergipe"},
	{Code: "TO", Name: "Tocantins"},
}
