package camara

// Types mirroring the payloads of dadosabertos.camara.leg.br/api/v2.
// Every endpoint wraps its payload in a "dados" member.

// Deputy is one entry of the /deputados collection.
type Deputy struct {
	ID           int    `json:"id"`
	Nome         string `json:"nome"`
	SiglaPartido string `json:"siglaPartido"`
	SiglaUf      string `json:"siglaUf"`
	URLFoto      string `json:"urlFoto"`
}

// DeputyProfile is the /deputados/{id} payload. Only the nested current
// status carries the fields we use.
type DeputyProfile struct {
	ID           int          `json:"id"`
	UltimoStatus DeputyStatus `json:"ultimoStatus"`
}

type DeputyStatus struct {
	NomeEleitoral string `json:"nomeEleitoral"`
	SiglaPartido  string `json:"siglaPartido"`
	SiglaUf       string `json:"siglaUf"`
	URLFoto       string `json:"urlFoto"`
}

// Speech is one entry of the /deputados/{id}/discursos collection.
type Speech struct {
	ID             string     `json:"id"`
	DataHoraInicio string     `json:"dataHoraInicio"`
	Transcricao    string     `json:"transcricao"`
	Sumario        string     `json:"sumario"`
	FaseEvento     EventPhase `json:"faseEvento"`
}

type EventPhase struct {
	Titulo string `json:"titulo"`
}

// Party is one entry of the /partidos collection.
type Party struct {
	Sigla  string      `json:"sigla"`
	Status PartyStatus `json:"status"`
}

type PartyStatus struct {
	Situacao string `json:"situacao"`
}
