package contratos

// Status is the lifecycle state of a contract. The values are the
// literals stored in the contratos.status column.
type Status string

const (
	AguardandoGeracao Status = "Aguardando Geração"
	AguardandoRevisao Status = "Aguardando Revisão"
	Enviado           Status = "Enviado"
	Ativo             Status = "Ativo"
	Cancelado         Status = "Cancelado"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{AguardandoGeracao, AguardandoRevisao, Enviado, Ativo, Cancelado}

var transitions = map[Status][]Status{
	AguardandoGeracao: {AguardandoRevisao, Cancelado},
	AguardandoRevisao: {Enviado, Cancelado},
	Enviado:           {Ativo, Cancelado},
	Ativo:             {Cancelado},
	Cancelado:         {},
}

// Valid reports whether s is one of the five lifecycle states.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether next follows s in the lifecycle graph.
// Updates do not enforce the graph; off-graph changes are only logged.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Editable reports whether non-status fields may change in this state.
func (s Status) Editable() bool {
	return s == AguardandoGeracao
}
