package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrIdadeMinima       = errors.New("cliente deve ter pelo menos 18 anos")
	ErrCPFJaCadastrado   = errors.New("CPF já cadastrado")
	ErrEmailJaCadastrado = errors.New("e-mail já cadastrado")
	ErrDuplicado         = errors.New("registro duplicado")
)

// NotFoundError indica que a entidade referenciada não existe.
type NotFoundError struct {
	Entidade string // "Cliente" ou "Endereço"
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s com ID %s não encontrado", e.Entidade, e.ID)
}

// Violacao par campo/mensagem de uma regra de validação violada.
type Violacao struct {
	Campo    string
	Mensagem string
}

// ValidationError agrupa todas as violações de um payload.
// As regras não fazem short-circuit: toda violação entra na lista.
type ValidationError struct {
	Violacoes []Violacao
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violacoes))
	for _, v := range e.Violacoes {
		msgs = append(msgs, v.Mensagem)
	}
	return strings.Join(msgs, "; ")
}
