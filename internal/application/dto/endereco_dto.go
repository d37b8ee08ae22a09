package dto

import (
	"github.com/bigdata/clientes-api/internal/domain/entity"
	"github.com/bigdata/clientes-api/internal/domain/validation"
)

// EnderecoRequest body de endereço para criação e atualização.
type EnderecoRequest struct {
	Rua    string `json:"rua"`
	Numero string `json:"numero"`
	Bairro string `json:"bairro"`
	Cidade string `json:"cidade"`
	Estado string `json:"estado"`
	CEP    string `json:"cep"`
}

// Candidato converte o body para o candidato de validação.
func (r EnderecoRequest) Candidato() validation.EnderecoCandidato {
	return validation.EnderecoCandidato{
		Rua:    r.Rua,
		Numero: r.Numero,
		Bairro: r.Bairro,
		Cidade: r.Cidade,
		Estado: r.Estado,
		CEP:    r.CEP,
	}
}

// EnderecoResponse endereço em respostas, com a referência ao cliente dono.
type EnderecoResponse struct {
	ID        string `json:"id"`
	ClienteID string `json:"clienteId"`
	Rua       string `json:"rua"`
	Numero    string `json:"numero"`
	Bairro    string `json:"bairro"`
	Cidade    string `json:"cidade"`
	Estado    string `json:"estado"`
	CEP       string `json:"cep"`
}

// NewEnderecoResponse monta a resposta a partir da entidade.
func NewEnderecoResponse(e *entity.Endereco) *EnderecoResponse {
	return &EnderecoResponse{
		ID:        e.ID,
		ClienteID: e.ClienteID,
		Rua:       e.Rua,
		Numero:    e.Numero,
		Bairro:    e.Bairro,
		Cidade:    e.Cidade,
		Estado:    e.Estado,
		CEP:       e.CEP,
	}
}
