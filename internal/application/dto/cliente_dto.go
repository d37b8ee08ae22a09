package dto

import (
	"github.com/bigdata/clientes-api/internal/domain/entity"
	"github.com/bigdata/clientes-api/internal/domain/validation"
)

// ClienteRequest body de cliente para criação e atualização.
type ClienteRequest struct {
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	CPF            string `json:"cpf"`
	DataNascimento string `json:"dataNascimento"` // AAAA-MM-DD
	Telefone       string `json:"telefone,omitempty"`
}

// Candidato converte o body para o candidato de validação.
func (r ClienteRequest) Candidato() validation.ClienteCandidato {
	return validation.ClienteCandidato{
		Nome:           r.Nome,
		Email:          r.Email,
		CPF:            r.CPF,
		DataNascimento: r.DataNascimento,
		Telefone:       r.Telefone,
	}
}

// CriarClienteComEnderecoRequest body para POST /clientes (cliente + primeiro endereço).
type CriarClienteComEnderecoRequest struct {
	Cliente  ClienteRequest  `json:"cliente"`
	Endereco EnderecoRequest `json:"endereco"`
}

// ClienteResponse cliente em respostas, com seus endereços.
type ClienteResponse struct {
	ID             string             `json:"id"`
	Nome           string             `json:"nome"`
	Email          string             `json:"email"`
	CPF            string             `json:"cpf"`
	DataNascimento string             `json:"dataNascimento"`
	Telefone       string             `json:"telefone,omitempty"`
	Enderecos      []EnderecoResponse `json:"enderecos"`
}

// NewClienteResponse monta a resposta a partir da entidade.
func NewClienteResponse(c *entity.Cliente) *ClienteResponse {
	enderecos := make([]EnderecoResponse, 0, len(c.Enderecos))
	for i := range c.Enderecos {
		enderecos = append(enderecos, *NewEnderecoResponse(&c.Enderecos[i]))
	}
	return &ClienteResponse{
		ID:             c.ID,
		Nome:           c.Nome,
		Email:          c.Email,
		CPF:            c.CPF,
		DataNascimento: c.DataNascimento.Format(validation.FormatoData),
		Telefone:       c.Telefone,
		Enderecos:      enderecos,
	}
}
