package entity

import "time"

// Endereco representa um endereço postal de um cliente.
// A associação com o cliente é uma chave estrangeira (ClienteID), não um ponteiro vivo.
type Endereco struct {
	ID           string
	ClienteID    string
	Rua          string
	Numero       string
	Bairro       string
	Cidade       string
	Estado       string
	CEP          string
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
