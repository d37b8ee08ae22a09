package entity

import "time"

// Cliente representa um cliente cadastrado com seus endereços.
type Cliente struct {
	ID             string
	Nome           string
	Email          string
	CPF            string
	DataNascimento time.Time
	Telefone       string
	Enderecos      []Endereco
	CriadoEm       time.Time
	AtualizadoEm   time.Time
}

// Idade devolve a idade em anos completos na data de referência.
func (c *Cliente) Idade(ref time.Time) int {
	anos := ref.Year() - c.DataNascimento.Year()
	aniversario := time.Date(ref.Year(), c.DataNascimento.Month(), c.DataNascimento.Day(), 0, 0, 0, 0, time.UTC)
	refDia := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	if refDia.Before(aniversario) {
		anos--
	}
	return anos
}
