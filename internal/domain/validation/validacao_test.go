package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bigdata/clientes-api/internal/domain"
	"github.com/bigdata/clientes-api/internal/domain/validation"
)

func clienteValido() validation.ClienteCandidato {
	return validation.ClienteCandidato{
		Nome:           "João Silva",
		Email:          "joao.silva@example.com",
		CPF:            "123.456.789-00",
		DataNascimento: "1990-01-01",
		Telefone:       "(21) 91234-5678",
	}
}

func enderecoValido() validation.EnderecoCandidato {
	return validation.EnderecoCandidato{
		Rua:    "Rua A",
		Numero: "123",
		Bairro: "Centro",
		Cidade: "São Paulo",
		Estado: "SP",
		CEP:    "12345-678",
	}
}

func mensagens(violacoes []domain.Violacao) []string {
	out := make([]string, 0, len(violacoes))
	for _, v := range violacoes {
		out = append(out, v.Mensagem)
	}
	return out
}

// ── Cliente ───────────────────────────────────────────────────────────────────

func TestValidarCliente_DadosValidos(t *testing.T) {
	assert.Empty(t, validation.ValidarCliente(clienteValido()))
}

func TestValidarCliente_NomeVazioAcumulaDuasViolacoes(t *testing.T) {
	c := clienteValido()
	c.Nome = ""

	violacoes := validation.ValidarCliente(c)

	assert.Len(t, violacoes, 2)
	assert.Contains(t, mensagens(violacoes), "Nome é obrigatório")
	assert.Contains(t, mensagens(violacoes), "Nome deve ter entre 3 e 100 caracteres")
}

func TestValidarCliente_NomeMuitoCurto(t *testing.T) {
	c := clienteValido()
	c.Nome = "Jo"

	violacoes := validation.ValidarCliente(c)

	assert.Len(t, violacoes, 1)
	assert.Equal(t, "Nome deve ter entre 3 e 100 caracteres", violacoes[0].Mensagem)
}

func TestValidarCliente_EmailInvalido(t *testing.T) {
	c := clienteValido()
	c.Email = "nao-e-email"

	violacoes := validation.ValidarCliente(c)

	assert.Len(t, violacoes, 1)
	assert.Equal(t, "E-mail deve ser válido", violacoes[0].Mensagem)
}

func TestValidarCliente_EmailVazioSoExigeObrigatoriedade(t *testing.T) {
	c := clienteValido()
	c.Email = ""

	violacoes := validation.ValidarCliente(c)

	assert.Len(t, violacoes, 1)
	assert.Equal(t, "E-mail é obrigatório", violacoes[0].Mensagem)
}

func TestValidarCliente_CPFSemPontuacao(t *testing.T) {
	c := clienteValido()
	c.CPF = "12345678900"

	violacoes := validation.ValidarCliente(c)

	assert.Len(t, violacoes, 1)
	assert.Equal(t, "CPF deve seguir o formato XXX.XXX.XXX-XX", violacoes[0].Mensagem)
}

func TestValidarCliente_CPFComPontuacao(t *testing.T) {
	c := clienteValido()
	c.CPF = "123.456.789-00"

	assert.Empty(t, validation.ValidarCliente(c))
}

func TestValidarCliente_TelefoneQuatroOuCincoDigitos(t *testing.T) {
	c := clienteValido()

	c.Telefone = "(11) 1234-5678"
	assert.Empty(t, validation.ValidarCliente(c))

	c.Telefone = "(11) 91234-5678"
	assert.Empty(t, validation.ValidarCliente(c))

	c.Telefone = "11912345678"
	violacoes := validation.ValidarCliente(c)
	assert.Len(t, violacoes, 1)
	assert.Equal(t, "Telefone deve seguir o formato (XX) XXXXX-XXXX", violacoes[0].Mensagem)
}

func TestValidarCliente_TelefoneOpcional(t *testing.T) {
	c := clienteValido()
	c.Telefone = ""

	assert.Empty(t, validation.ValidarCliente(c))
}

func TestValidarCliente_DataNascimentoFutura(t *testing.T) {
	c := clienteValido()
	c.DataNascimento = time.Now().AddDate(1, 0, 0).Format(validation.FormatoData)

	violacoes := validation.ValidarCliente(c)

	assert.Len(t, violacoes, 1)
	assert.Equal(t, "Data de nascimento deve ser uma data passada", violacoes[0].Mensagem)
}

func TestValidarCliente_DataNascimentoMalformada(t *testing.T) {
	c := clienteValido()
	c.DataNascimento = "01/01/1990"

	violacoes := validation.ValidarCliente(c)

	assert.Len(t, violacoes, 1)
	assert.Equal(t, "Data de nascimento deve seguir o formato AAAA-MM-DD", violacoes[0].Mensagem)
}

func TestValidarCliente_DataNascimentoVazia(t *testing.T) {
	c := clienteValido()
	c.DataNascimento = ""

	violacoes := validation.ValidarCliente(c)

	assert.Len(t, violacoes, 1)
	assert.Equal(t, "Data de nascimento é obrigatória", violacoes[0].Mensagem)
}

// ── Endereço ──────────────────────────────────────────────────────────────────

func TestValidarEndereco_DadosValidos(t *testing.T) {
	assert.Empty(t, validation.ValidarEndereco(enderecoValido()))
}

func TestValidarEndereco_RuaVaziaAcumulaDuasViolacoes(t *testing.T) {
	e := enderecoValido()
	e.Rua = ""

	violacoes := validation.ValidarEndereco(e)

	assert.Len(t, violacoes, 2)
	assert.Contains(t, mensagens(violacoes), "Rua é obrigatória")
	assert.Contains(t, mensagens(violacoes), "Rua deve ter entre 3 e 255 caracteres")
}

func TestValidarEndereco_NumeroSoExigePresenca(t *testing.T) {
	e := enderecoValido()
	e.Numero = ""

	violacoes := validation.ValidarEndereco(e)

	assert.Len(t, violacoes, 1)
	assert.Equal(t, "Número é obrigatório", violacoes[0].Mensagem)

	// qualquer valor não vazio passa; não existe regra de formato para número
	e.Numero = "s/n"
	assert.Empty(t, validation.ValidarEndereco(e))
}

func TestValidarEndereco_BairroMuitoCurto(t *testing.T) {
	e := enderecoValido()
	e.Bairro = "A"

	violacoes := validation.ValidarEndereco(e)

	assert.Len(t, violacoes, 1)
	assert.Equal(t, "Bairro deve ter entre 3 e 100 caracteres", violacoes[0].Mensagem)
}

func TestValidarEndereco_CidadeMuitoCurta(t *testing.T) {
	e := enderecoValido()
	e.Cidade = "A"

	violacoes := validation.ValidarEndereco(e)

	assert.Len(t, violacoes, 1)
	assert.Equal(t, "Cidade deve ter entre 2 e 100 caracteres", violacoes[0].Mensagem)
}

func TestValidarEndereco_EstadoComMaisDeDoisCaracteres(t *testing.T) {
	e := enderecoValido()
	e.Estado = "Sao Paulo"

	violacoes := validation.ValidarEndereco(e)

	assert.Len(t, violacoes, 1)
	assert.Equal(t, "Estado deve ter 2 caracteres", violacoes[0].Mensagem)
}

func TestValidarEndereco_CEPSemTraco(t *testing.T) {
	e := enderecoValido()
	e.CEP = "12345678"

	violacoes := validation.ValidarEndereco(e)

	assert.Len(t, violacoes, 1)
	assert.Equal(t, "CEP deve seguir o formato XXXXX-XXX", violacoes[0].Mensagem)
}

func TestValidarEndereco_VariasViolacoesJuntas(t *testing.T) {
	violacoes := validation.ValidarEndereco(validation.EnderecoCandidato{
		Rua:    "",
		Numero: "",
		Bairro: "A",
		Cidade: "A",
		Estado: "Sao Paulo",
		CEP:    "12345678",
	})

	// rua (2) + numero (1) + bairro (1) + cidade (1) + estado (1) + cep (1)
	assert.Len(t, violacoes, 7)
}
