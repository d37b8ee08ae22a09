package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigdata/clientes-api/internal/application/dto"
	"github.com/bigdata/clientes-api/internal/application/usecase"
	"github.com/bigdata/clientes-api/internal/infrastructure/memory"
	apphttp "github.com/bigdata/clientes-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp constrói uma aplicação Fiber completa sobre o store em memória.
func buildTestApp() *fiber.App {
	store := memory.NewStore()
	clienteUC := usecase.NewClienteUseCase(store.Clientes(), store.Enderecos(), store.TxRunner())
	enderecoUC := usecase.NewEnderecoUseCase(store.Enderecos(), store.Clientes())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ClienteUC:  clienteUC,
		EnderecoUC: enderecoUC,
	})
	return app
}

func jsonRequest(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "corpo inesperado: %s", raw)
	return out
}

func clienteBody() dto.CriarClienteComEnderecoRequest {
	return dto.CriarClienteComEnderecoRequest{
		Cliente: dto.ClienteRequest{
			Nome:           "João Silva",
			Email:          "joao.silva@example.com",
			CPF:            "123.456.789-00",
			DataNascimento: "1990-01-01",
			Telefone:       "(21) 91234-5678",
		},
		Endereco: dto.EnderecoRequest{
			Rua:    "Rua A",
			Numero: "123",
			Bairro: "Centro",
			Cidade: "São Paulo",
			Estado: "SP",
			CEP:    "01000-000",
		},
	}
}

func criarCliente(t *testing.T, app *fiber.App) dto.ClienteResponse {
	t.Helper()
	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/clientes", clienteBody()))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return decode[dto.ClienteResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestPostClientes_Sucesso(t *testing.T) {
	app := buildTestApp()

	cliente := criarCliente(t, app)

	assert.NotEmpty(t, cliente.ID)
	require.Len(t, cliente.Enderecos, 1)
	assert.Equal(t, cliente.ID, cliente.Enderecos[0].ClienteID)
}

func TestPostClientes_MenorDeIdade(t *testing.T) {
	app := buildTestApp()

	body := clienteBody()
	body.Cliente.DataNascimento = "2015-06-01"

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/clientes", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	erro := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "IDADE_MINIMA", erro.Code)
}

func TestPostClientes_ValidacaoDevolveTodosOsCampos(t *testing.T) {
	app := buildTestApp()

	body := clienteBody()
	body.Cliente.Nome = ""
	body.Endereco.CEP = "01000000"

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/clientes", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	erro := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDACAO", erro.Code)
	assert.Len(t, erro.Campos, 3)
}

func TestPostClientes_CPFDuplicado(t *testing.T) {
	app := buildTestApp()
	criarCliente(t, app)

	body := clienteBody()
	body.Cliente.Email = "outro@example.com"

	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/clientes", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	erro := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICADO", erro.Code)
}

func TestGetClientes_Lista(t *testing.T) {
	app := buildTestApp()
	criarCliente(t, app)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/clientes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	clientes := decode[[]dto.ClienteResponse](t, resp)
	require.Len(t, clientes, 1)
	assert.Len(t, clientes[0].Enderecos, 1)
}

func TestGetClientePorID_NaoEncontrado(t *testing.T) {
	app := buildTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/clientes/inexistente", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	erro := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NAO_ENCONTRADO", erro.Code)
}

func TestPutCliente_Sucesso(t *testing.T) {
	app := buildTestApp()
	criado := criarCliente(t, app)

	body := clienteBody().Cliente
	body.Nome = "João da Silva"

	resp, err := app.Test(jsonRequest(fiber.MethodPut, "/clientes/"+criado.ID, body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	cliente := decode[dto.ClienteResponse](t, resp)
	assert.Equal(t, "João da Silva", cliente.Nome)
	assert.Len(t, cliente.Enderecos, 1)
}

func TestPutCliente_NaoEncontrado(t *testing.T) {
	app := buildTestApp()

	resp, err := app.Test(jsonRequest(fiber.MethodPut, "/clientes/inexistente", clienteBody().Cliente))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteCliente_DepoisNaoEncontrado(t *testing.T) {
	app := buildTestApp()
	criado := criarCliente(t, app)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, "/clientes/"+criado.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// deletar de novo não é silenciosamente idempotente
	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/clientes/"+criado.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Endereços
// ──────────────────────────────────────────────────────────────────────────────

func TestPostEndereco_Sucesso(t *testing.T) {
	app := buildTestApp()
	criado := criarCliente(t, app)

	body := dto.EnderecoRequest{
		Rua: "Rua B", Numero: "456", Bairro: "Lapa", Cidade: "Rio de Janeiro", Estado: "RJ", CEP: "20000-000",
	}
	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/enderecos/cliente/"+criado.ID, body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	endereco := decode[dto.EnderecoResponse](t, resp)
	assert.Equal(t, criado.ID, endereco.ClienteID)
}

func TestPostEndereco_ClienteInexistente(t *testing.T) {
	app := buildTestApp()

	body := dto.EnderecoRequest{
		Rua: "Rua B", Numero: "456", Bairro: "Lapa", Cidade: "Rio de Janeiro", Estado: "RJ", CEP: "20000-000",
	}
	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/enderecos/cliente/inexistente", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetEnderecosPorCliente(t *testing.T) {
	app := buildTestApp()
	criado := criarCliente(t, app)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/enderecos/cliente/"+criado.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	enderecos := decode[[]dto.EnderecoResponse](t, resp)
	assert.Len(t, enderecos, 1)
}

func TestGetEnderecos_ListaTodos(t *testing.T) {
	app := buildTestApp()
	criarCliente(t, app)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/enderecos", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	enderecos := decode[[]dto.EnderecoResponse](t, resp)
	assert.Len(t, enderecos, 1)
}

func TestPutEndereco_Validacao(t *testing.T) {
	app := buildTestApp()
	criado := criarCliente(t, app)

	body := dto.EnderecoRequest{
		Rua: "Rua B", Numero: "456", Bairro: "Lapa", Cidade: "Rio de Janeiro", Estado: "Rio de Janeiro", CEP: "20000-000",
	}
	resp, err := app.Test(jsonRequest(fiber.MethodPut, "/enderecos/"+criado.Enderecos[0].ID, body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	erro := decode[dto.ErrorResponse](t, resp)
	require.Len(t, erro.Campos, 1)
	assert.Equal(t, "Estado deve ter 2 caracteres", erro.Campos[0].Mensagem)
}

func TestDeleteEndereco_DepoisNaoEncontrado(t *testing.T) {
	app := buildTestApp()
	criado := criarCliente(t, app)

	path := fmt.Sprintf("/enderecos/%s", criado.Enderecos[0].ID)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, path, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, path, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
