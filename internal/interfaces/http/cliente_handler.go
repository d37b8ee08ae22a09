package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bigdata/clientes-api/internal/application/dto"
	"github.com/bigdata/clientes-api/internal/application/usecase"
)

// ClienteHandler trata as requisições HTTP de clientes.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler constrói o handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Criar POST /clientes — cria um cliente junto com o primeiro endereço.
func (h *ClienteHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarClienteComEnderecoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BODY_INVALIDO", Message: "corpo inválido"})
	}
	cliente, err := h.uc.CriarComEndereco(in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(cliente)
}

// Listar GET /clientes
func (h *ClienteHandler) Listar(c *fiber.Ctx) error {
	clientes, err := h.uc.Listar()
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(clientes)
}

// BuscarPorID GET /clientes/:id
func (h *ClienteHandler) BuscarPorID(c *fiber.Ctx) error {
	cliente, err := h.uc.BuscarPorID(c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(cliente)
}

// Atualizar PUT /clientes/:id — sobrescreve os dados cadastrais do cliente.
func (h *ClienteHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BODY_INVALIDO", Message: "corpo inválido"})
	}
	cliente, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(cliente)
}

// Deletar DELETE /clientes/:id — remove o cliente e, em cascata, seus endereços.
func (h *ClienteHandler) Deletar(c *fiber.Ctx) error {
	if err := h.uc.Deletar(c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
