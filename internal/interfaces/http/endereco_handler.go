package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bigdata/clientes-api/internal/application/dto"
	"github.com/bigdata/clientes-api/internal/application/usecase"
)

// EnderecoHandler trata as requisições HTTP de endereços.
type EnderecoHandler struct {
	uc *usecase.EnderecoUseCase
}

// NewEnderecoHandler constrói o handler.
func NewEnderecoHandler(uc *usecase.EnderecoUseCase) *EnderecoHandler {
	return &EnderecoHandler{uc: uc}
}

// Listar GET /enderecos
func (h *EnderecoHandler) Listar(c *fiber.Ctx) error {
	enderecos, err := h.uc.Listar()
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(enderecos)
}

// ListarPorCliente GET /enderecos/cliente/:clienteId
func (h *EnderecoHandler) ListarPorCliente(c *fiber.Ctx) error {
	enderecos, err := h.uc.ListarPorCliente(c.Params("clienteId"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(enderecos)
}

// AdicionarAoCliente POST /enderecos/cliente/:clienteId — novo endereço para um cliente existente.
func (h *EnderecoHandler) AdicionarAoCliente(c *fiber.Ctx) error {
	var in dto.EnderecoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BODY_INVALIDO", Message: "corpo inválido"})
	}
	endereco, err := h.uc.AdicionarAoCliente(c.Params("clienteId"), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(endereco)
}

// Atualizar PUT /enderecos/:id — sobrescreve os dados do endereço, sem mexer no cliente dono.
func (h *EnderecoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.EnderecoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BODY_INVALIDO", Message: "corpo inválido"})
	}
	endereco, err := h.uc.Atualizar(c.Params("id"), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(endereco)
}

// Deletar DELETE /enderecos/:id
func (h *EnderecoHandler) Deletar(c *fiber.Ctx) error {
	if err := h.uc.Deletar(c.Params("id")); err != nil {
		return respostaErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
