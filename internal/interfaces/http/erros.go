package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bigdata/clientes-api/internal/application/dto"
	"github.com/bigdata/clientes-api/internal/domain"
)

// respostaErro é a tabela única de tradução erro de domínio -> status HTTP.
// Os usecases propagam os erros sem alterá-los; só aqui vira status code.
func respostaErro(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		campos := make([]dto.CampoErro, 0, len(ve.Violacoes))
		for _, v := range ve.Violacoes {
			campos = append(campos, dto.CampoErro{Campo: v.Campo, Mensagem: v.Mensagem})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDACAO",
			Message: ve.Error(),
			Campos:  campos,
		})
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NAO_ENCONTRADO", Message: nf.Error()})
	}

	switch {
	case errors.Is(err, domain.ErrIdadeMinima):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IDADE_MINIMA", Message: err.Error()})
	case errors.Is(err, domain.ErrCPFJaCadastrado),
		errors.Is(err, domain.ErrEmailJaCadastrado),
		errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNO",
		Message: "erro interno no servidor: " + err.Error(),
	})
}
