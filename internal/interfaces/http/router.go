package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bigdata/clientes-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ClienteUC  *usecase.ClienteUseCase
	EnderecoUC *usecase.EnderecoUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	clientes := app.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Criar)
	clientes.Get("/", clienteHandler.Listar)
	clientes.Get("/:id", clienteHandler.BuscarPorID)
	clientes.Put("/:id", clienteHandler.Atualizar)
	clientes.Delete("/:id", clienteHandler.Deletar)

	enderecos := app.Group("/enderecos")
	enderecoHandler := NewEnderecoHandler(deps.EnderecoUC)
	enderecos.Get("/", enderecoHandler.Listar)
	enderecos.Get("/cliente/:clienteId", enderecoHandler.ListarPorCliente)
	enderecos.Post("/cliente/:clienteId", enderecoHandler.AdicionarAoCliente)
	enderecos.Put("/:id", enderecoHandler.Atualizar)
	enderecos.Delete("/:id", enderecoHandler.Deletar)
}
