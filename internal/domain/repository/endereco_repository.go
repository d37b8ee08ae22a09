package repository

import "github.com/bigdata/clientes-api/internal/domain/entity"

// EnderecoRepository define o porto de persistência para Endereco.
type EnderecoRepository interface {
	Create(endereco *entity.Endereco) error
	GetByID(id string) (*entity.Endereco, error)
	List() ([]*entity.Endereco, error)
	ListByCliente(clienteID string) ([]*entity.Endereco, error)
	Update(endereco *entity.Endereco) error
	Delete(id string) error
}
