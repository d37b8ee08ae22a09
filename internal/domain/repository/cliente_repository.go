package repository

import "github.com/bigdata/clientes-api/internal/domain/entity"

// ClienteRepository define o porto de persistência para Cliente.
// GetByID/GetByCPF/GetByEmail devolvem (nil, nil) quando não há registro.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByCPF(cpf string) (*entity.Cliente, error)
	GetByEmail(email string) (*entity.Cliente, error)
	List() ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
