package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigdata/clientes-api/internal/domain/entity"
	"github.com/bigdata/clientes-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const colunasCliente = "id, nome, email, cpf, data_nascimento, telefone, criado_em, atualizado_em"

// ClienteRepo implementação de ClienteRepository (usável com pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste um novo cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nome, email, cpf, data_nascimento, telefone, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nome, cliente.Email, cliente.CPF, cliente.DataNascimento,
		cliente.Telefone, cliente.CriadoEm, cliente.AtualizadoEm,
	)
	if err != nil {
		if dup := duplicado(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID. Devolve (nil, nil) se não existir.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.buscar("WHERE id = $1", id)
}

// GetByCPF obtém um cliente por CPF. Devolve (nil, nil) se não existir.
func (r *ClienteRepo) GetByCPF(cpf string) (*entity.Cliente, error) {
	return r.buscar("WHERE cpf = $1", cpf)
}

// GetByEmail obtém um cliente por e-mail. Devolve (nil, nil) se não existir.
func (r *ClienteRepo) GetByEmail(email string) (*entity.Cliente, error) {
	return r.buscar("WHERE email = $1", email)
}

func (r *ClienteRepo) buscar(filtro string, arg any) (*entity.Cliente, error) {
	query := fmt.Sprintf("SELECT %s FROM clientes %s", colunasCliente, filtro)
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Nome, &c.Email, &c.CPF, &c.DataNascimento, &c.Telefone, &c.CriadoEm, &c.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista todos os clientes na ordem de inserção.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	query := fmt.Sprintf("SELECT %s FROM clientes ORDER BY criado_em", colunasCliente)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.Email, &c.CPF, &c.DataNascimento, &c.Telefone, &c.CriadoEm, &c.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza os dados cadastrais de um cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET nome = $2, email = $3, cpf = $4, data_nascimento = $5, telefone = $6, atualizado_em = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nome, cliente.Email, cliente.CPF, cliente.DataNascimento,
		cliente.Telefone, cliente.AtualizadoEm,
	)
	if err != nil {
		if dup := duplicado(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete remove um cliente por ID; a FK com ON DELETE CASCADE remove os endereços.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
