package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigdata/clientes-api/internal/domain/entity"
	"github.com/bigdata/clientes-api/internal/domain/repository"
)

var _ repository.EnderecoRepository = (*EnderecoRepo)(nil)

const colunasEndereco = "id, cliente_id, rua, numero, bairro, cidade, estado, cep, criado_em, atualizado_em"

// EnderecoRepo implementação de EnderecoRepository (usável com pool ou tx).
type EnderecoRepo struct {
	q Querier
}

// NewEnderecoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEnderecoRepository(q Querier) *EnderecoRepo {
	return &EnderecoRepo{q: q}
}

// Create persiste um novo endereço.
func (r *EnderecoRepo) Create(endereco *entity.Endereco) error {
	query := `
		INSERT INTO enderecos (id, cliente_id, rua, numero, bairro, cidade, estado, cep, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		endereco.ID, endereco.ClienteID, endereco.Rua, endereco.Numero, endereco.Bairro,
		endereco.Cidade, endereco.Estado, endereco.CEP, endereco.CriadoEm, endereco.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert endereco: %w", err)
	}
	return nil
}

// GetByID obtém um endereço por ID. Devolve (nil, nil) se não existir.
func (r *EnderecoRepo) GetByID(id string) (*entity.Endereco, error) {
	query := fmt.Sprintf("SELECT %s FROM enderecos WHERE id = $1", colunasEndereco)
	var e entity.Endereco
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.ClienteID, &e.Rua, &e.Numero, &e.Bairro, &e.Cidade, &e.Estado, &e.CEP, &e.CriadoEm, &e.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get endereco: %w", err)
	}
	return &e, nil
}

// List lista todos os endereços na ordem de inserção.
func (r *EnderecoRepo) List() ([]*entity.Endereco, error) {
	query := fmt.Sprintf("SELECT %s FROM enderecos ORDER BY criado_em", colunasEndereco)
	return r.listar(query)
}

// ListByCliente lista os endereços de um cliente na ordem de inserção.
func (r *EnderecoRepo) ListByCliente(clienteID string) ([]*entity.Endereco, error) {
	query := fmt.Sprintf("SELECT %s FROM enderecos WHERE cliente_id = $1 ORDER BY criado_em", colunasEndereco)
	return r.listar(query, clienteID)
}

func (r *EnderecoRepo) listar(query string, args ...any) ([]*entity.Endereco, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list enderecos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Endereco
	for rows.Next() {
		var e entity.Endereco
		if err := rows.Scan(&e.ID, &e.ClienteID, &e.Rua, &e.Numero, &e.Bairro, &e.Cidade, &e.Estado, &e.CEP, &e.CriadoEm, &e.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan endereco: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update atualiza os dados do endereço; cliente_id fica intocado.
func (r *EnderecoRepo) Update(endereco *entity.Endereco) error {
	query := `
		UPDATE enderecos SET rua = $2, numero = $3, bairro = $4, cidade = $5, estado = $6, cep = $7, atualizado_em = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		endereco.ID, endereco.Rua, endereco.Numero, endereco.Bairro, endereco.Cidade,
		endereco.Estado, endereco.CEP, endereco.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update endereco: %w", err)
	}
	return nil
}

// Delete remove um endereço por ID.
func (r *EnderecoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM enderecos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete endereco: %w", err)
	}
	return nil
}
