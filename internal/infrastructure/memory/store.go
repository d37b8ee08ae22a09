// Package memory implementa os portos de persistência em memória.
// Emula as regras do esquema relacional que os usecases assumem do banco:
// unicidade de CPF/e-mail e exclusão em cascata dos endereços do cliente.
package memory

import (
	"context"
	"sync"

	"github.com/bigdata/clientes-api/internal/application/usecase"
	"github.com/bigdata/clientes-api/internal/domain"
	"github.com/bigdata/clientes-api/internal/domain/entity"
	"github.com/bigdata/clientes-api/internal/domain/repository"
)

// Store guarda clientes e endereços em mapas, preservando a ordem de inserção.
type Store struct {
	mu             sync.RWMutex
	clientes       map[string]entity.Cliente
	ordemClientes  []string
	enderecos      map[string]entity.Endereco
	ordemEnderecos []string
}

// NewStore cria um store vazio.
func NewStore() *Store {
	return &Store{
		clientes:  make(map[string]entity.Cliente),
		enderecos: make(map[string]entity.Endereco),
	}
}

// Clientes devolve a visão ClienteRepository do store.
func (s *Store) Clientes() repository.ClienteRepository { return &clienteRepo{s: s} }

// Enderecos devolve a visão EnderecoRepository do store.
func (s *Store) Enderecos() repository.EnderecoRepository { return &enderecoRepo{s: s} }

// TxRunner devolve um runner que executa o callback diretamente sobre o store.
// Não há rollback: os usecases pré-validam tudo antes de escrever.
func (s *Store) TxRunner() usecase.TxRunner { return &txRunner{s: s} }

type txRunner struct{ s *Store }

func (r *txRunner) Run(_ context.Context, fn func(
	clientes repository.ClienteRepository,
	enderecos repository.EnderecoRepository,
) error) error {
	return fn(r.s.Clientes(), r.s.Enderecos())
}

type clienteRepo struct{ s *Store }

func (r *clienteRepo) Create(cliente *entity.Cliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.conflito(cliente); err != nil {
		return err
	}
	r.s.clientes[cliente.ID] = *cliente
	r.s.ordemClientes = append(r.s.ordemClientes, cliente.ID)
	return nil
}

func (r *clienteRepo) GetByID(id string) (*entity.Cliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c, ok := r.s.clientes[id]; ok {
		c.Enderecos = nil
		return &c, nil
	}
	return nil, nil
}

func (r *clienteRepo) GetByCPF(cpf string) (*entity.Cliente, error) {
	return r.buscar(func(c entity.Cliente) bool { return c.CPF == cpf })
}

func (r *clienteRepo) GetByEmail(email string) (*entity.Cliente, error) {
	return r.buscar(func(c entity.Cliente) bool { return c.Email == email })
}

func (r *clienteRepo) buscar(match func(entity.Cliente) bool) (*entity.Cliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, id := range r.s.ordemClientes {
		if c := r.s.clientes[id]; match(c) {
			c.Enderecos = nil
			return &c, nil
		}
	}
	return nil, nil
}

func (r *clienteRepo) List() ([]*entity.Cliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Cliente, 0, len(r.s.ordemClientes))
	for _, id := range r.s.ordemClientes {
		c := r.s.clientes[id]
		c.Enderecos = nil
		out = append(out, &c)
	}
	return out, nil
}

func (r *clienteRepo) Update(cliente *entity.Cliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clientes[cliente.ID]; !ok {
		return nil // last-writer-wins; inexistente já foi tratado no usecase
	}
	if err := r.s.conflito(cliente); err != nil {
		return err
	}
	r.s.clientes[cliente.ID] = *cliente
	return nil
}

func (r *clienteRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.clientes, id)
	r.s.ordemClientes = remover(r.s.ordemClientes, id)

	// cascata: remove os endereços do cliente
	restantes := r.s.ordemEnderecos[:0]
	for _, eid := range r.s.ordemEnderecos {
		if r.s.enderecos[eid].ClienteID == id {
			delete(r.s.enderecos, eid)
			continue
		}
		restantes = append(restantes, eid)
	}
	r.s.ordemEnderecos = restantes
	return nil
}

// conflito emula as constraints únicas clientes_cpf_key e clientes_email_key.
func (s *Store) conflito(cliente *entity.Cliente) error {
	for id, c := range s.clientes {
		if id == cliente.ID {
			continue
		}
		if c.CPF == cliente.CPF {
			return domain.ErrCPFJaCadastrado
		}
		if c.Email == cliente.Email {
			return domain.ErrEmailJaCadastrado
		}
	}
	return nil
}

type enderecoRepo struct{ s *Store }

func (r *enderecoRepo) Create(endereco *entity.Endereco) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.enderecos[endereco.ID] = *endereco
	r.s.ordemEnderecos = append(r.s.ordemEnderecos, endereco.ID)
	return nil
}

func (r *enderecoRepo) GetByID(id string) (*entity.Endereco, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if e, ok := r.s.enderecos[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *enderecoRepo) List() ([]*entity.Endereco, error) {
	return r.listar(func(entity.Endereco) bool { return true })
}

func (r *enderecoRepo) ListByCliente(clienteID string) ([]*entity.Endereco, error) {
	return r.listar(func(e entity.Endereco) bool { return e.ClienteID == clienteID })
}

func (r *enderecoRepo) listar(match func(entity.Endereco) bool) ([]*entity.Endereco, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Endereco
	for _, id := range r.s.ordemEnderecos {
		if e := r.s.enderecos[id]; match(e) {
			out = append(out, &e)
		}
	}
	return out, nil
}

func (r *enderecoRepo) Update(endereco *entity.Endereco) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.enderecos[endereco.ID]; ok {
		r.s.enderecos[endereco.ID] = *endereco
	}
	return nil
}

func (r *enderecoRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.enderecos, id)
	r.s.ordemEnderecos = remover(r.s.ordemEnderecos, id)
	return nil
}

func remover(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
