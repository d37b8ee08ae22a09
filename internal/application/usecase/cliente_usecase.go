package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bigdata/clientes-api/internal/application/dto"
	"github.com/bigdata/clientes-api/internal/domain"
	"github.com/bigdata/clientes-api/internal/domain/entity"
	"github.com/bigdata/clientes-api/internal/domain/repository"
	"github.com/bigdata/clientes-api/internal/domain/validation"
)

// IdadeMinima idade mínima em anos completos exigida na criação.
const IdadeMinima = 18

// TxRunner executa um callback com repositórios atados a uma única transação.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		clientes repository.ClienteRepository,
		enderecos repository.EnderecoRepository,
	) error) error
}

// ClienteUseCase casos de uso de clientes.
type ClienteUseCase struct {
	clientes  repository.ClienteRepository
	enderecos repository.EnderecoRepository
	tx        TxRunner
}

// NewClienteUseCase constrói o caso de uso com suas dependências explícitas.
func NewClienteUseCase(clientes repository.ClienteRepository, enderecos repository.EnderecoRepository, tx TxRunner) *ClienteUseCase {
	return &ClienteUseCase{clientes: clientes, enderecos: enderecos, tx: tx}
}

// CriarComEndereco cria um cliente junto com o primeiro endereço.
// Valida os dois payloads (todas as violações juntas), exige idade mínima de 18 anos,
// rejeita CPF/e-mail já cadastrados e persiste cliente e endereço na mesma transação.
func (uc *ClienteUseCase) CriarComEndereco(in dto.CriarClienteComEnderecoRequest) (*dto.ClienteResponse, error) {
	violacoes := validation.ValidarCliente(in.Cliente.Candidato())
	violacoes = append(violacoes, validation.ValidarEndereco(in.Endereco.Candidato())...)
	if len(violacoes) > 0 {
		return nil, &domain.ValidationError{Violacoes: violacoes}
	}

	nascimento, err := validation.ParseDataNascimento(in.Cliente.DataNascimento)
	if err != nil {
		return nil, &domain.ValidationError{Violacoes: []domain.Violacao{
			{Campo: "dataNascimento", Mensagem: "Data de nascimento deve seguir o formato AAAA-MM-DD"},
		}}
	}

	now := time.Now()
	cliente := &entity.Cliente{
		ID:             uuid.New().String(),
		Nome:           in.Cliente.Nome,
		Email:          in.Cliente.Email,
		CPF:            in.Cliente.CPF,
		DataNascimento: nascimento,
		Telefone:       in.Cliente.Telefone,
		CriadoEm:       now,
		AtualizadoEm:   now,
	}
	if cliente.Idade(now) < IdadeMinima {
		return nil, domain.ErrIdadeMinima
	}

	if existente, err := uc.clientes.GetByCPF(cliente.CPF); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrCPFJaCadastrado
	}
	if existente, err := uc.clientes.GetByEmail(cliente.Email); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrEmailJaCadastrado
	}

	endereco := &entity.Endereco{
		ID:           uuid.New().String(),
		ClienteID:    cliente.ID,
		Rua:          in.Endereco.Rua,
		Numero:       in.Endereco.Numero,
		Bairro:       in.Endereco.Bairro,
		Cidade:       in.Endereco.Cidade,
		Estado:       in.Endereco.Estado,
		CEP:          in.Endereco.CEP,
		CriadoEm:     now,
		AtualizadoEm: now,
	}

	// Cliente e endereço entram juntos ou nenhum entra.
	err = uc.tx.Run(context.Background(), func(clientes repository.ClienteRepository, enderecos repository.EnderecoRepository) error {
		if err := clientes.Create(cliente); err != nil {
			return err
		}
		return enderecos.Create(endereco)
	})
	if err != nil {
		return nil, err
	}

	cliente.Enderecos = []entity.Endereco{*endereco}
	return dto.NewClienteResponse(cliente), nil
}

// Listar devolve todos os clientes com seus endereços.
func (uc *ClienteUseCase) Listar() ([]*dto.ClienteResponse, error) {
	clientes, err := uc.clientes.List()
	if err != nil {
		return nil, err
	}
	enderecos, err := uc.enderecos.List()
	if err != nil {
		return nil, err
	}

	porCliente := make(map[string][]entity.Endereco, len(clientes))
	for _, e := range enderecos {
		porCliente[e.ClienteID] = append(porCliente[e.ClienteID], *e)
	}

	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		c.Enderecos = porCliente[c.ID]
		out = append(out, dto.NewClienteResponse(c))
	}
	return out, nil
}

// BuscarPorID devolve um cliente com seus endereços.
func (uc *ClienteUseCase) BuscarPorID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.carregar(id)
	if err != nil {
		return nil, err
	}
	return dto.NewClienteResponse(cliente), nil
}

// Atualizar sobrescreve nome, e-mail, CPF, data de nascimento e telefone do cliente.
// A coleção de endereços não é tocada e a regra de idade não é reavaliada.
func (uc *ClienteUseCase) Atualizar(id string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if violacoes := validation.ValidarCliente(in.Candidato()); len(violacoes) > 0 {
		return nil, &domain.ValidationError{Violacoes: violacoes}
	}

	cliente, err := uc.carregar(id)
	if err != nil {
		return nil, err
	}

	nascimento, err := validation.ParseDataNascimento(in.DataNascimento)
	if err != nil {
		return nil, &domain.ValidationError{Violacoes: []domain.Violacao{
			{Campo: "dataNascimento", Mensagem: "Data de nascimento deve seguir o formato AAAA-MM-DD"},
		}}
	}

	cliente.Nome = in.Nome
	cliente.Email = in.Email
	cliente.CPF = in.CPF
	cliente.DataNascimento = nascimento
	cliente.Telefone = in.Telefone
	cliente.AtualizadoEm = time.Now()

	if err := uc.clientes.Update(cliente); err != nil {
		return nil, err
	}
	return dto.NewClienteResponse(cliente), nil
}

// Deletar remove o cliente; a exclusão em cascata remove seus endereços.
func (uc *ClienteUseCase) Deletar(id string) error {
	cliente, err := uc.clientes.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return &domain.NotFoundError{Entidade: "Cliente", ID: id}
	}
	return uc.clientes.Delete(id)
}

func (uc *ClienteUseCase) carregar(id string) (*entity.Cliente, error) {
	cliente, err := uc.clientes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, &domain.NotFoundError{Entidade: "Cliente", ID: id}
	}
	enderecos, err := uc.enderecos.ListByCliente(id)
	if err != nil {
		return nil, err
	}
	cliente.Enderecos = make([]entity.Endereco, 0, len(enderecos))
	for _, e := range enderecos {
		cliente.Enderecos = append(cliente.Enderecos, *e)
	}
	return cliente, nil
}
