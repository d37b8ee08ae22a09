package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/bigdata/clientes-api/internal/application/dto"
	"github.com/bigdata/clientes-api/internal/domain"
	"github.com/bigdata/clientes-api/internal/domain/entity"
	"github.com/bigdata/clientes-api/internal/domain/repository"
	"github.com/bigdata/clientes-api/internal/domain/validation"
)

// EnderecoUseCase casos de uso de endereços.
type EnderecoUseCase struct {
	enderecos repository.EnderecoRepository
	clientes  repository.ClienteRepository
}

// NewEnderecoUseCase constrói o caso de uso com suas dependências explícitas.
func NewEnderecoUseCase(enderecos repository.EnderecoRepository, clientes repository.ClienteRepository) *EnderecoUseCase {
	return &EnderecoUseCase{enderecos: enderecos, clientes: clientes}
}

// ListarPorCliente devolve os endereços de um cliente existente.
func (uc *EnderecoUseCase) ListarPorCliente(clienteID string) ([]*dto.EnderecoResponse, error) {
	if err := uc.exigirCliente(clienteID); err != nil {
		return nil, err
	}
	enderecos, err := uc.enderecos.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	return respostas(enderecos), nil
}

// AdicionarAoCliente cria um novo endereço associado a um cliente existente.
func (uc *EnderecoUseCase) AdicionarAoCliente(clienteID string, in dto.EnderecoRequest) (*dto.EnderecoResponse, error) {
	if violacoes := validation.ValidarEndereco(in.Candidato()); len(violacoes) > 0 {
		return nil, &domain.ValidationError{Violacoes: violacoes}
	}
	if err := uc.exigirCliente(clienteID); err != nil {
		return nil, err
	}

	now := time.Now()
	endereco := &entity.Endereco{
		ID:           uuid.New().String(),
		ClienteID:    clienteID,
		Rua:          in.Rua,
		Numero:       in.Numero,
		Bairro:       in.Bairro,
		Cidade:       in.Cidade,
		Estado:       in.Estado,
		CEP:          in.CEP,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.enderecos.Create(endereco); err != nil {
		return nil, err
	}
	return dto.NewEnderecoResponse(endereco), nil
}

// Listar devolve todos os endereços cadastrados.
func (uc *EnderecoUseCase) Listar() ([]*dto.EnderecoResponse, error) {
	enderecos, err := uc.enderecos.List()
	if err != nil {
		return nil, err
	}
	return respostas(enderecos), nil
}

// Atualizar sobrescreve rua, número, bairro, cidade, estado e CEP do endereço.
// A associação com o cliente dono nunca é alterada aqui.
func (uc *EnderecoUseCase) Atualizar(id string, in dto.EnderecoRequest) (*dto.EnderecoResponse, error) {
	if violacoes := validation.ValidarEndereco(in.Candidato()); len(violacoes) > 0 {
		return nil, &domain.ValidationError{Violacoes: violacoes}
	}

	endereco, err := uc.enderecos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if endereco == nil {
		return nil, &domain.NotFoundError{Entidade: "Endereço", ID: id}
	}

	endereco.Rua = in.Rua
	endereco.Numero = in.Numero
	endereco.Bairro = in.Bairro
	endereco.Cidade = in.Cidade
	endereco.Estado = in.Estado
	endereco.CEP = in.CEP
	endereco.AtualizadoEm = time.Now()

	if err := uc.enderecos.Update(endereco); err != nil {
		return nil, err
	}
	return dto.NewEnderecoResponse(endereco), nil
}

// Deletar remove um endereço. Remover um id já removido devolve NotFound.
func (uc *EnderecoUseCase) Deletar(id string) error {
	endereco, err := uc.enderecos.GetByID(id)
	if err != nil {
		return err
	}
	if endereco == nil {
		return &domain.NotFoundError{Entidade: "Endereço", ID: id}
	}
	return uc.enderecos.Delete(id)
}

func (uc *EnderecoUseCase) exigirCliente(clienteID string) error {
	cliente, err := uc.clientes.GetByID(clienteID)
	if err != nil {
		return err
	}
	if cliente == nil {
		return &domain.NotFoundError{Entidade: "Cliente", ID: clienteID}
	}
	return nil
}

func respostas(enderecos []*entity.Endereco) []*dto.EnderecoResponse {
	out := make([]*dto.EnderecoResponse, 0, len(enderecos))
	for _, e := range enderecos {
		out = append(out, dto.NewEnderecoResponse(e))
	}
	return out
}
