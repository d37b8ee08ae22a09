package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bigdata/clientes-api/internal/domain"
)

// FormatoData layout aceito para dataNascimento.
const FormatoData = "2006-01-02"

var (
	validate = validator.New(validator.WithRequiredStructEnabled())

	reCPF      = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	reCEP      = regexp.MustCompile(`^\d{5}-\d{3}$`)
	reTelefone = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
)

func init() {
	_ = validate.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return reCPF.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
		return reCEP.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("telefone", func(fl validator.FieldLevel) bool {
		return reTelefone.MatchString(fl.Field().String())
	})
}

// ClienteCandidato payload de cliente antes da persistência (sem id).
type ClienteCandidato struct {
	Nome           string
	Email          string
	CPF            string
	DataNascimento string
	Telefone       string
}

// EnderecoCandidato payload de endereço antes da persistência (sem id).
type EnderecoCandidato struct {
	Rua    string
	Numero string
	Bairro string
	Cidade string
	Estado string
	CEP    string
}

// regra uma verificação sobre um campo. Todas as regras de um candidato são
// avaliadas, de modo que um campo em branco pode acumular mais de uma violação
// (obrigatoriedade e tamanho, por exemplo).
type regra struct {
	campo    string
	valor    string
	tag      string
	mensagem string
}

func aplicar(regras []regra) []domain.Violacao {
	var out []domain.Violacao
	for _, r := range regras {
		if err := validate.Var(r.valor, r.tag); err != nil {
			out = append(out, domain.Violacao{Campo: r.campo, Mensagem: r.mensagem})
		}
	}
	return out
}

// ValidarCliente avalia todas as regras de formato do cliente e devolve as violações.
func ValidarCliente(c ClienteCandidato) []domain.Violacao {
	violacoes := aplicar([]regra{
		{"nome", c.Nome, "required", "Nome é obrigatório"},
		{"nome", c.Nome, "min=3,max=100", "Nome deve ter entre 3 e 100 caracteres"},
		{"email", c.Email, "required", "E-mail é obrigatório"},
		{"email", c.Email, "omitempty,email", "E-mail deve ser válido"},
		{"cpf", c.CPF, "required", "CPF é obrigatório"},
		{"cpf", c.CPF, "cpf", "CPF deve seguir o formato XXX.XXX.XXX-XX"},
		{"telefone", c.Telefone, "omitempty,telefone", "Telefone deve seguir o formato (XX) XXXXX-XXXX"},
	})
	violacoes = append(violacoes, validarDataNascimento(c.DataNascimento)...)
	return violacoes
}

func validarDataNascimento(valor string) []domain.Violacao {
	if strings.TrimSpace(valor) == "" {
		return []domain.Violacao{{Campo: "dataNascimento", Mensagem: "Data de nascimento é obrigatória"}}
	}
	nascimento, err := ParseDataNascimento(valor)
	if err != nil {
		return []domain.Violacao{{Campo: "dataNascimento", Mensagem: "Data de nascimento deve seguir o formato AAAA-MM-DD"}}
	}
	hoje := time.Now().UTC().Truncate(24 * time.Hour)
	if !nascimento.Before(hoje) {
		return []domain.Violacao{{Campo: "dataNascimento", Mensagem: "Data de nascimento deve ser uma data passada"}}
	}
	return nil
}

// ValidarEndereco avalia todas as regras de formato do endereço e devolve as violações.
// Número só é verificado quanto à presença.
func ValidarEndereco(e EnderecoCandidato) []domain.Violacao {
	return aplicar([]regra{
		{"rua", e.Rua, "required", "Rua é obrigatória"},
		{"rua", e.Rua, "min=3,max=255", "Rua deve ter entre 3 e 255 caracteres"},
		{"numero", e.Numero, "required", "Número é obrigatório"},
		{"bairro", e.Bairro, "required", "Bairro é obrigatório"},
		{"bairro", e.Bairro, "min=3,max=100", "Bairro deve ter entre 3 e 100 caracteres"},
		{"cidade", e.Cidade, "required", "Cidade é obrigatória"},
		{"cidade", e.Cidade, "min=2,max=100", "Cidade deve ter entre 2 e 100 caracteres"},
		{"estado", e.Estado, "required", "Estado é obrigatório"},
		{"estado", e.Estado, "len=2", "Estado deve ter 2 caracteres"},
		{"cep", e.CEP, "required", "CEP é obrigatório"},
		{"cep", e.CEP, "cep", "CEP deve seguir o formato XXXXX-XXX"},
	})
}

// ParseDataNascimento interpreta a data no layout AAAA-MM-DD.
func ParseDataNascimento(valor string) (time.Time, error) {
	return time.Parse(FormatoData, valor)
}
