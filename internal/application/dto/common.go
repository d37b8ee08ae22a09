package dto

// CampoErro violação de um campo em respostas de validação.
type CampoErro struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Campos  []CampoErro `json:"campos,omitempty"`
}
