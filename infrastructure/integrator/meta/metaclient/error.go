package metaclient

import (
	"encoding/json"
	"fmt"
)

// graphErrorEnvelope representa a estrutura de erro da API do Meta
type graphErrorEnvelope struct {
	Error GraphError `json:"error"`
}

// GraphError contém os detalhes de erro da API do Meta
type GraphError struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`

	HTTPStatus int `json:"-"`
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("meta api error (%d/%s): %s", e.Code, e.Type, e.Message)
}

// IsAuthError verifica se o erro é de token inválido ou expirado
func (e *GraphError) IsAuthError() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	return e.Code == 190 || e.Type == "OAuthException"
}

func decodeGraphError(status int, body []byte) error {
	var envelope graphErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Message == "" {
		return fmt.Errorf("meta api retornou status %d: %s", status, string(body))
	}

	envelope.Error.HTTPStatus = status

	return &envelope.Error
}
