package httpresult

import (
	"encoding/json"
	"net/http"
)

// HttpResult é o envelope padrão de toda resposta da API.
type HttpResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func Success(data interface{}) HttpResult {
	return HttpResult{Success: true, Data: data}
}

func Fail(message string) HttpResult {
	return HttpResult{Success: false, Message: message}
}

// Write serializa o envelope em JSON com o status informado.
func Write(w http.ResponseWriter, status int, result HttpResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(result)
}
