package api

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Data any `json:"data"`
	Meta any `json:"meta,omitempty"`
}

type ResponseError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func SuccessJSON(w http.ResponseWriter, data any, meta any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Response{Data: data, Meta: meta})
}

func ErrorJSON(w http.ResponseWriter, code int, err error, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	resp := ResponseError{Error: message}
	if err != nil {
		resp.Error = err.Error()
	}
	json.NewEncoder(w).Encode(resp)
}

// FieldErrorsJSON 表單欄位驗證失敗，field -> message
func FieldErrorsJSON(w http.ResponseWriter, code int, fieldErrors map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ResponseError{
		Error:  "validation failed",
		Fields: fieldErrors,
	})
}
