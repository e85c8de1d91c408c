// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков. Ошибки всегда отдаются как {"error": "..."}.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// MessageResponse тело ответа с сообщением об успехе.
type MessageResponse struct {
	Message string `json:"message" example:"Mood updated"`
}

// CreatedResponse ответ на создание записи.
type CreatedResponse struct {
	ID      int64  `json:"id" example:"1"`
	Message string `json:"message" example:"Mood saved"`
}

// UserResponse ответ на успешную регистрацию или вход.
type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Message  string `json:"message" example:"Login successful"`
}

// MeResponse ответ на запрос текущего пользователя.
type MeResponse struct {
	ID            int64  `json:"id,omitempty" example:"1"`
	Username      string `json:"username,omitempty" example:"alice"`
	Authenticated bool   `json:"authenticated" example:"true"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Message возвращает MessageResponse.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

// Created возвращает CreatedResponse.
func Created(id int64, msg string) CreatedResponse {
	return CreatedResponse{ID: id, Message: msg}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", field))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email address", field))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s", field, err.Param()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at most %s", field, err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not valid", field))
		}
	}
	return ErrorResponse{Error: strings.Join(errsMsgs, ", ")}
}
