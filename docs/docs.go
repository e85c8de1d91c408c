// Package docs содержит Swagger-документ API. Пути совпадают с аннотациями
// @Router обработчиков, BasePath корневой.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка состояния",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Регистрация пользователя",
                "parameters": [
                    {
                        "description": "Данные пользователя",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/register.Request"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Вход по имени пользователя или почте",
                "parameters": [
                    {
                        "description": "Учётные данные",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/login.Request"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Выход, удаление сессии",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Текущий пользователь",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MeResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.MeResponse"}}
                }
            }
        },
        "/api/moods": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Moods"],
                "summary": "Последние 30 записей настроения",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Mood"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Moods"],
                "summary": "Создание записи настроения",
                "parameters": [
                    {
                        "description": "Запись настроения",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.MoodInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.CreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/moods/stats": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Moods"],
                "summary": "Средние значения по дням",
                "parameters": [
                    {"type": "integer", "default": 7, "description": "Период в днях, от 1 до 365", "name": "period", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.DayStats"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/moods/{id}": {
            "put": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Moods"],
                "summary": "Полная замена записи настроения",
                "parameters": [
                    {"type": "integer", "description": "ID записи", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Новые значения",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.MoodInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Moods"],
                "summary": "Удаление записи настроения",
                "parameters": [
                    {"type": "integer", "description": "ID записи", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/journal": {
            "get": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Journal"],
                "summary": "Последние 50 записей дневника",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.JournalEntry"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Journal"],
                "summary": "Создание записи дневника",
                "parameters": [
                    {
                        "description": "Запись дневника",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.JournalInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.CreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/journal/{id}": {
            "put": {
                "security": [{"SessionCookie": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Journal"],
                "summary": "Полная замена записи дневника",
                "parameters": [
                    {"type": "integer", "description": "ID записи", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Новые значения",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.JournalInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"SessionCookie": []}],
                "produces": ["application/json"],
                "tags": ["Journal"],
                "summary": "Удаление записи дневника",
                "parameters": [
                    {"type": "integer", "description": "ID записи", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/support": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Support"],
                "summary": "Статьи поддержки",
                "parameters": [
                    {"type": "string", "description": "Фильтр по категории", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Article"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/support/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Support"],
                "summary": "Категории статей",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "login.Request": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "register.Request": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "username": {"type": "string", "maxLength": 50, "minLength": 3}
            }
        },
        "models.Mood": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "energy": {"type": "integer"},
                "id": {"type": "integer"},
                "mood": {"type": "integer"},
                "note": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "user_id": {"type": "integer"}
            }
        },
        "models.MoodInput": {
            "type": "object",
            "required": ["energy", "mood"],
            "properties": {
                "energy": {"type": "integer", "maximum": 5, "minimum": 1},
                "mood": {"type": "integer", "maximum": 5, "minimum": 1},
                "note": {"type": "string"},
                "tags": {"type": "array", "maxItems": 20, "items": {"type": "string"}}
            }
        },
        "models.DayStats": {
            "type": "object",
            "properties": {
                "avg_energy": {"type": "number"},
                "avg_mood": {"type": "number"},
                "count": {"type": "integer"},
                "date": {"type": "string"}
            }
        },
        "models.JournalEntry": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "mood_id": {"type": "integer"},
                "title": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "models.JournalInput": {
            "type": "object",
            "required": ["content"],
            "properties": {
                "content": {"type": "string"},
                "mood_id": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "models.Article": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "content": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "response.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "response.CreatedResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "response.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "message": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "response.MeResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "id": {"type": "integer"},
                "username": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "SessionCookie": {
            "description": "Cookie сессии, выдаётся при регистрации и входе.",
            "type": "apiKey",
            "name": "mindora_session",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Mindora API",
	Description:      "Дневник настроения, журнал и каталог статей поддержки",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
