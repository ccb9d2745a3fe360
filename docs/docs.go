// Package docs contém a especificação OpenAPI servida em /swagger.
// Regerar com: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.HealthResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Cadastra um usuário",
                "parameters": [
                    {"description": "Dados de cadastro", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Autentica um usuário",
                "parameters": [
                    {"description": "Credenciais", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Usuário autenticado",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Perfil do usuário autenticado",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Atualiza o perfil",
                "parameters": [
                    {"description": "Campos a alterar", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProfileResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/settings": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Atualiza preferências",
                "parameters": [
                    {"description": "Preferências a alterar", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateSettingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SettingsResponse"}}
                }
            }
        },
        "/auth/photo": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Envia foto de perfil",
                "parameters": [
                    {"type": "file", "description": "Imagem jpg, jpeg, png, gif ou webp", "name": "photo", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PhotoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Lista usuários",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.UserResponse"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/users/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Altera nome e role",
                "parameters": [
                    {"type": "integer", "description": "ID do usuário", "name": "id", "in": "path", "required": true},
                    {"description": "Nome e role", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Lista transações",
                "parameters": [
                    {"type": "string", "description": "Trecho da descrição", "name": "search", "in": "query"},
                    {"type": "string", "description": "Categoria", "name": "category", "in": "query"},
                    {"type": "string", "description": "receita ou despesa", "name": "type", "in": "query"},
                    {"type": "string", "description": "pendente, concluida ou cancelada", "name": "status", "in": "query"},
                    {"type": "string", "description": "Data inicial (YYYY-MM-DD)", "name": "startDate", "in": "query"},
                    {"type": "string", "description": "Data final inclusiva (YYYY-MM-DD)", "name": "endDate", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Página", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Itens por página", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TransactionListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Cria uma transação",
                "parameters": [
                    {"description": "Transação", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TransactionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TransactionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/transactions/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Estatísticas de transações",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TransactionStatsResponse"}}
                }
            }
        },
        "/transactions/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Atualiza uma transação",
                "parameters": [
                    {"type": "integer", "description": "ID da transação", "name": "id", "in": "path", "required": true},
                    {"description": "Transação", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TransactionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TransactionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["transactions"],
                "summary": "Remove uma transação",
                "parameters": [
                    {"type": "integer", "description": "ID da transação", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/savings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["savings"],
                "summary": "Lista metas",
                "parameters": [
                    {"type": "string", "description": "Categoria", "name": "category", "in": "query"},
                    {"type": "string", "description": "em_andamento, concluida ou cancelada", "name": "status", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Página", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Itens por página", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SavingListResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["savings"],
                "summary": "Cria uma meta",
                "parameters": [
                    {"description": "Meta", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateSavingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SavingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/savings/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["savings"],
                "summary": "Estatísticas de metas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SavingStatsResponse"}}
                }
            }
        },
        "/savings/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["savings"],
                "summary": "Atualiza uma meta",
                "parameters": [
                    {"type": "integer", "description": "ID da meta", "name": "id", "in": "path", "required": true},
                    {"description": "Campos a alterar", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateSavingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SavingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["savings"],
                "summary": "Remove uma meta",
                "parameters": [
                    {"type": "integer", "description": "ID da meta", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/savings/{id}/add": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["savings"],
                "summary": "Adiciona um aporte",
                "parameters": [
                    {"type": "integer", "description": "ID da meta", "name": "id", "in": "path", "required": true},
                    {"description": "Valor do aporte", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ContributionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SavingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "environment": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "array", "items": {"type": "string"}},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string", "maxLength": 255},
                "password": {"type": "string", "maxLength": 72, "minLength": 6}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.UserSummary": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "dto.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/dto.UserSummary"}
            }
        },
        "dto.SettingsResponse": {
            "type": "object",
            "properties": {
                "darkMode": {"type": "boolean"},
                "emailNotifications": {"type": "boolean"},
                "language": {"type": "string"},
                "monthlyReport": {"type": "boolean"}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "photo": {"type": "string"},
                "role": {"type": "string"},
                "settings": {"$ref": "#/definitions/dto.SettingsResponse"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "currentPassword": {"type": "string"},
                "name": {"type": "string"},
                "newPassword": {"type": "string", "minLength": 6},
                "photo": {"type": "string"}
            }
        },
        "dto.ProfileResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "photo": {"type": "string"}
            }
        },
        "dto.UpdateSettingsRequest": {
            "type": "object",
            "properties": {
                "darkMode": {"type": "boolean"},
                "emailNotifications": {"type": "boolean"},
                "language": {"type": "string"},
                "monthlyReport": {"type": "boolean"}
            }
        },
        "dto.PhotoResponse": {
            "type": "object",
            "properties": {
                "photo": {"type": "string"}
            }
        },
        "dto.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "visitante"]}
            }
        },
        "dto.TransactionRequest": {
            "type": "object",
            "required": ["amount", "category", "date", "description", "type"],
            "properties": {
                "amount": {"type": "number"},
                "category": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "observations": {"type": "string"},
                "status": {"type": "string", "enum": ["pendente", "concluida", "cancelada"]},
                "type": {"type": "string", "enum": ["receita", "despesa"]}
            }
        },
        "dto.TransactionResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "category": {"type": "string"},
                "createdAt": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "observations": {"type": "string"},
                "status": {"type": "string"},
                "type": {"type": "string"},
                "updatedAt": {"type": "string"},
                "userId": {"type": "integer"}
            }
        },
        "dto.TransactionListResponse": {
            "type": "object",
            "properties": {
                "currentPage": {"type": "integer"},
                "total": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/dto.TransactionResponse"}}
            }
        },
        "dto.TransactionStatsResponse": {
            "type": "object",
            "properties": {
                "balance": {"type": "number"},
                "monthlyBalance": {"type": "number"},
                "monthlyExpense": {"type": "number"},
                "monthlyIncome": {"type": "number"},
                "totalExpense": {"type": "number"},
                "totalIncome": {"type": "number"}
            }
        },
        "dto.CreateSavingRequest": {
            "type": "object",
            "required": ["category", "deadline", "name", "targetAmount"],
            "properties": {
                "category": {"type": "string"},
                "deadline": {"type": "string"},
                "description": {"type": "string"},
                "name": {"type": "string"},
                "targetAmount": {"type": "number"}
            }
        },
        "dto.UpdateSavingRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "currentAmount": {"type": "number"},
                "deadline": {"type": "string"},
                "description": {"type": "string"},
                "name": {"type": "string"},
                "status": {"type": "string", "enum": ["em_andamento", "concluida", "cancelada"]},
                "targetAmount": {"type": "number"}
            }
        },
        "dto.ContributionRequest": {
            "type": "object",
            "required": ["amount"],
            "properties": {
                "amount": {"type": "number"}
            }
        },
        "dto.SavingResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "createdAt": {"type": "string"},
                "currentAmount": {"type": "string"},
                "deadline": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "status": {"type": "string"},
                "targetAmount": {"type": "string"},
                "updatedAt": {"type": "string"},
                "userId": {"type": "integer"}
            }
        },
        "dto.SavingListResponse": {
            "type": "object",
            "properties": {
                "currentPage": {"type": "integer"},
                "savings": {"type": "array", "items": {"$ref": "#/definitions/dto.SavingResponse"}},
                "total": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "dto.CategoryStatsResponse": {
            "type": "object",
            "properties": {
                "saved": {"type": "number"},
                "target": {"type": "number"}
            }
        },
        "dto.SavingStatsResponse": {
            "type": "object",
            "properties": {
                "categorias": {"type": "object", "additionalProperties": {"$ref": "#/definitions/dto.CategoryStatsResponse"}},
                "status": {"type": "object", "additionalProperties": {"type": "integer"}},
                "totalSaved": {"type": "number"},
                "totalTarget": {"type": "number"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Controle Financeiro API",
	Description:      "API de controle financeiro pessoal: transações, metas de economia e usuários.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
