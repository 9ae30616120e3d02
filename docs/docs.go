// Package docs registra o documento OpenAPI servido em /swagger/.
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
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "BetAware API está online", "schema": {"type": "string"}}
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
                    {"description": "Credenciais", "name": "credenciais", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token emitido", "schema": {"$ref": "#/definitions/domain.JwtResponse"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Credenciais inválidas", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registra um novo usuário",
                "parameters": [
                    {"description": "Dados do usuário", "name": "usuario", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "Usuário criado", "schema": {"$ref": "#/definitions/domain.Usuario"}},
                    "400": {"description": "Payload inválido ou usuário já existe", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/apostas": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["apostas"],
                "summary": "Lista as apostas do usuário",
                "responses": {
                    "200": {"description": "Apostas, mais recentes primeiro", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Aposta"}}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["apostas"],
                "summary": "Cria uma aposta",
                "parameters": [
                    {"description": "Dados da aposta", "name": "aposta", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ApostaRequest"}}
                ],
                "responses": {
                    "200": {"description": "Aposta criada", "schema": {"$ref": "#/definitions/domain.Aposta"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Não autenticado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/apostas/pesquisar": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["apostas"],
                "summary": "Pesquisa apostas com filtros e paginação",
                "parameters": [
                    {"type": "string", "name": "categoria", "in": "query"},
                    {"type": "string", "name": "jogo", "in": "query"},
                    {"type": "string", "name": "resultado", "in": "query"},
                    {"type": "string", "name": "dataInicio", "in": "query"},
                    {"type": "string", "name": "dataFim", "in": "query"},
                    {"type": "number", "name": "valorMinimo", "in": "query"},
                    {"type": "number", "name": "valorMaximo", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "pageSize", "in": "query"},
                    {"type": "string", "name": "orderBy", "in": "query"},
                    {"type": "boolean", "name": "ascending", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Aposta"}}},
                    "400": {"description": "Parâmetro inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "403": {"description": "Acesso negado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/apostas/periodo": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["apostas"],
                "summary": "Lista apostas de todos os usuários num período",
                "parameters": [
                    {"type": "string", "name": "inicio", "in": "query", "required": true},
                    {"type": "string", "name": "fim", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Aposta"}}},
                    "400": {"description": "Período inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "403": {"description": "Acesso negado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/apostas/usuario/periodo": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["apostas"],
                "summary": "Lista as apostas do usuário num período",
                "parameters": [
                    {"type": "string", "name": "inicio", "in": "query", "required": true},
                    {"type": "string", "name": "fim", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Aposta"}}},
                    "400": {"description": "Período inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/apostas/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["apostas"],
                "summary": "Obtém uma aposta",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Aposta encontrada", "schema": {"$ref": "#/definitions/domain.Aposta"}},
                    "404": {"description": "Aposta não encontrada", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["apostas"],
                "summary": "Atualiza uma aposta",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "Novos dados", "name": "aposta", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ApostaRequest"}}
                ],
                "responses": {
                    "200": {"description": "Aposta atualizada", "schema": {"$ref": "#/definitions/domain.Aposta"}},
                    "400": {"description": "Aposta não encontrada ou payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["apostas"],
                "summary": "Remove uma aposta",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Removida"},
                    "404": {"description": "Aposta não encontrada", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/usuarios": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Lista todos os usuários",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Usuario"}}},
                    "403": {"description": "Acesso negado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/usuarios/pesquisar": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Pesquisa usuários com filtros e paginação",
                "parameters": [
                    {"type": "string", "name": "nome", "in": "query"},
                    {"type": "string", "name": "username", "in": "query"},
                    {"type": "string", "name": "email", "in": "query"},
                    {"type": "string", "name": "perfil", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Usuario"}}}
                }
            }
        },
        "/usuarios/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Obtém um usuário com suas apostas",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Usuario"}},
                    "404": {"description": "Usuário não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Atualiza um usuário",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "Novos dados", "name": "usuario", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.UsuarioUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Usuario"}},
                    "400": {"description": "Usuário não encontrado ou dados em uso", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["usuarios"],
                "summary": "Remove um usuário sem apostas",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Removido"},
                    "400": {"description": "Usuário possui apostas", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Usuário não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/external/cep/{cep}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["external"],
                "summary": "Consulta um CEP",
                "parameters": [{"type": "string", "name": "cep", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Endereco"}},
                    "400": {"description": "CEP inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "CEP não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/external/cotacao": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["external"],
                "summary": "Cotação entre duas moedas",
                "parameters": [
                    {"type": "string", "name": "origem", "in": "query"},
                    {"type": "string", "name": "destino", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Cotacao"}}
                }
            }
        },
        "/external/jogos": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["external"],
                "summary": "Jogos disponíveis para apostas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.JogoEsportivo"}}}
                }
            }
        },
        "/external/tempo/{cidade}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["external"],
                "summary": "Previsão do tempo simulada",
                "parameters": [{"type": "string", "name": "cidade", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PrevisaoTempo"}}
                }
            }
        },
        "/external/dashboard/{cep}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["external"],
                "summary": "Painel com localização, clima, jogos e cotação",
                "parameters": [{"type": "string", "name": "cep", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Dashboard"}},
                    "400": {"description": "CEP inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Aposta": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "usuarioId": {"type": "integer"},
                "categoria": {"type": "string"},
                "jogo": {"type": "string"},
                "valor": {"type": "number"},
                "resultado": {"type": "string"},
                "data": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "domain.ApostaRequest": {
            "type": "object",
            "required": ["categoria", "jogo"],
            "properties": {
                "categoria": {"type": "string", "maxLength": 255},
                "jogo": {"type": "string", "maxLength": 255},
                "valor": {"type": "number"},
                "resultado": {"type": "string", "maxLength": 50},
                "data": {"type": "string"}
            }
        },
        "domain.Cotacao": {
            "type": "object",
            "properties": {
                "moedaOrigem": {"type": "string"},
                "moedaDestino": {"type": "string"},
                "taxa": {"type": "number"},
                "dataAtualizacao": {"type": "string"}
            }
        },
        "domain.Dashboard": {
            "type": "object",
            "properties": {
                "localizacao": {"$ref": "#/definitions/domain.Localizacao"},
                "tempo": {"$ref": "#/definitions/domain.PrevisaoTempo"},
                "jogosDisponiveis": {"type": "array", "items": {"$ref": "#/definitions/domain.JogoEsportivo"}},
                "cotacaoUSD": {"$ref": "#/definitions/domain.Cotacao"},
                "dataConsulta": {"type": "string"}
            }
        },
        "domain.Endereco": {
            "type": "object",
            "properties": {
                "cep": {"type": "string"},
                "logradouro": {"type": "string"},
                "complemento": {"type": "string"},
                "bairro": {"type": "string"},
                "localidade": {"type": "string"},
                "uf": {"type": "string"},
                "ibge": {"type": "string"},
                "gia": {"type": "string"},
                "ddd": {"type": "string"},
                "siafi": {"type": "string"}
            }
        },
        "domain.ErrorResponse": {
            "description": "Corpo padronizado de erro.",
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Aposta não encontrada"}
            }
        },
        "domain.JogoEsportivo": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "categoria": {"type": "string"},
                "timeCasa": {"type": "string"},
                "timeVisitante": {"type": "string"},
                "dataJogo": {"type": "string"},
                "oddsCasa": {"type": "number"},
                "oddsEmpate": {"type": "number"},
                "oddsVisitante": {"type": "number"},
                "status": {"type": "string"}
            }
        },
        "domain.JwtResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "username": {"type": "string"},
                "nome": {"type": "string"},
                "perfil": {"type": "string"}
            }
        },
        "domain.Localizacao": {
            "type": "object",
            "properties": {
                "cidade": {"type": "string"},
                "estado": {"type": "string"},
                "bairro": {"type": "string"}
            }
        },
        "domain.LoginRequest": {
            "type": "object",
            "required": ["username", "senha"],
            "properties": {
                "username": {"type": "string"},
                "senha": {"type": "string"}
            }
        },
        "domain.PrevisaoTempo": {
            "type": "object",
            "properties": {
                "cidade": {"type": "string"},
                "temperatura": {"type": "integer"},
                "condicao": {"type": "string"},
                "umidade": {"type": "integer"},
                "dataConsulta": {"type": "string"}
            }
        },
        "domain.RegisterRequest": {
            "type": "object",
            "required": ["username", "nome", "cpf", "cep", "senha", "email"],
            "properties": {
                "username": {"type": "string", "maxLength": 255},
                "nome": {"type": "string", "maxLength": 255},
                "cpf": {"type": "string"},
                "cep": {"type": "string"},
                "endereco": {"type": "string", "maxLength": 255},
                "senha": {"type": "string", "maxLength": 255},
                "email": {"type": "string", "maxLength": 255}
            }
        },
        "domain.Usuario": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "nome": {"type": "string"},
                "cpf": {"type": "string"},
                "cep": {"type": "string"},
                "endereco": {"type": "string"},
                "email": {"type": "string"},
                "perfil": {"type": "string"},
                "apostas": {"type": "array", "items": {"$ref": "#/definitions/domain.Aposta"}}
            }
        },
        "domain.UsuarioUpdateRequest": {
            "type": "object",
            "required": ["username", "nome", "cpf", "cep", "email", "perfil"],
            "properties": {
                "username": {"type": "string", "maxLength": 255},
                "nome": {"type": "string", "maxLength": 255},
                "cpf": {"type": "string"},
                "cep": {"type": "string"},
                "endereco": {"type": "string", "maxLength": 255},
                "email": {"type": "string", "maxLength": 255},
                "perfil": {"type": "string", "enum": ["USER", "ADMIN"]}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "BetAware API",
	Description:      "API de registro e controle de apostas esportivas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
