// Package docs serves the OpenAPI description of the Carbontrack API.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
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
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/factors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Active emission factor table",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/emissions.FactorTable"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create account",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue access token",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.LoginResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        },
        "/daily-input": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["daily-input"],
                "summary": "Store the day's activity, replacing an earlier submission for the same date",
                "parameters": [
                    {"description": "daily quantities", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.DailyInputRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.ActivityRecord"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        },
        "/daily-input/{userId}/{date}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["daily-input"],
                "summary": "Stored record of a date",
                "parameters": [
                    {"type": "string", "description": "user id", "name": "userId", "in": "path", "required": true},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.ActivityRecord"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        },
        "/daily-input/{userId}/month/{month}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["daily-input"],
                "summary": "Stored records of a month in date order",
                "parameters": [
                    {"type": "string", "description": "user id", "name": "userId", "in": "path", "required": true},
                    {"type": "string", "description": "YYYY-MM", "name": "month", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.ActivityRecord"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        },
        "/reports/{userId}/daily/{date}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Emission breakdown of a day",
                "parameters": [
                    {"type": "string", "description": "user id", "name": "userId", "in": "path", "required": true},
                    {"type": "string", "description": "YYYY-MM-DD", "name": "date", "in": "path", "required": true},
                    {"type": "string", "description": "client view id, a newer request for the same view supersedes older ones", "name": "X-View-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        },
        "/reports/{userId}/monthly/{month}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Monthly aggregate, trend and top contributors",
                "parameters": [
                    {"type": "string", "description": "user id", "name": "userId", "in": "path", "required": true},
                    {"type": "string", "description": "YYYY-MM", "name": "month", "in": "path", "required": true},
                    {"type": "string", "description": "client view id, a newer request for the same view supersedes older ones", "name": "X-View-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        },
        "/reports/{userId}/progress/{month}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Month-over-month progress against the previous calendar month",
                "parameters": [
                    {"type": "string", "description": "user id", "name": "userId", "in": "path", "required": true},
                    {"type": "string", "description": "YYYY-MM", "name": "month", "in": "path", "required": true},
                    {"type": "string", "description": "client view id, a newer request for the same view supersedes older ones", "name": "X-View-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.RegisterRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "password": {"type": "string"}}
        },
        "api.LoginRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "password": {"type": "string"}}
        },
        "api.LoginResponse": {
            "type": "object",
            "properties": {"uid": {"type": "string"}, "token": {"type": "string"}}
        },
        "api.DailyInputRequest": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "date": {"type": "string"},
                "travel": {"$ref": "#/definitions/entity.Travel"},
                "electricity": {"$ref": "#/definitions/entity.Electricity"},
                "meals": {"$ref": "#/definitions/entity.Meals"},
                "shopping": {"$ref": "#/definitions/entity.Shopping"},
                "waste": {"$ref": "#/definitions/entity.Waste"}
            }
        },
        "entity.Travel": {
            "type": "object",
            "properties": {"mode": {"type": "string"}, "fuelType": {"type": "string"}, "distanceKm": {"type": "number"}}
        },
        "entity.Electricity": {
            "type": "object",
            "properties": {"units": {"type": "number"}}
        },
        "entity.Meals": {
            "type": "object",
            "properties": {"vegCount": {"type": "integer"}, "nonVegCount": {"type": "integer"}}
        },
        "entity.Shopping": {
            "type": "object",
            "properties": {"amountSpent": {"type": "number"}}
        },
        "entity.Waste": {
            "type": "object",
            "properties": {"massKg": {"type": "number"}}
        },
        "entity.ActivityRecord": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "date": {"type": "string"},
                "travel": {"$ref": "#/definitions/entity.Travel"},
                "electricity": {"$ref": "#/definitions/entity.Electricity"},
                "meals": {"$ref": "#/definitions/entity.Meals"},
                "shopping": {"$ref": "#/definitions/entity.Shopping"},
                "waste": {"$ref": "#/definitions/entity.Waste"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "emissions.FactorTable": {
            "type": "object",
            "properties": {
                "version": {"type": "string"},
                "travel": {"type": "object", "additionalProperties": {"type": "object", "additionalProperties": {"type": "number"}}},
                "electricity": {"type": "number"},
                "vegMeal": {"type": "number"},
                "nonVegMeal": {"type": "number"},
                "shopping": {"type": "number"},
                "waste": {"type": "number"},
                "comparison": {"type": "object", "additionalProperties": {"type": "number"}}
            }
        },
        "httputil.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "details": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Carbontrack API",
	Description:      "API for the personal carbon footprint tracker \"Carbontrack\"",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
