// Package docs registers the OpenAPI description served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {"get": {"tags": ["health"], "summary": "Health check endpoint", "produces": ["text/plain"], "responses": {"200": {"description": "Healthy"}}}},
        "/api/register": {"post": {"tags": ["auth"], "summary": "Register a user", "responses": {"201": {"description": "token"}, "400": {"description": "invalid form"}, "409": {"description": "name taken"}}}},
        "/api/login": {"post": {"tags": ["auth"], "summary": "Log in", "responses": {"200": {"description": "token"}, "401": {"description": "invalid credentials"}}}},
        "/api/habits": {
            "get": {"tags": ["habits"], "summary": "List habits", "security": [{"Bearer": []}], "responses": {"200": {"description": "habits"}}},
            "post": {"tags": ["habits"], "summary": "Create a habit", "security": [{"Bearer": []}], "responses": {"201": {"description": "habit"}, "400": {"description": "blank name"}}}
        },
        "/api/habits/{id}": {
            "get": {"tags": ["habits"], "summary": "Get a habit", "security": [{"Bearer": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "habit"}, "404": {"description": "not found"}}},
            "delete": {"tags": ["habits"], "summary": "Delete a habit", "security": [{"Bearer": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"204": {"description": "deleted"}}}
        },
        "/api/habits/{id}/toggle": {"post": {"tags": ["habits"], "summary": "Toggle a day", "security": [{"Bearer": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "new status"}}}},
        "/api/habits/{id}/days/{date}": {"put": {"tags": ["habits"], "summary": "Set a day's status", "security": [{"Bearer": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "date", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "new status"}}}},
        "/api/habits/{id}/metrics": {"get": {"tags": ["stats"], "summary": "Habit metrics", "security": [{"Bearer": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "date", "in": "query", "type": "string"}, {"name": "month", "in": "query", "type": "string"}], "responses": {"200": {"description": "metrics"}}}},
        "/api/habits/{id}/trend": {"get": {"tags": ["stats"], "summary": "Habit trend", "security": [{"Bearer": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "date", "in": "query", "type": "string"}], "responses": {"200": {"description": "points, null for unmarked days"}}}},
        "/api/habits/{id}/calendar": {"get": {"tags": ["stats"], "summary": "Habit calendar", "security": [{"Bearer": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "month", "in": "query", "type": "string"}], "responses": {"200": {"description": "month grid"}}}},
        "/api/week": {"get": {"tags": ["stats"], "summary": "Week progress", "security": [{"Bearer": []}], "parameters": [{"name": "date", "in": "query", "type": "string"}], "responses": {"200": {"description": "one row per habit"}}}},
        "/api/overview": {"get": {"tags": ["stats"], "summary": "Overview", "security": [{"Bearer": []}], "parameters": [{"name": "date", "in": "query", "type": "string"}], "responses": {"200": {"description": "summary"}}}},
        "/api/insight": {"get": {"tags": ["stats"], "summary": "Coaching insight", "security": [{"Bearer": []}], "parameters": [{"name": "date", "in": "query", "type": "string"}], "responses": {"200": {"description": "message"}, "503": {"description": "not configured"}}}},
        "/connect": {"get": {"tags": ["websocket"], "summary": "WebSocket connection endpoint", "parameters": [{"name": "token", "in": "query", "required": true, "type": "string"}], "responses": {"101": {"description": "Switching Protocols to WebSocket"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Habits API",
	Description:      "Daily habit tracking with streaks, success rates and charts",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
