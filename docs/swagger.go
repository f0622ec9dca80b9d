// Package docs holds the swagger document registered for the task board
// API. The template below mirrors the route table in internal/server.
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
    "paths": {
        "/boards": {
            "get": {
                "tags": ["Boards"],
                "summary": "List all boards plus the active board pointer",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Boards"],
                "summary": "Create a board and make it active",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Empty title"}
                }
            }
        },
        "/boards/{id}": {
            "get": {
                "tags": ["Boards"],
                "summary": "Get a board",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Boards"],
                "summary": "Update board fields",
                "responses": {"204": {"description": "No content"}, "404": {"description": "Not found"}}
            },
            "delete": {
                "tags": ["Boards"],
                "summary": "Delete a board",
                "responses": {"204": {"description": "No content"}, "404": {"description": "Not found"}}
            }
        },
        "/boards/{id}/cards/move": {
            "post": {
                "tags": ["Cards"],
                "summary": "Move a card between columns or reorder within one",
                "responses": {
                    "204": {"description": "No content"},
                    "400": {"description": "Source index out of range"},
                    "404": {"description": "Board or column not found"}
                }
            }
        },
        "/kpis": {
            "get": {
                "tags": ["KPIs"],
                "summary": "Compute board and project KPIs from the current state",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/boards/{id}/export": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the board as an xlsx workbook",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Task Board API",
	Description:      "Local Kanban task board with derived productivity metrics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
