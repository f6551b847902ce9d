package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the cakes API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>cakes-service — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document for the cake endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "cakes-service", "version": "v1.0.0", "description": "API for managing cakes" },
  "components": {
    "schemas": {
      "Cake": {
        "type": "object",
        "required": ["name", "comment", "imageUrl", "yumFactor"],
        "properties": {
          "id": { "type": "string", "format": "uuid", "readOnly": true },
          "name": { "type": "string" },
          "comment": { "type": "string" },
          "imageUrl": { "type": "string" },
          "yumFactor": { "type": "number" }
        }
      },
      "Message": { "type": "object", "properties": { "message": { "type": "string" } } }
    }
  },
  "paths": {
    "/cakes": {
      "get": {
        "summary": "List all cakes",
        "responses": { "200": { "description": "array of cakes", "content": { "application/json": { "schema": { "type": "array", "items": { "$ref": "#/components/schemas/Cake" } } } } } }
      },
      "post": {
        "summary": "Add a new cake",
        "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Cake" } } } },
        "responses": {
          "200": { "description": "cake added; response carries the generated id" },
          "400": { "description": "missing required fields or unexpected fields" },
          "500": { "description": "persistence failure" }
        }
      }
    },
    "/cakes/{id}": {
      "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } } ],
      "get": {
        "summary": "Get a cake by ID",
        "responses": { "200": { "description": "the cake" }, "404": { "description": "cake not found" } }
      },
      "put": {
        "summary": "Update a cake by ID (partial or full merge)",
        "requestBody": { "content": { "application/json": { "schema": { "type": "object" } } } },
        "responses": { "200": { "description": "cake updated" }, "404": { "description": "cake not found" } }
      },
      "delete": {
        "summary": "Delete a cake by ID",
        "responses": { "200": { "description": "cake deleted" }, "404": { "description": "cake not found" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
