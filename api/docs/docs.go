// Package docs holds the OpenAPI document for the REST API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/db/data/node": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Nodes"],
                "summary": "Create a node",
                "parameters": [
                    {"description": "Property map", "name": "properties", "in": "body", "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/models.NodeRepresentation"},
                        "headers": {"Location": {"type": "string", "description": "URI of the new node"}}
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/db/data/node/{nodeID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Nodes"],
                "summary": "Get a node",
                "parameters": [
                    {"type": "integer", "description": "Node ID", "name": "nodeID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.NodeRepresentation"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/db/data/node/{nodeID}/relationships": {
            "post": {
                "description": "Creates a typed relationship from the start node to the node referenced by \"to\", with optional properties in \"data\". Start and end nodes are checked before the property values are.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Relationships"],
                "summary": "Create a relationship",
                "parameters": [
                    {"type": "integer", "description": "Start node ID", "name": "nodeID", "in": "path", "required": true},
                    {"description": "{\"to\": \"<node uri>\", \"type\": \"LOVES\", \"data\": {\"foo\": \"bar\"}}", "name": "relationship", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/models.RelationshipRepresentation"},
                        "headers": {"Location": {"type": "string", "description": "URI of the new relationship"}}
                    },
                    "400": {"description": "Malformed body, invalid request, missing end node or invalid property value", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Start node not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/db/data/relationship/{relationshipID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Relationships"],
                "summary": "Get a relationship",
                "parameters": [
                    {"type": "integer", "description": "Relationship ID", "name": "relationshipID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RelationshipRepresentation"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/db/data/relationship/{relationshipID}/properties": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Relationships"],
                "summary": "Get relationship properties",
                "parameters": [
                    {"type": "integer", "description": "Relationship ID", "name": "relationshipID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/db/data/relationship/{relationshipID}/properties/{key}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Relationships"],
                "summary": "Get a relationship property",
                "parameters": [
                    {"type": "integer", "description": "Relationship ID", "name": "relationshipID", "in": "path", "required": true},
                    {"type": "string", "description": "Property key", "name": "key", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {}},
                    "404": {"description": "Relationship or property not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/version": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Version"],
                "summary": "Get server version",
                "responses": {
                    "200": {"description": "{\"version\": \"0.1.0\"}", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "end_node_not_found"},
                "message": {"type": "string", "example": "Error message describing the issue"}
            }
        },
        "models.NodeRepresentation": {
            "type": "object",
            "properties": {
                "create_relationship": {"type": "string"},
                "data": {"type": "object", "additionalProperties": true},
                "properties": {"type": "string"},
                "property": {"type": "string"},
                "self": {"type": "string"}
            }
        },
        "models.RelationshipRepresentation": {
            "type": "object",
            "properties": {
                "data": {"type": "object", "additionalProperties": true},
                "end": {"type": "string"},
                "properties": {"type": "string"},
                "property": {"type": "string"},
                "self": {"type": "string"},
                "start": {"type": "string"},
                "type": {"type": "string", "example": "LOVES"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "v0.1.0",
	Host:             "localhost:7474",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "graphdb REST API",
	Description:      "Property-graph server. Nodes and typed relationships carry maps of primitive or homogeneous-array properties.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
