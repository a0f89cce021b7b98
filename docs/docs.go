// Package docs registers the Swagger document for the /api/v1 routes.
// It mirrors the swag annotations in cmd/api; refresh it with `swag init` when they change.
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
        "/api/v1/chart": {
            "get": {
                "description": "Lay out the population trend of a location as SVG bar chart geometry",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "population"
                ],
                "summary": "Get population chart geometry",
                "parameters": [
                    {
                        "type": "string",
                        "example": "Vaughan, Ontario",
                        "description": "Location to analyse",
                        "name": "location",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/chart.Chart"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/chat": {
            "post": {
                "description": "Send a question and the prior conversation to Urbo, the regional planning assistant",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "Ask the assistant",
                "parameters": [
                    {
                        "description": "Question and history",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/main.ChatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/main.ChatResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/places": {
            "get": {
                "description": "Geocode a location query with OpenStreetMap and attach its timezone",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "location"
                ],
                "summary": "Resolve a place",
                "parameters": [
                    {
                        "type": "string",
                        "example": "Downtown Brampton, ON",
                        "description": "Location query",
                        "name": "q",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.Place"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/population": {
            "get": {
                "description": "Ask Gemini for the population trend, sprawl predictions and growth hotspots of a location",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "population"
                ],
                "summary": "Get population analysis",
                "parameters": [
                    {
                        "type": "string",
                        "example": "Brampton, Ontario",
                        "description": "Location to analyse",
                        "name": "location",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.PopulationData"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ping": {
            "get": {
                "description": "Check if the API is running",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Ping health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/main.PingResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "chart.Bar": {
            "type": "object",
            "properties": {
                "fill": {
                    "type": "string"
                },
                "height": {
                    "type": "number"
                },
                "point": {
                    "$ref": "#/definitions/types.PopulationDataPoint"
                },
                "width": {
                    "type": "number"
                },
                "x": {
                    "type": "number"
                },
                "y": {
                    "type": "number"
                }
            }
        },
        "chart.Chart": {
            "type": "object",
            "properties": {
                "bars": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/chart.Bar"
                    }
                },
                "height": {
                    "type": "number"
                },
                "marginBottom": {
                    "type": "number"
                },
                "marginLeft": {
                    "type": "number"
                },
                "marginRight": {
                    "type": "number"
                },
                "width": {
                    "type": "number"
                },
                "xTicks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/chart.XTick"
                    }
                },
                "yMax": {
                    "type": "number"
                },
                "yMin": {
                    "type": "number"
                },
                "yTicks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/chart.YTick"
                    }
                }
            }
        },
        "chart.XTick": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "xOffset": {
                    "type": "number"
                }
            }
        },
        "chart.YTick": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                },
                "yOffset": {
                    "type": "number"
                }
            }
        },
        "main.ChatRequest": {
            "type": "object",
            "required": [
                "question"
            ],
            "properties": {
                "history": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.ChatTurn"
                    }
                },
                "question": {
                    "type": "string",
                    "example": "Which new transit lines are planned for Mississauga?"
                }
            }
        },
        "main.ChatResponse": {
            "type": "object",
            "properties": {
                "reply": {
                    "type": "string",
                    "example": "- Hurontario LRT (opening 2025)"
                }
            }
        },
        "main.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "The API returned an empty response. Please try again."
                },
                "kind": {
                    "type": "string",
                    "example": "empty_response"
                }
            }
        },
        "main.PingResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "description": "Response message",
                    "type": "string",
                    "example": "pong"
                }
            }
        },
        "types.BoundingBox": {
            "type": "object",
            "properties": {
                "east": {
                    "type": "number"
                },
                "north": {
                    "type": "number"
                },
                "south": {
                    "type": "number"
                },
                "west": {
                    "type": "number"
                }
            }
        },
        "types.ChatRole": {
            "type": "string",
            "enum": [
                "user",
                "model"
            ],
            "x-enum-varnames": [
                "ChatRoleUser",
                "ChatRoleModel"
            ]
        },
        "types.ChatTurn": {
            "type": "object",
            "required": [
                "role"
            ],
            "properties": {
                "failed": {
                    "type": "boolean"
                },
                "role": {
                    "enum": [
                        "user",
                        "model"
                    ],
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.ChatRole"
                        }
                    ]
                },
                "text": {
                    "type": "string"
                }
            }
        },
        "types.Coords": {
            "type": "object",
            "properties": {
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                }
            }
        },
        "types.KeyPoint": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "types.Place": {
            "type": "object",
            "properties": {
                "boundingBox": {
                    "$ref": "#/definitions/types.BoundingBox"
                },
                "coordinates": {
                    "$ref": "#/definitions/types.Coords"
                },
                "displayName": {
                    "type": "string"
                },
                "elevationMeters": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "query": {
                    "type": "string"
                },
                "timezone": {
                    "type": "string"
                }
            }
        },
        "types.PopulationData": {
            "type": "object",
            "properties": {
                "keyPoints": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.KeyPoint"
                    }
                },
                "populationTrend": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.PopulationDataPoint"
                    }
                },
                "predictedHotspots": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.PredictedHotspot"
                    }
                },
                "summary": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "urbanSprawlPredictions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.UrbanSprawlPrediction"
                    }
                }
            }
        },
        "types.PopulationDataPoint": {
            "type": "object",
            "properties": {
                "population": {
                    "type": "number"
                },
                "type": {
                    "$ref": "#/definitions/types.TrendType"
                },
                "year": {
                    "type": "integer"
                }
            }
        },
        "types.PredictedHotspot": {
            "type": "object",
            "properties": {
                "locationQuery": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "types.TrendType": {
            "type": "string",
            "enum": [
                "historical",
                "projected"
            ],
            "x-enum-varnames": [
                "TrendHistorical",
                "TrendProjected"
            ]
        },
        "types.UrbanSprawlPrediction": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Sprawl Lens API",
	Description:      "Population trends, urban sprawl predictions and growth hotspots generated by Google Gemini",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
