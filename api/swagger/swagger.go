package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "APS Eligibility API",
        "description": "Course eligibility and university matching for South African APS scores",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Catalog", "description": "University registry and catalog diagnostics"},
        {"name": "Eligibility", "description": "Programme eligibility, match summaries and the APS calculator"},
        {"name": "Export", "description": "CSV and PDF programme reports"}
    ],
    "paths": {
        "/universities": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List universities",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Catalog not loaded", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/universities/{id}/programs": {
            "get": {
                "tags": ["Eligibility"],
                "summary": "Programmes offered by a university, evaluated against a numeric APS",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "aps", "in": "query", "type": "number"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["eligibility", "aps", "name"]},
                    {"name": "faculty", "in": "query", "type": "string"},
                    {"name": "eligibleOnly", "in": "query", "type": "boolean"},
                    {"name": "competitive", "in": "query", "type": "boolean"},
                    {"name": "tolerance", "in": "query", "type": "integer"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "pageSize", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown university", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/universities/{id}/programs/export": {
            "get": {
                "tags": ["Export"],
                "summary": "Download a programme report",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "aps", "in": "query", "type": "number"},
                    {"name": "sort", "in": "query", "type": "string"},
                    {"name": "faculty", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Rendered document", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown university or exports disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/universities/{id}/eligibility": {
            "post": {
                "tags": ["Eligibility"],
                "summary": "Evaluate a student profile at one university",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UniversityEligibilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown university", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/eligibility": {
            "post": {
                "tags": ["Eligibility"],
                "summary": "Match counts at every university",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MatchSummaryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{name}/eligibility": {
            "get": {
                "tags": ["Eligibility"],
                "summary": "Course detail across universities",
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"},
                    {"name": "aps", "in": "query", "type": "number"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown course", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/aps/calculate": {
            "post": {
                "tags": ["Eligibility"],
                "summary": "Calculate an APS from subject marks",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/APSCalculationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/issues": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Authoring issues found when the catalog was loaded",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "StudentSubject": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "marks": {"type": "number", "maximum": 100},
                "level": {"type": "integer", "minimum": 0, "maximum": 7}
            },
            "required": ["name"]
        },
        "StudentProfile": {
            "type": "object",
            "properties": {
                "totalAPS": {"type": "number", "maximum": 60},
                "subjects": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/StudentSubject"}
                }
            }
        },
        "UniversityEligibilityRequest": {
            "type": "object",
            "properties": {
                "profile": {"$ref": "#/definitions/StudentProfile"},
                "sort": {"type": "string", "enum": ["eligibility", "aps", "name"]},
                "faculty": {"type": "string"},
                "eligibleOnly": {"type": "boolean"},
                "competitive": {"type": "boolean"},
                "tolerance": {"type": "integer"},
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"}
            }
        },
        "MatchSummaryRequest": {
            "type": "object",
            "properties": {
                "profile": {"$ref": "#/definitions/StudentProfile"},
                "tolerance": {"type": "integer"}
            }
        },
        "APSCalculationRequest": {
            "type": "object",
            "properties": {
                "subjects": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/StudentSubject"}
                }
            },
            "required": ["subjects"]
        },
        "Verdict": {
            "type": "object",
            "properties": {
                "course": {"type": "string"},
                "university": {"type": "string"},
                "isEligible": {"type": "boolean"},
                "category": {"type": "string", "enum": ["eligible", "almost-eligible", "not-eligible", "unknown"]},
                "apsGap": {"type": "integer"},
                "confidence": {"type": "integer"},
                "requiredAPS": {"type": "integer"},
                "userAPS": {"type": "integer"},
                "recommendations": {"type": "array", "items": {"type": "string"}},
                "missingSubjects": {"type": "array", "items": {"type": "string"}}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
