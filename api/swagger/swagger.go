package swagger

import "github.com/swaggo/swag"

// One document covers all three services; each binary serves only its own paths.
const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Campus Services",
        "description": "Courses, students and enrollments",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Course catalogue (courses-service)"},
        {"name": "Students", "description": "Student registry (students-service)"},
        {"name": "Enrollments", "description": "Student to course enrollments (enrollments-service)"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "A dependency is unreachable"}
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "Stream all courses",
                "produces": ["application/json", "text/event-stream"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/CourseResponse"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CourseResponse"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/APIError"}},
                    "422": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}},
                    "422": {"description": "Identifier is not 36 characters", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "put": {
                "tags": ["Courses"],
                "summary": "Replace course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseResponse"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}},
                    "422": {"description": "Invalid identifier or fields", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}},
                    "422": {"description": "Identifier is not 36 characters", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "Stream all students",
                "produces": ["application/json", "text/event-stream"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/StudentResponse"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/StudentResponse"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/APIError"}},
                    "422": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}},
                    "422": {"description": "Identifier is not 36 characters", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Replace student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentResponse"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}},
                    "422": {"description": "Invalid identifier or fields", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}},
                    "422": {"description": "Identifier is not 36 characters", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/enrollments": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "Stream all enrollments",
                "produces": ["application/json", "text/event-stream"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/EnrollmentResponse"}}}
                }
            },
            "post": {
                "tags": ["Enrollments"],
                "summary": "Enroll a student in a course",
                "description": "Resolves the student and the course from their services before storing the enrollment.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/EnrollmentResponse"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Student or course not found", "schema": {"$ref": "#/definitions/APIError"}},
                    "422": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/APIError"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/APIError"}},
                    "502": {"description": "Student or course service unavailable", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/enrollments/{id}": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "Get enrollment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EnrollmentResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "delete": {
                "tags": ["Enrollments"],
                "summary": "Delete enrollment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "CourseRequest": {
            "type": "object",
            "required": ["courseNumber", "courseName", "department"],
            "properties": {
                "courseNumber": {"type": "string"},
                "courseName": {"type": "string"},
                "numHours": {"type": "integer", "minimum": 0},
                "numCredits": {"type": "number", "minimum": 0},
                "department": {"type": "string"}
            }
        },
        "CourseResponse": {
            "type": "object",
            "properties": {
                "courseId": {"type": "string"},
                "courseNumber": {"type": "string"},
                "courseName": {"type": "string"},
                "numHours": {"type": "integer"},
                "numCredits": {"type": "number"},
                "department": {"type": "string"}
            }
        },
        "StudentRequest": {
            "type": "object",
            "required": ["firstName", "lastName"],
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "program": {"type": "string"}
            }
        },
        "StudentResponse": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "program": {"type": "string"}
            }
        },
        "EnrollmentRequest": {
            "type": "object",
            "required": ["enrollmentYear", "semester", "studentId", "courseId"],
            "properties": {
                "enrollmentYear": {"type": "integer", "minimum": 1900, "maximum": 9999},
                "semester": {"type": "string", "enum": ["SPRING", "SUMMER", "FALL", "WINTER"]},
                "studentId": {"type": "string"},
                "courseId": {"type": "string"}
            }
        },
        "EnrollmentResponse": {
            "type": "object",
            "properties": {
                "enrollmentId": {"type": "string"},
                "enrollmentYear": {"type": "integer"},
                "semester": {"type": "string", "enum": ["SPRING", "SUMMER", "FALL", "WINTER"]},
                "studentId": {"type": "string"},
                "studentFirstName": {"type": "string"},
                "studentLastName": {"type": "string"},
                "courseId": {"type": "string"},
                "courseName": {"type": "string"},
                "courseNumber": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
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
