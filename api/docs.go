// Package api contains the OpenAPI document of the FinTrack API.
//
// It is built from the swag annotations of the handlers. Regenerate it with
// "swag init --parseInternal --outputTypes go --output api" after changing them.
package api

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
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.RootResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Authenticates a user. The token is returned and set as cookie",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Email and password",
                        "name": "login",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Deletes the token cookie",
                "tags": [
                    "Auth"
                ],
                "summary": "Logout",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/auth/me": {
            "get": {
                "description": "Returns the authenticated user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Current user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes the authenticated user. Transactions and budgets are handled according to the configured deletion policy",
                "tags": [
                    "Auth"
                ],
                "summary": "Delete account",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Creates a new user and logs them in",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Register",
                "parameters": [
                    {
                        "description": "Name, email and password",
                        "name": "register",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.AuthResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/budgets": {
            "get": {
                "description": "Returns all budgets of the user, the most recent period first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budgets",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetListResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new budget for a category and a month or year",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Create budget",
                "parameters": [
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/budgets/utilization": {
            "get": {
                "description": "Returns the spending against each budget of the user in a year. With a month, only the monthly budgets of that month are returned",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget utilization",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Month",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.UtilizationListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/budgets/{id}": {
            "get": {
                "description": "Returns a specific budget",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "put": {
                "description": "Updates a budget. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Update budget",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a budget",
                "tags": [
                    "Budgets"
                ],
                "summary": "Delete budget",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates a budget. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Update budget",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/transactions": {
            "get": {
                "description": "Returns the transactions of the user, the most recent first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transactions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by type, income or expense",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by category. Supports * as wildcard",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Filter by year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Filter by month, requires year",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.TransactionListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new transaction",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Create transaction",
                "parameters": [
                    {
                        "description": "Transaction",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.TransactionEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/transactions/export": {
            "get": {
                "description": "Returns the transactions of the user as CSV file or XLSX workbook",
                "produces": [
                    "text/csv",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Export transactions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "csv (default) or xlsx",
                        "name": "format",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by type, income or expense",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by category. Supports * as wildcard",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Filter by year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Filter by month, requires year",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/transactions/import": {
            "post": {
                "description": "Imports transactions from a CSV file in the format of the CSV export. Lines that have been imported before are skipped",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Import transactions",
                "parameters": [
                    {
                        "type": "file",
                        "description": "File to import",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.ImportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/transactions/summary": {
            "get": {
                "description": "Returns income, expense and savings of the user. Without a year, all transactions are summed",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get summary",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Month, requires year",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.SummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/transactions/{id}": {
            "get": {
                "description": "Returns a specific transaction",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "put": {
                "description": "Updates a transaction. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Update transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Transaction",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.TransactionPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a transaction",
                "tags": [
                    "Transactions"
                ],
                "summary": "Delete transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates a transaction. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Update transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Transaction",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.TransactionPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "controllers.AuthData": {
            "type": "object",
            "properties": {
                "token": {
                    "description": "The access token. It is also set as cookie",
                    "example": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...",
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/controllers.User"
                }
            }
        },
        "controllers.AuthResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/controllers.AuthData"
                }
            }
        },
        "controllers.Budget": {
            "type": "object",
            "properties": {
                "category": {
                    "description": "Category the budget limits spending for",
                    "example": "groceries",
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z",
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce",
                    "type": "string"
                },
                "limit": {
                    "description": "Maximum spending in the period",
                    "example": "400",
                    "minimum": 1e-08,
                    "multipleOf": 1e-08,
                    "type": "string"
                },
                "links": {
                    "$ref": "#/definitions/controllers.BudgetLinks"
                },
                "month": {
                    "description": "Month of the budget. Required for monthly budgets, must be empty for yearly ones",
                    "example": 3,
                    "maximum": 12,
                    "minimum": 1,
                    "type": "integer"
                },
                "type": {
                    "description": "Either monthly or yearly",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.PeriodType"
                        }
                    ],
                    "example": "monthly"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z",
                    "type": "string"
                },
                "year": {
                    "description": "Year of the budget. Numbers and numeric strings are accepted",
                    "example": 2024,
                    "minimum": 2000,
                    "type": "integer"
                }
            }
        },
        "controllers.BudgetEditable": {
            "type": "object",
            "properties": {
                "category": {
                    "description": "Category the budget limits spending for",
                    "example": "groceries",
                    "type": "string"
                },
                "limit": {
                    "description": "Maximum spending in the period",
                    "example": "400",
                    "minimum": 1e-08,
                    "multipleOf": 1e-08,
                    "type": "string"
                },
                "month": {
                    "description": "Month of the budget. Required for monthly budgets, must be empty for yearly ones",
                    "example": 3,
                    "maximum": 12,
                    "minimum": 1,
                    "type": "integer"
                },
                "type": {
                    "description": "Either monthly or yearly",
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.PeriodType"
                        }
                    ],
                    "example": "monthly"
                },
                "year": {
                    "description": "Year of the budget. Numbers and numeric strings are accepted",
                    "example": 2024,
                    "minimum": 2000,
                    "type": "integer"
                }
            }
        },
        "controllers.BudgetLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "description": "The budget itself",
                    "example": "https://example.com/api/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf",
                    "type": "string"
                }
            }
        },
        "controllers.BudgetListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of budgets",
                    "items": {
                        "$ref": "#/definitions/controllers.Budget"
                    },
                    "type": "array"
                }
            }
        },
        "controllers.BudgetPatch": {
            "type": "object",
            "properties": {
                "category": {
                    "example": "rent",
                    "type": "string"
                },
                "limit": {
                    "example": "1200",
                    "type": "string"
                },
                "month": {
                    "example": 4,
                    "type": "integer"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.PeriodType"
                        }
                    ],
                    "example": "yearly"
                },
                "year": {
                    "example": 2025,
                    "type": "integer"
                }
            }
        },
        "controllers.BudgetResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the budget",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Budget"
                        }
                    ]
                }
            }
        },
        "controllers.ImportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/controllers.ImportResult"
                }
            }
        },
        "controllers.ImportResult": {
            "type": "object",
            "properties": {
                "skipped": {
                    "description": "Number of lines that had been imported before",
                    "example": 2,
                    "type": "integer"
                },
                "transactions": {
                    "description": "The created transactions",
                    "items": {
                        "$ref": "#/definitions/controllers.Transaction"
                    },
                    "type": "array"
                }
            }
        },
        "controllers.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "example": "jane@example.com",
                    "type": "string"
                },
                "password": {
                    "example": "correct horse battery staple",
                    "type": "string"
                }
            }
        },
        "controllers.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "example": "jane@example.com",
                    "type": "string"
                },
                "name": {
                    "example": "Jane Doe",
                    "type": "string"
                },
                "password": {
                    "example": "correct horse battery staple",
                    "type": "string"
                }
            }
        },
        "controllers.Summary": {
            "type": "object",
            "properties": {
                "expense": {
                    "example": "3000",
                    "type": "string"
                },
                "income": {
                    "example": "5000",
                    "type": "string"
                },
                "savings": {
                    "description": "Income minus expense",
                    "example": "2000",
                    "type": "string"
                }
            }
        },
        "controllers.SummaryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/controllers.Summary"
                }
            }
        },
        "controllers.Transaction": {
            "type": "object",
            "properties": {
                "amount": {
                    "description": "The amount of the transaction. Numbers and numeric strings are accepted",
                    "example": "14.03",
                    "maximum": 999999999999.999,
                    "minimum": 1e-08,
                    "multipleOf": 1e-08,
                    "type": "string"
                },
                "category": {
                    "description": "Category of the transaction. Stored trimmed and lower-cased",
                    "example": "food",
                    "type": "string"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z",
                    "type": "string"
                },
                "date": {
                    "description": "Date of the transaction",
                    "example": "2024-03-10",
                    "format": "date",
                    "type": "string"
                },
                "id": {
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce",
                    "type": "string"
                },
                "importHash": {
                    "description": "The SHA256 hash of the imported line. Empty for transactions that were not imported",
                    "example": "867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70",
                    "type": "string"
                },
                "links": {
                    "$ref": "#/definitions/controllers.TransactionLinks"
                },
                "notes": {
                    "default": "",
                    "description": "Free text notes",
                    "example": "Lunch with Sam",
                    "type": "string"
                },
                "paymentMethod": {
                    "description": "One of cash, card, upi or other",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.PaymentMethod"
                        }
                    ],
                    "example": "card"
                },
                "type": {
                    "description": "Either income or expense",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "example": "expense"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z",
                    "type": "string"
                }
            }
        },
        "controllers.TransactionEditable": {
            "type": "object",
            "properties": {
                "amount": {
                    "description": "The amount of the transaction. Numbers and numeric strings are accepted",
                    "example": "14.03",
                    "maximum": 999999999999.999,
                    "minimum": 1e-08,
                    "multipleOf": 1e-08,
                    "type": "string"
                },
                "category": {
                    "description": "Category of the transaction. Stored trimmed and lower-cased",
                    "example": "food",
                    "type": "string"
                },
                "date": {
                    "description": "Date of the transaction",
                    "example": "2024-03-10",
                    "format": "date",
                    "type": "string"
                },
                "notes": {
                    "default": "",
                    "description": "Free text notes",
                    "example": "Lunch with Sam",
                    "type": "string"
                },
                "paymentMethod": {
                    "description": "One of cash, card, upi or other",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.PaymentMethod"
                        }
                    ],
                    "example": "card"
                },
                "type": {
                    "description": "Either income or expense",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "example": "expense"
                }
            }
        },
        "controllers.TransactionLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "description": "The transaction itself",
                    "example": "https://example.com/api/transactions/d430d7c3-d14c-4712-9336-ee56965a6673",
                    "type": "string"
                }
            }
        },
        "controllers.TransactionListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "List of transactions",
                    "items": {
                        "$ref": "#/definitions/controllers.Transaction"
                    },
                    "type": "array"
                }
            }
        },
        "controllers.TransactionPatch": {
            "type": "object",
            "properties": {
                "amount": {
                    "example": "14.03",
                    "type": "string"
                },
                "category": {
                    "example": "salary",
                    "type": "string"
                },
                "date": {
                    "example": "2024-03-10",
                    "format": "date",
                    "type": "string"
                },
                "notes": {
                    "example": "Bonus",
                    "type": "string"
                },
                "paymentMethod": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.PaymentMethod"
                        }
                    ],
                    "example": "upi"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.TransactionType"
                        }
                    ],
                    "example": "income"
                }
            }
        },
        "controllers.TransactionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the transaction",
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.Transaction"
                        }
                    ]
                }
            }
        },
        "controllers.User": {
            "type": "object",
            "properties": {
                "email": {
                    "example": "jane@example.com",
                    "type": "string"
                },
                "id": {
                    "example": "65392deb-5e92-4268-b114-297faad6cdce",
                    "type": "string"
                },
                "name": {
                    "example": "Jane Doe",
                    "type": "string"
                }
            }
        },
        "controllers.UserResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/controllers.User"
                }
            }
        },
        "controllers.Utilization": {
            "type": "object",
            "properties": {
                "category": {
                    "example": "groceries",
                    "type": "string"
                },
                "id": {
                    "description": "ID of the budget",
                    "example": "550dc009-cea6-4c12-b2a5-03446eb7b7cf",
                    "type": "string"
                },
                "limit": {
                    "example": "100",
                    "type": "string"
                },
                "links": {
                    "$ref": "#/definitions/controllers.BudgetLinks"
                },
                "month": {
                    "example": 3,
                    "type": "integer"
                },
                "remaining": {
                    "description": "Negative when the budget is exceeded",
                    "example": "80",
                    "type": "string"
                },
                "spent": {
                    "example": "20",
                    "type": "string"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/types.PeriodType"
                        }
                    ],
                    "example": "monthly"
                },
                "utilizationPercent": {
                    "example": "20.00%",
                    "type": "string"
                },
                "year": {
                    "example": 2024,
                    "type": "integer"
                }
            }
        },
        "controllers.UtilizationListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "items": {
                        "$ref": "#/definitions/controllers.Utilization"
                    },
                    "type": "array"
                }
            }
        },
        "httputil.HTTPError": {
            "type": "object",
            "properties": {
                "error": {
                    "example": "the request contains invalid data",
                    "type": "string"
                },
                "fields": {
                    "additionalProperties": {
                        "type": "string"
                    },
                    "description": "Messages for invalid fields, keyed by field name",
                    "type": "object"
                }
            }
        },
        "models.PaymentMethod": {
            "type": "string",
            "enum": [
                "cash",
                "card",
                "upi",
                "other"
            ],
            "x-enum-varnames": [
                "PaymentCash",
                "PaymentCard",
                "PaymentUPI",
                "PaymentOther"
            ]
        },
        "models.TransactionType": {
            "type": "string",
            "enum": [
                "income",
                "expense"
            ],
            "x-enum-varnames": [
                "TransactionIncome",
                "TransactionExpense"
            ]
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "auth": {
                    "description": "Registration, login and the current user",
                    "example": "https://example.com/api/auth",
                    "type": "string"
                },
                "budgets": {
                    "description": "Budgets of the current user",
                    "example": "https://example.com/api/budgets",
                    "type": "string"
                },
                "docs": {
                    "description": "Swagger API documentation",
                    "example": "https://example.com/api/docs/index.html",
                    "type": "string"
                },
                "healthz": {
                    "description": "Health check",
                    "example": "https://example.com/api/healthz",
                    "type": "string"
                },
                "metrics": {
                    "description": "Prometheus metrics",
                    "example": "https://example.com/api/metrics",
                    "type": "string"
                },
                "transactions": {
                    "description": "Transactions of the current user",
                    "example": "https://example.com/api/transactions",
                    "type": "string"
                },
                "version": {
                    "description": "Version of the API",
                    "example": "https://example.com/api/version",
                    "type": "string"
                }
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.RootLinks"
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "description": "the running version of the FinTrack backend",
                    "example": "1.1.0",
                    "type": "string"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data object for the version",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.VersionObject"
                        }
                    ]
                }
            }
        },
        "types.PeriodType": {
            "type": "string",
            "enum": [
                "monthly",
                "yearly"
            ],
            "x-enum-varnames": [
                "PeriodMonthly",
                "PeriodYearly"
            ]
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
