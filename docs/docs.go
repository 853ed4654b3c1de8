// Package docs holds the generated OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/erp/partners"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/partners": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "partners"
                ],
                "summary": "List trading partners",
                "operationId": "listPartners",
                "parameters": [
                    {
                        "enum": [
                            "SUPPLIER",
                            "CUSTOMER",
                            "PARTNER"
                        ],
                        "type": "string",
                        "name": "type",
                        "in": "query",
                        "description": "Partner type"
                    },
                    {
                        "enum": [
                            "ACTIVE",
                            "PENDING_APPROVAL",
                            "INACTIVE",
                            "SUSPENDED"
                        ],
                        "type": "string",
                        "name": "status",
                        "in": "query",
                        "description": "Partner status"
                    },
                    {
                        "type": "string",
                        "name": "search",
                        "in": "query",
                        "description": "Search in name, tax id and description"
                    },
                    {
                        "type": "integer",
                        "default": 1,
                        "name": "page",
                        "in": "query",
                        "description": "Page number"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "name": "page_size",
                        "in": "query",
                        "description": "Page size"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.PartnerListEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "partners"
                ],
                "summary": "Create a trading partner",
                "operationId": "createPartner",
                "parameters": [
                    {
                        "description": "Partner",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/partner.CreatePartnerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.PartnerEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/partners/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "partners"
                ],
                "summary": "Get a trading partner",
                "operationId": "getPartner",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.PartnerEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "partners"
                ],
                "summary": "Update a trading partner",
                "operationId": "updatePartner",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/partner.UpdatePartnerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.PartnerEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "partners"
                ],
                "summary": "Delete a trading partner",
                "operationId": "deletePartner",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.MessageEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/partners/{id}/transactions": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "Get the ledger of a partner",
                "operationId": "getPartnerTransactions",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.LedgerEnvelope"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "Book a claim or payable",
                "operationId": "addPartnerTransaction",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Client key for safe retries",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "description": "Entry",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/partner.AddEntryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.LedgerEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/partners/{id}/transactions/{entryId}/status": {
            "patch": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "Settle or reopen a ledger entry",
                "operationId": "updatePartnerTransactionStatus",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Entry ID",
                        "name": "entryId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New status",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/partner.UpdateEntryStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.LedgerEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/partners/{id}/balance": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "ledger"
                ],
                "summary": "Get the balance of a partner",
                "operationId": "getPartnerBalance",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BalanceEnvelope"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/partners/{id}/contacts": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contacts"
                ],
                "summary": "List the contacts of a partner",
                "operationId": "listPartnerContacts",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ContactsEnvelope"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contacts"
                ],
                "summary": "Add a contact",
                "operationId": "addPartnerContact",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Contact",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/partner.ContactRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.ContactsEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/partners/{id}/contacts/{index}": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contacts"
                ],
                "summary": "Replace the contact at an index",
                "operationId": "updatePartnerContact",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Zero-based position",
                        "name": "index",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Contact",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/partner.ContactRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ContactsEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contacts"
                ],
                "summary": "Remove the contact at an index",
                "operationId": "deletePartnerContact",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Zero-based position",
                        "name": "index",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ContactsEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/partners/{id}/contacts/legacy-text": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contacts"
                ],
                "summary": "Render contacts in the legacy text format",
                "operationId": "getPartnerContactsText",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.TextEnvelope"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contacts"
                ],
                "summary": "Replace contacts from the legacy text format",
                "operationId": "replacePartnerContactsText",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Legacy text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LegacyTextRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ContactsEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/partners/{id}/addresses": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "addresses"
                ],
                "summary": "List the addresses of a partner",
                "operationId": "listPartnerAddresses",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.AddressesEnvelope"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "addresses"
                ],
                "summary": "Add an address",
                "operationId": "addPartnerAddress",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Address",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/partner.AddressRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.AddressesEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/partners/{id}/addresses/{index}": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "addresses"
                ],
                "summary": "Replace the address at an index",
                "operationId": "updatePartnerAddress",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Zero-based position",
                        "name": "index",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Address",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/partner.AddressRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.AddressesEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "addresses"
                ],
                "summary": "Remove the address at an index",
                "operationId": "deletePartnerAddress",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Zero-based position",
                        "name": "index",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.AddressesEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/partners/{id}/addresses/legacy-text": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "addresses"
                ],
                "summary": "Render addresses in the legacy text format",
                "operationId": "getPartnerAddressesText",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.TextEnvelope"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "addresses"
                ],
                "summary": "Replace addresses from the legacy text format",
                "operationId": "replacePartnerAddressesText",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Partner ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Legacy text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LegacyTextRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.AddressesEnvelope"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": false
                },
                "message": {
                    "type": "string"
                },
                "code": {
                    "type": "string",
                    "example": "ERR_NOT_FOUND"
                },
                "requestId": {
                    "type": "string"
                }
            }
        },
        "dto.Pagination": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "pageSize": {
                    "type": "integer"
                },
                "totalPages": {
                    "type": "integer"
                }
            }
        },
        "dto.LegacyTextRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                }
            }
        },
        "partner.CreatePartnerRequest": {
            "type": "object",
            "required": [
                "name",
                "type"
            ],
            "properties": {
                "name": {
                    "type": "string",
                    "maxLength": 200,
                    "example": "Acme GmbH"
                },
                "type": {
                    "type": "string",
                    "example": "SUPPLIER"
                },
                "taxId": {
                    "type": "string"
                },
                "paymentTerms": {
                    "type": "string",
                    "example": "30 Tage"
                },
                "about": {
                    "type": "string"
                },
                "corporateImageUrl": {
                    "type": "string"
                }
            }
        },
        "partner.UpdatePartnerRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "taxId": {
                    "type": "string"
                },
                "paymentTerms": {
                    "type": "string"
                },
                "about": {
                    "type": "string"
                },
                "corporateImageUrl": {
                    "type": "string"
                }
            }
        },
        "partner.ContactRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "partner.ContactResponse": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "partner.AddressRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "street": {
                    "type": "string"
                },
                "zipCode": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                }
            }
        },
        "partner.AddressResponse": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "street": {
                    "type": "string"
                },
                "zipCode": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                }
            }
        },
        "partner.AddEntryRequest": {
            "type": "object",
            "required": [
                "type"
            ],
            "properties": {
                "type": {
                    "type": "string",
                    "example": "CLAIM"
                },
                "amount": {
                    "type": "number",
                    "example": 150.0
                },
                "status": {
                    "type": "string",
                    "example": "OPEN"
                },
                "purpose": {
                    "type": "string"
                },
                "reference": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "example": "2024-05-17"
                }
            }
        },
        "partner.UpdateEntryStatusRequest": {
            "type": "object",
            "required": [
                "status"
            ],
            "properties": {
                "status": {
                    "type": "string",
                    "example": "SETTLED"
                }
            }
        },
        "partner.PartnerResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "typeLabel": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "statusLabel": {
                    "type": "string"
                },
                "taxId": {
                    "type": "string"
                },
                "paymentTerms": {
                    "type": "string"
                },
                "about": {
                    "type": "string"
                },
                "corporateImageUrl": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "openClaims": {
                    "type": "number",
                    "example": 150.0
                },
                "openPayables": {
                    "type": "number",
                    "example": 150.0
                },
                "version": {
                    "type": "integer"
                },
                "contacts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/partner.ContactResponse"
                    }
                },
                "addresses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/partner.AddressResponse"
                    }
                }
            }
        },
        "partner.PartnerListResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "typeLabel": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "statusLabel": {
                    "type": "string"
                },
                "taxId": {
                    "type": "string"
                },
                "about": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "openClaims": {
                    "type": "number",
                    "example": 150.0
                },
                "openPayables": {
                    "type": "number",
                    "example": 150.0
                }
            }
        },
        "partner.PartnerSummary": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "typeLabel": {
                    "type": "string"
                },
                "statusLabel": {
                    "type": "string"
                }
            }
        },
        "partner.TransactionResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "typeLabel": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "statusLabel": {
                    "type": "string"
                },
                "purpose": {
                    "type": "string"
                },
                "reference": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "formattedDate": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "amount": {
                    "type": "number",
                    "example": 150.0
                },
                "signedAmount": {
                    "type": "number",
                    "example": 150.0
                }
            }
        },
        "partner.FinancialOverviewResponse": {
            "type": "object",
            "properties": {
                "openClaims": {
                    "type": "number",
                    "example": 150.0
                },
                "settledClaims": {
                    "type": "number",
                    "example": 150.0
                },
                "openPayables": {
                    "type": "number",
                    "example": 150.0
                },
                "settledPayables": {
                    "type": "number",
                    "example": 150.0
                },
                "totalClaims": {
                    "type": "number",
                    "example": 150.0
                },
                "totalPayables": {
                    "type": "number",
                    "example": 150.0
                },
                "netBalance": {
                    "type": "number",
                    "example": 150.0
                },
                "transactionCount": {
                    "type": "integer"
                },
                "recentTransactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/partner.TransactionResponse"
                    }
                }
            }
        },
        "partner.BalanceResponse": {
            "type": "object",
            "properties": {
                "partnerId": {
                    "type": "string"
                },
                "netBalance": {
                    "type": "number",
                    "example": 150.0
                },
                "totalClaims": {
                    "type": "number",
                    "example": 150.0
                },
                "totalPayables": {
                    "type": "number",
                    "example": 150.0
                },
                "openClaims": {
                    "type": "number",
                    "example": 150.0
                },
                "openPayables": {
                    "type": "number",
                    "example": 150.0
                }
            }
        },
        "handler.PartnerEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "message": {
                    "type": "string"
                },
                "partner": {
                    "$ref": "#/definitions/partner.PartnerResponse"
                }
            }
        },
        "handler.PartnerListEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "message": {
                    "type": "string"
                },
                "partners": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/partner.PartnerListResponse"
                    }
                },
                "pagination": {
                    "$ref": "#/definitions/dto.Pagination"
                }
            }
        },
        "handler.ContactsEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "message": {
                    "type": "string"
                },
                "contacts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/partner.ContactResponse"
                    }
                }
            }
        },
        "handler.AddressesEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "message": {
                    "type": "string"
                },
                "addresses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/partner.AddressResponse"
                    }
                }
            }
        },
        "handler.LedgerEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "message": {
                    "type": "string"
                },
                "partner": {
                    "$ref": "#/definitions/partner.PartnerSummary"
                },
                "financialOverview": {
                    "$ref": "#/definitions/partner.FinancialOverviewResponse"
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/partner.TransactionResponse"
                    }
                }
            }
        },
        "handler.BalanceEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "message": {
                    "type": "string"
                },
                "balance": {
                    "$ref": "#/definitions/partner.BalanceResponse"
                }
            }
        },
        "handler.TextEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "message": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                }
            }
        },
        "handler.MessageEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "message": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Trading Partners API",
	Description:      "Handelspartner mit Kontakten, Adressen und Forderungs-/Verbindlichkeitsbuch",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
