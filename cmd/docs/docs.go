// Package docs holds the Swagger 2.0 document served under /swagger.
// It mirrors the handler annotations; run go generate in this directory after changing them.
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
        "/accounts/{accountID}/estimates": {
            "get": {
                "description": "Predicts every variable expense of the account for a month and explains each prediction",
                "produces": ["application/json"],
                "tags": ["forecasts"],
                "summary": "Variable expense estimates",
                "parameters": [
                    {"type": "string", "description": "Account ID", "name": "accountID", "in": "path", "required": true},
                    {"type": "integer", "description": "Year", "name": "year", "in": "query", "required": true},
                    {"type": "integer", "description": "Month (1-12)", "name": "month", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.EstimatesResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Failed to estimate expenses", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/accounts/{accountID}/forecast": {
            "get": {
                "description": "Simulates the account balance day by day for a calendar month",
                "produces": ["application/json"],
                "tags": ["forecasts"],
                "summary": "Forecast one month",
                "parameters": [
                    {"type": "string", "description": "Account ID", "name": "accountID", "in": "path", "required": true},
                    {"type": "integer", "description": "Year", "name": "year", "in": "query", "required": true},
                    {"type": "integer", "description": "Month (1-12)", "name": "month", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ForecastResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Failed to generate forecast", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/accounts/{accountID}/forecast/six-month": {
            "get": {
                "description": "Summarises six consecutive months starting at year/month, with a risk status per month",
                "produces": ["application/json"],
                "tags": ["forecasts"],
                "summary": "Forecast six months",
                "parameters": [
                    {"type": "string", "description": "Account ID", "name": "accountID", "in": "path", "required": true},
                    {"type": "integer", "description": "Start year", "name": "year", "in": "query", "required": true},
                    {"type": "integer", "description": "Start month (1-12)", "name": "month", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SixMonthForecast"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Failed to generate forecast", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/accounts/{accountID}/recommendations": {
            "get": {
                "description": "Ranked suggestions from the six-month forecast and spending trends, plus a contribution adjustment",
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Recommendations",
                "parameters": [
                    {"type": "string", "description": "Account ID", "name": "accountID", "in": "path", "required": true},
                    {"type": "integer", "description": "Year", "name": "year", "in": "query", "required": true},
                    {"type": "integer", "description": "Month (1-12)", "name": "month", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.RecommendationReport"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Failed to build recommendations", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/accounts/{accountID}/trends": {
            "get": {
                "description": "Compares 3- and 6-month averages of every variable expense and flags spikes in the given month",
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Spending trends",
                "parameters": [
                    {"type": "string", "description": "Account ID", "name": "accountID", "in": "path", "required": true},
                    {"type": "integer", "description": "Year", "name": "year", "in": "query", "required": true},
                    {"type": "integer", "description": "Month (1-12)", "name": "month", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ExpenseTrend"}}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Failed to detect trends", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/expenses/{expenseID}/period-trend": {
            "post": {
                "description": "Compares spend so far in a billing period against the expected pace and predicts the rest of the period",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Billing period trend",
                "parameters": [
                    {"type": "string", "description": "Recurring expense ID", "name": "expenseID", "in": "path", "required": true},
                    {"description": "Period and current balance", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PeriodTrendRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PeriodTrendResponse"}},
                    "400": {"description": "Invalid input or expense is not variable", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Expense not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Failed to forecast period", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Liveness check; does not touch the database.",
                "produces": ["application/json"],
                "tags": ["root"],
                "summary": "Show the status of server.",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "dto.PeriodTrendRequest": {
            "type": "object",
            "properties": {
                "periodStart": {"type": "string", "example": "2025-06-01"},
                "periodEnd": {"type": "string", "example": "2025-06-30"},
                "currentBalance": {"type": "string", "example": "-412.50"},
                "asOf": {"type": "string", "example": "2025-06-10"}
            }
        },
        "dto.PeriodTrendResponse": {
            "type": "object",
            "properties": {
                "expenseID": {"type": "string"},
                "periodStart": {"type": "string"},
                "periodEnd": {"type": "string"},
                "asOf": {"type": "string"},
                "totalDays": {"type": "integer"},
                "daysElapsed": {"type": "integer"},
                "daysRemaining": {"type": "integer"},
                "baselineEstimate": {"type": "number"},
                "usedShapeData": {"type": "boolean"},
                "fractionElapsed": {"type": "number"},
                "expectedToDate": {"type": "number"},
                "actualToDate": {"type": "number"},
                "trendRatio": {"type": "number"},
                "status": {"type": "string", "enum": ["Trending Higher", "Trending Lower", "On Track"]},
                "currentDailyRate": {"type": "number"},
                "recentDailyRate": {"type": "number"},
                "baseDailyRate": {"type": "number"},
                "dailyPredictions": {"type": "array", "items": {"$ref": "#/definitions/dto.DailyPredictionResponse"}},
                "predictedRemaining": {"type": "number"},
                "predictedTotal": {"type": "number"}
            }
        },
        "dto.DailyPredictionResponse": {
            "type": "object",
            "properties": {"date": {"type": "string"}, "amount": {"type": "number"}}
        },
        "dto.ForecastResponse": {
            "type": "object",
            "properties": {
                "accountID": {"type": "string"},
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "safeMinimum": {"type": "number"},
                "startingBalance": {"type": "number"},
                "endingBalance": {"type": "number"},
                "lowestBalance": {"type": "number"},
                "lowestBalanceDate": {"type": "string"},
                "daysBelowSafeMinimum": {"type": "integer"},
                "days": {"type": "array", "items": {"$ref": "#/definitions/dto.DayForecastResponse"}}
            }
        },
        "dto.DayForecastResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "events": {"type": "array", "items": {"$ref": "#/definitions/dto.CashEventResponse"}},
                "openingBalance": {"type": "number"},
                "netChange": {"type": "number"},
                "closingBalance": {"type": "number"},
                "belowSafeMinimum": {"type": "boolean"}
            }
        },
        "dto.CashEventResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "amount": {"type": "number"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "type": {"type": "string", "enum": ["income", "fixed_expense", "variable_expense"]},
                "origin": {"type": "string", "enum": ["configured", "estimated"]},
                "actualized": {"type": "boolean"},
                "incomeRuleID": {"type": "string"},
                "recurringExpenseID": {"type": "string"},
                "transactionID": {"type": "string"},
                "forecastedAmount": {"type": "number"},
                "variance": {"type": "number"}
            }
        },
        "dto.EstimatesResponse": {
            "type": "object",
            "properties": {
                "accountID": {"type": "string"},
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "estimates": {"type": "object", "additionalProperties": {"type": "number"}},
                "details": {"type": "array", "items": {"$ref": "#/definitions/domain.VariableExpenseEstimate"}}
            }
        },
        "domain.VariableExpenseEstimate": {
            "type": "object",
            "properties": {
                "expenseID": {"type": "string"},
                "name": {"type": "string"},
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "nominal": {"type": "number"},
                "amount": {"type": "number"},
                "dataPoints": {"type": "integer"},
                "usedFallback": {"type": "boolean"},
                "seasonal": {"type": "number"},
                "recency": {"type": "number"},
                "trendSlope": {"type": "number"},
                "base": {"type": "number"}
            }
        },
        "domain.MonthSummary": {
            "type": "object",
            "properties": {
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "income": {"type": "number"},
                "fixedExpenses": {"type": "number"},
                "variableExpenses": {"type": "number"},
                "totalExpenses": {"type": "number"},
                "openingBalance": {"type": "number"},
                "closingBalance": {"type": "number"},
                "lowestBalance": {"type": "number"},
                "lowestBalanceDate": {"type": "string"},
                "daysBelowSafeMinimum": {"type": "integer"},
                "status": {"type": "string", "enum": ["safe", "warning", "danger"]}
            }
        },
        "domain.SixMonthForecast": {
            "type": "object",
            "properties": {
                "accountID": {"type": "string"},
                "safeMinimum": {"type": "number"},
                "months": {"type": "array", "items": {"$ref": "#/definitions/domain.MonthSummary"}},
                "lowestBalance": {"type": "number"},
                "monthsAtRisk": {"type": "integer"}
            }
        },
        "domain.ExpenseTrend": {
            "type": "object",
            "properties": {
                "expenseID": {"type": "string"},
                "name": {"type": "string"},
                "category": {"type": "string"},
                "currentMonthTotal": {"type": "number"},
                "threeMonthAverage": {"type": "number"},
                "sixMonthAverage": {"type": "number"},
                "percentChange": {"type": "number"},
                "trend": {"type": "string", "enum": ["increasing", "decreasing", "stable"]},
                "alert": {"type": "boolean"},
                "currentVsSixMonthPercent": {"type": "number"},
                "budgetGoal": {"type": "number"}
            }
        },
        "domain.Recommendation": {
            "type": "object",
            "properties": {
                "priority": {"type": "string", "enum": ["high", "medium", "low"]},
                "category": {"type": "string"},
                "title": {"type": "string"},
                "message": {"type": "string"},
                "amount": {"type": "number"}
            }
        },
        "domain.ContributionAdjustment": {
            "type": "object",
            "properties": {
                "currentAnnual": {"type": "number"},
                "proposedAnnual": {"type": "number"},
                "change": {"type": "number"},
                "reason": {"type": "string"}
            }
        },
        "domain.RecommendationReport": {
            "type": "object",
            "properties": {
                "accountID": {"type": "string"},
                "recommendations": {"type": "array", "items": {"$ref": "#/definitions/domain.Recommendation"}},
                "contribution": {"$ref": "#/definitions/domain.ContributionAdjustment"}
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
	Title:            "Cash-flow Forecast API",
	Description:      "Day-by-day balance forecasts, variable expense estimates and spending insights.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
