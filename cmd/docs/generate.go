package docs

//go:generate swag init --parseInternal -d ../.. -g cmd/forecast_backend/main.go -o .
