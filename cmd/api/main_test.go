package main

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/despensa-api/internal/infrastructure/memory"
	"github.com/jhoicas/despensa-api/pkg/config"
	"github.com/jhoicas/despensa-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El working directory del test no contiene docs/, así que esto ejercita el
// arranque con swagger.json ausente: la API debe levantar igual, sin la UI.
func TestNewServer_ArrancaSinSwaggerJSON(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	app := newServer(cfg, log, memory.NewItemRepository())

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNewServer_RutasDeAPIRegistradas(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	app := newServer(cfg, log, memory.NewItemRepository())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/items/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/gap/summary", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
