package http

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/domain"
)

func TestParseFecha(t *testing.T) {
	fecha, err := parseFecha("2024-11-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC), fecha)

	_, err = parseFecha("05/11/2024")
	assert.Error(t, err)

	_, err = parseFecha("")
	assert.Error(t, err)
}

// Cada error sentinela del dominio mapea a su código HTTP, incluso envuelto
// con fmt.Errorf.
func TestRespondDomainError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidInput, fiber.StatusBadRequest},
		{fmt.Errorf("contexto: %w", domain.ErrInvalidInput), fiber.StatusBadRequest},
		{domain.ErrNotFound, fiber.StatusNotFound},
		{domain.ErrInvalidState, fiber.StatusConflict},
		{domain.ErrCorralOccupied, fiber.StatusConflict},
		{domain.ErrDuplicate, fiber.StatusConflict},
		{domain.ErrDataIntegrity, fiber.StatusUnprocessableEntity},
		{fmt.Errorf("algo inesperado"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		app := fiber.New()
		errCase := tc.err
		app.Get("/x", func(c *fiber.Ctx) error {
			return respondDomainError(c, errCase)
		})
		resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, "error %v", tc.err)
	}
}
