package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contaflow-api/internal/application/tasks"
	apphttp "github.com/jhoicas/contaflow-api/internal/interfaces/http"
	"github.com/jhoicas/contaflow-api/pkg/logger"
)

// buildRPCApp monta solo la ruta de generación; la validación de months_ahead
// ocurre antes de tocar persistencia, así que los repos pueden ser nil.
func buildRPCApp() *fiber.App {
	genUC := tasks.NewGenerationUseCase(nil, nil, nil, nil, nil, logger.FromZerolog(zerolog.Nop()))
	h := apphttp.NewRPCHandler(genUC, nil, nil)
	app := fiber.New()
	app.Post("/rpc/generate_tasks_for_company", h.GenerateTasks)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// months_ahead fuera de [1,36] debe mapear a 400 VALIDATION, nunca a 500.
func TestGenerateTasks_MonthsAheadFueraDeRango_Retorna400(t *testing.T) {
	app := buildRPCApp()

	for _, body := range []string{
		`{"company_id":"c1","months_ahead":0}`,
		`{"company_id":"c1","months_ahead":-1}`,
		`{"company_id":"c1","months_ahead":37}`,
	} {
		resp := postJSON(t, app, "/rpc/generate_tasks_for_company", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body=%s", body)

		payload, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Contains(t, string(payload), "VALIDATION", "body=%s", body)
	}
}

func TestGenerateTasks_StartDateMalformada_Retorna400(t *testing.T) {
	app := buildRPCApp()

	resp := postJSON(t, app, "/rpc/generate_tasks_for_company", `{"company_id":"c1","start_date":"15-03-2026"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateTasks_SinCompanyID_Retorna400(t *testing.T) {
	app := buildRPCApp()

	resp := postJSON(t, app, "/rpc/generate_tasks_for_company", `{}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
