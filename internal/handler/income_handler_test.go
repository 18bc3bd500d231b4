package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/dafibh/fortuna/fortuna-web/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIncomeHandler() (*echo.Echo, *IncomeHandler, *testutil.MockIncomeRepository) {
	e := echo.New()
	e.Validator = Validator{}
	incomeRepo := testutil.NewMockIncomeRepository()
	incomeRepo.Incomes = []*domain.Income{
		{ID: "10", Description: "Salary", Value: domain.MustAmount("5000"), Date: domain.NewDate(2025, 6, 5)},
		{ID: "11", Description: "Freelance", Value: domain.MustAmount("800"), Date: domain.NewDate(2025, 5, 20)},
	}
	incomeRepo.NextID = 12
	return e, NewIncomeHandler(service.NewIncomeService(incomeRepo)), incomeRepo
}

func TestGetIncomes(t *testing.T) {
	e, handler, _ := setupIncomeHandler()

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/incomes?month=2025-06", "")
	setupAuthContext(c, "tok")

	require.NoError(t, handler.GetIncomes(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var incomes []domain.Income
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &incomes))
	require.Len(t, incomes, 1)
	assert.Equal(t, "Salary", incomes[0].Description)
}

func TestCreateIncome(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		e, handler, repo := setupIncomeHandler()

		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/incomes", `{"description":"Bonus","value":1200,"date":"2025-06-30"}`)
		setupAuthContext(c, "tok")

		require.NoError(t, handler.CreateIncome(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Len(t, repo.Incomes, 3)
	})

	t.Run("missing description", func(t *testing.T) {
		e, handler, repo := setupIncomeHandler()

		c, rec := newJSONContext(e, http.MethodPost, "/api/v1/incomes", `{"value":1200,"date":"2025-06-30"}`)
		setupAuthContext(c, "tok")

		require.NoError(t, handler.CreateIncome(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEmpty(t, decodeProblem(t, rec).Errors)
		assert.Len(t, repo.Incomes, 2)
	})
}

func TestUpdateIncome_NotFound(t *testing.T) {
	e, handler, _ := setupIncomeHandler()

	c, rec := newJSONContext(e, http.MethodPut, "/api/v1/incomes/99", `{"description":"Bonus","value":1200,"date":"2025-06-30"}`)
	c.SetParamNames("id")
	c.SetParamValues("99")
	setupAuthContext(c, "tok")

	require.NoError(t, handler.UpdateIncome(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteIncome(t *testing.T) {
	e, handler, repo := setupIncomeHandler()

	c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/incomes/11", "")
	c.SetParamNames("id")
	c.SetParamValues("11")
	setupAuthContext(c, "tok")

	require.NoError(t, handler.DeleteIncome(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, repo.Incomes, 1)
}
