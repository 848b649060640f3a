package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hzkfs012/zapatoofficial/internal/models"
	"github.com/hzkfs012/zapatoofficial/internal/services"
	"github.com/hzkfs012/zapatoofficial/pkg/utils"
)

// ExpenseHandler holds the expense and report services.
type ExpenseHandler struct {
	expenseService services.ExpenseService
	reportService  services.ReportService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(es services.ExpenseService, rs services.ReportService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: es, reportService: rs}
}

// CreateExpense handles recording a new expense.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req services.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateExpense: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	expense, err := h.expenseService.CreateExpense(req)
	if err != nil {
		utils.LogError(err, "CreateExpense: Error from expenseService.CreateExpense")
		if errors.Is(err, services.ErrExpenseValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record expense.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// GetExpenses handles the paginated expense list.
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	expenses, totalCount, err := h.expenseService.GetExpenses(models.ExpenseFilters{Page: page, PageSize: pageSize})
	if err != nil {
		utils.LogError(err, "GetExpenses: Error from expenseService.GetExpenses")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch expenses.", "Internal error"))
		return
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      expenses,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// DeleteExpense handles deleting an expense.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id := c.Param("id")

	if err := h.expenseService.DeleteExpense(id); err != nil {
		utils.LogError(err, "DeleteExpense: Error from expenseService.DeleteExpense for ID "+id)
		if errors.Is(err, services.ErrExpenseNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Expense not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete expense.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// GetExpenseChart streams a PNG pie chart of expense totals by category.
func (h *ExpenseHandler) GetExpenseChart(c *gin.Context) {
	req := services.StatsRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	chartBytes, err := h.reportService.GenerateExpenseChart(req)
	if err != nil {
		utils.LogError(err, "GetExpenseChart: Error from reportService.GenerateExpenseChart")
		if errors.Is(err, services.ErrInvalidDateRange) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else if errors.Is(err, services.ErrNoExpenseData) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No expense data for the requested period.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate chart.", "Internal error"))
		}
		return
	}

	c.Data(http.StatusOK, "image/png", chartBytes)
}
