package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finovabank/direct_debit_engine/internal/apperrors"
	portssvc "github.com/finovabank/direct_debit_engine/internal/core/ports/services"
	"github.com/finovabank/direct_debit_engine/internal/dto"
	"github.com/finovabank/direct_debit_engine/internal/middleware"
)

// RegisterMovementRoutes wires the movement ledger read endpoints.
func RegisterMovementRoutes(rg *gin.RouterGroup, movementSvc portssvc.MovementSvcFacade) {
	rg.GET("/customers/:customerID/movements", listMovementsByCustomer(movementSvc))
}

func listMovementsByCustomer(movementSvc portssvc.MovementSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		customerID := c.Param("customerID")

		limit := 0
		if limitStr := c.Query("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
				return
			}
			limit = parsed
		}

		var nextToken *string
		if token := c.Query("nextToken"); token != "" {
			nextToken = &token
		}

		movements, newToken, err := movementSvc.ListMovementsByCustomer(c.Request.Context(), customerID, limit, nextToken)
		if err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to list movements", slog.String("customer_id", customerID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
			return
		}

		c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements, newToken))
	}
}
