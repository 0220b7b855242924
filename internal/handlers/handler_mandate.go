package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finovabank/direct_debit_engine/internal/apperrors"
	portssvc "github.com/finovabank/direct_debit_engine/internal/core/ports/services"
	"github.com/finovabank/direct_debit_engine/internal/dto"
	"github.com/finovabank/direct_debit_engine/internal/middleware"
)

// RegisterMandateRoutes wires the administrative mandate endpoints.
func RegisterMandateRoutes(rg *gin.RouterGroup, mandateSvc portssvc.MandateSvcFacade) {
	mandates := rg.Group("/mandates")
	{
		mandates.POST("", createMandate(mandateSvc))
		mandates.POST("/:mandateID/activate", setMandateActive(mandateSvc, true))
		mandates.POST("/:mandateID/deactivate", setMandateActive(mandateSvc, false))
	}

	rg.GET("/customers/:customerID/mandates", listMandatesByCustomer(mandateSvc))
}

func createMandate(mandateSvc portssvc.MandateSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		var req dto.CreateMandateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Invalid create mandate request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		mandate, err := mandateSvc.CreateMandate(c.Request.Context(), req, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to create mandate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create mandate"})
			return
		}

		c.JSON(http.StatusCreated, dto.ToMandateResponse(mandate))
	}
}

func listMandatesByCustomer(mandateSvc portssvc.MandateSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		customerID := c.Param("customerID")

		mandates, err := mandateSvc.ListMandatesByCustomer(c.Request.Context(), customerID)
		if err != nil {
			logger.Error("Failed to list mandates", slog.String("customer_id", customerID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list mandates"})
			return
		}

		c.JSON(http.StatusOK, dto.ToMandateResponses(mandates))
	}
}

func setMandateActive(mandateSvc portssvc.MandateSvcFacade, active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		mandateID := c.Param("mandateID")

		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		mandate, err := mandateSvc.SetMandateActive(c.Request.Context(), mandateID, active, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Mandate not found"})
				return
			}
			logger.Error("Failed to update mandate", slog.String("mandate_id", mandateID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mandate"})
			return
		}

		c.JSON(http.StatusOK, dto.ToMandateResponse(mandate))
	}
}
