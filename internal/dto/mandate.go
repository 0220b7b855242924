package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finovabank/direct_debit_engine/internal/core/domain"
)

// CreateMandateRequest defines the data needed to register a new mandate.
// Amounts are expressed in minor currency units.
type CreateMandateRequest struct {
	CustomerID   string             `json:"customerID" binding:"required,uuid"`
	CreditorName string             `json:"creditorName" binding:"required"`
	PayerIBAN    string             `json:"payerIBAN" binding:"required,min=15,max=34,alphanum"`
	CreditorIBAN string             `json:"creditorIBAN" binding:"required,min=15,max=34,alphanum"`
	Amount       decimal.Decimal    `json:"amount" binding:"required"`
	Periodicity  domain.Periodicity `json:"periodicity" binding:"required,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	StartsAt     *time.Time         `json:"startsAt"` // Optional, defaults to now
}

// MandateResponse defines the data returned for a mandate.
type MandateResponse struct {
	MandateID      string             `json:"mandateID"`
	PublicID       string             `json:"publicID"`
	CustomerID     string             `json:"customerID"`
	CreditorName   string             `json:"creditorName"`
	PayerIBAN      string             `json:"payerIBAN"`
	CreditorIBAN   string             `json:"creditorIBAN"`
	Amount         decimal.Decimal    `json:"amount"`
	Periodicity    domain.Periodicity `json:"periodicity"`
	IsActive       bool               `json:"isActive"`
	StartsAt       time.Time          `json:"startsAt"`
	LastExecutedAt time.Time          `json:"lastExecutedAt"`
	CreatedAt      time.Time          `json:"createdAt"`
	CreatedBy      string             `json:"createdBy"`
}

// ToMandateResponse converts a domain.Mandate to MandateResponse DTO
func ToMandateResponse(m *domain.Mandate) MandateResponse {
	return MandateResponse{
		MandateID:      m.MandateID,
		PublicID:       m.PublicID,
		CustomerID:     m.CustomerID,
		CreditorName:   m.CreditorName,
		PayerIBAN:      m.PayerIBAN,
		CreditorIBAN:   m.CreditorIBAN,
		Amount:         m.Amount,
		Periodicity:    m.Periodicity,
		IsActive:       m.IsActive,
		StartsAt:       m.StartsAt,
		LastExecutedAt: m.LastExecutedAt,
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
}

// ToMandateResponses converts a slice of domain mandates.
func ToMandateResponses(mandates []domain.Mandate) []MandateResponse {
	out := make([]MandateResponse, 0, len(mandates))
	for i := range mandates {
		out = append(out, ToMandateResponse(&mandates[i]))
	}
	return out
}
