package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finovabank/direct_debit_engine/internal/core/domain"
)

// MovementResponse defines the data returned for a single ledger entry.
type MovementResponse struct {
	MovementID       string              `json:"movementID"`
	CustomerID       string              `json:"customerID"`
	Kind             domain.MovementKind `json:"kind"`
	Amount           decimal.Decimal     `json:"amount"`
	Concept          string              `json:"concept"`
	AccountIBAN      string              `json:"accountIBAN"`
	CounterpartyIBAN string              `json:"counterpartyIBAN,omitempty"`
	MandatePublicID  string              `json:"mandatePublicID,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// ListMovementsResponse wraps a page of movements with the pagination token.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToMovementResponse converts a domain.Movement to MovementResponse DTO
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:       m.MovementID,
		CustomerID:       m.CustomerID,
		Kind:             m.Kind,
		Amount:           m.Amount,
		Concept:          m.Concept,
		AccountIBAN:      m.AccountIBAN,
		CounterpartyIBAN: m.CounterpartyIBAN,
		MandatePublicID:  m.MandatePublicID,
		CreatedAt:        m.CreatedAt,
	}
}

// ToListMovementsResponse builds the paginated response DTO.
func ToListMovementsResponse(movements []domain.Movement, nextToken *string) ListMovementsResponse {
	out := make([]MovementResponse, 0, len(movements))
	for i := range movements {
		out = append(out, ToMovementResponse(&movements[i]))
	}
	return ListMovementsResponse{Movements: out, NextToken: nextToken}
}
