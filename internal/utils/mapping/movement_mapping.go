package mapping

import (
	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	"github.com/finovabank/direct_debit_engine/internal/models"
)

// ToModelMovement converts a domain.Movement to its database representation.
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:       d.MovementID,
		CustomerID:       d.CustomerID,
		Kind:             string(d.Kind),
		Amount:           d.Amount,
		Concept:          d.Concept,
		AccountIBAN:      d.AccountIBAN,
		CounterpartyIBAN: d.CounterpartyIBAN,
		MandatePublicID:  d.MandatePublicID,
		ExecutionID:      d.ExecutionID,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainMovement converts a database movement back to the domain representation.
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:       m.MovementID,
		CustomerID:       m.CustomerID,
		Kind:             domain.MovementKind(m.Kind),
		Amount:           m.Amount,
		Concept:          m.Concept,
		AccountIBAN:      m.AccountIBAN,
		CounterpartyIBAN: m.CounterpartyIBAN,
		MandatePublicID:  m.MandatePublicID,
		ExecutionID:      m.ExecutionID,
		CreatedAt:        m.CreatedAt,
	}
}
