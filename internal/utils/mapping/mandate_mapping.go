package mapping

import (
	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	"github.com/finovabank/direct_debit_engine/internal/models"
)

// ToModelMandate converts a domain.Mandate to its database representation.
func ToModelMandate(d domain.Mandate) models.Mandate {
	return models.Mandate{
		MandateID:      d.MandateID,
		PublicID:       d.PublicID,
		CustomerID:     d.CustomerID,
		CreditorName:   d.CreditorName,
		PayerIBAN:      d.PayerIBAN,
		CreditorIBAN:   d.CreditorIBAN,
		Amount:         d.Amount,
		Periodicity:    string(d.Periodicity),
		IsActive:       d.IsActive,
		StartsAt:       d.StartsAt,
		LastExecutedAt: d.LastExecutedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMandate converts a database mandate back to the domain representation.
func ToDomainMandate(m models.Mandate) domain.Mandate {
	return domain.Mandate{
		MandateID:      m.MandateID,
		PublicID:       m.PublicID,
		CustomerID:     m.CustomerID,
		CreditorName:   m.CreditorName,
		PayerIBAN:      m.PayerIBAN,
		CreditorIBAN:   m.CreditorIBAN,
		Amount:         m.Amount,
		Periodicity:    domain.Periodicity(m.Periodicity),
		IsActive:       m.IsActive,
		StartsAt:       m.StartsAt,
		LastExecutedAt: m.LastExecutedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
