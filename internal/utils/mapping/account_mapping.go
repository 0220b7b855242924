package mapping

import (
	"github.com/finovabank/direct_debit_engine/internal/core/domain"
	"github.com/finovabank/direct_debit_engine/internal/models"
)

// ToDomainAccount converts a database account to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		CustomerID:   m.CustomerID,
		IBAN:         m.IBAN,
		CurrencyCode: m.CurrencyCode,
		Balance:      m.Balance,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
