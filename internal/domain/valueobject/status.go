package valueobject

import (
	"strings"

	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
)

type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusApproved ProposalStatus = "approved"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// AllProposalStatuses возвращает статусы в фиксированном порядке отчётов.
func AllProposalStatuses() []ProposalStatus {
	return []ProposalStatus{
		ProposalStatusDraft,
		ProposalStatusSent,
		ProposalStatusApproved,
		ProposalStatusRejected,
	}
}

func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusApproved, ProposalStatusRejected:
		return true
	}
	return false
}

// Label: подпись статуса для документов клиента.
func (s ProposalStatus) Label() string {
	switch s {
	case ProposalStatusDraft:
		return "Rascunho"
	case ProposalStatusSent:
		return "Enviada"
	case ProposalStatusApproved:
		return "Aprovada"
	case ProposalStatusRejected:
		return "Recusada"
	}
	return string(s)
}

// legacyProposalStatuses: значения из хранилища старого фронтенда.
var legacyProposalStatuses = map[string]ProposalStatus{
	"rascunho": ProposalStatusDraft,
	"enviada":  ProposalStatusSent,
	"aprovada": ProposalStatusApproved,
	"recusada": ProposalStatusRejected,
}

func NewProposalStatus(status string) (ProposalStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if legacy, ok := legacyProposalStatuses[normalized]; ok {
		return legacy, nil
	}
	s := ProposalStatus(normalized)
	if !s.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректный статус предложения")
	}
	return s, nil
}

type ServiceCategory string

const (
	ServiceCategoryInfrastructure ServiceCategory = "infrastructure"
	ServiceCategoryHelpdesk       ServiceCategory = "helpdesk"
	ServiceCategoryCloud          ServiceCategory = "cloud"
	ServiceCategoryBackup         ServiceCategory = "backup"
	ServiceCategoryCabling        ServiceCategory = "cabling"
	ServiceCategoryOther          ServiceCategory = "other"
)

func AllServiceCategories() []ServiceCategory {
	return []ServiceCategory{
		ServiceCategoryInfrastructure,
		ServiceCategoryHelpdesk,
		ServiceCategoryCloud,
		ServiceCategoryBackup,
		ServiceCategoryCabling,
		ServiceCategoryOther,
	}
}

func (c ServiceCategory) IsValid() bool {
	switch c {
	case ServiceCategoryInfrastructure, ServiceCategoryHelpdesk, ServiceCategoryCloud,
		ServiceCategoryBackup, ServiceCategoryCabling, ServiceCategoryOther:
		return true
	}
	return false
}

func (c ServiceCategory) Label() string {
	switch c {
	case ServiceCategoryInfrastructure:
		return "Infraestrutura"
	case ServiceCategoryHelpdesk:
		return "Helpdesk"
	case ServiceCategoryCloud:
		return "Nuvem"
	case ServiceCategoryBackup:
		return "Backup"
	case ServiceCategoryCabling:
		return "Cabeamento"
	case ServiceCategoryOther:
		return "Outros"
	}
	return string(c)
}

var legacyServiceCategories = map[string]ServiceCategory{
	"infraestrutura": ServiceCategoryInfrastructure,
	"nuvem":          ServiceCategoryCloud,
	"cabeamento":     ServiceCategoryCabling,
	"outros":         ServiceCategoryOther,
}

func NewServiceCategory(category string) (ServiceCategory, error) {
	normalized := strings.ToLower(strings.TrimSpace(category))
	if legacy, ok := legacyServiceCategories[normalized]; ok {
		return legacy, nil
	}
	c := ServiceCategory(normalized)
	if !c.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректная категория услуги")
	}
	return c, nil
}
