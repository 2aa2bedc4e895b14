package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/schema"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// CompanyUseCase acciones del onboarding y lecturas de empresas.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	log       *logger.Logger
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companies repository.CompanyRepository, log *logger.Logger) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, log: log}
}

// CreateCompany crea una empresa para el vendedor autenticado (paso 1 del onboarding).
// El nombre no es único por usuario, así que no hay chequeo de duplicados.
func (uc *CompanyUseCase) CreateCompany(userID string, in dto.CreateCompanyInput) *dto.CreateCompanyState {
	if userID == "" {
		return &dto.CreateCompanyState{ActionState: dto.ErrorState(dto.CodeUnauthorized, "Autenticación requerida. Vuelve a iniciar sesión.")}
	}

	form, fieldErrs := schema.ParseCompany(in.CompanyName)
	if fieldErrs != nil {
		return &dto.CreateCompanyState{ActionState: dto.ValidationState("Validación fallida.", fieldErrs)}
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		OwnerID:   userID,
		Name:      form.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companies.Create(company); err != nil {
		uc.log.Error().Err(err).Str("owner_id", userID).Msg("insert de empresa falló")
		return &dto.CreateCompanyState{ActionState: dto.ErrorState(dto.CodeDBError, "No se pudo crear la empresa. Inténtalo de nuevo.")}
	}

	return &dto.CreateCompanyState{
		ActionState: dto.SuccessState("¡Empresa creada con éxito!"),
		NewCompany:  toCompanyResponse(company),
	}
}

// SaveThreeWords guarda las tres palabras del negocio (paso 2 del onboarding).
// Antes de escribir se verifica que la empresa exista y pertenezca al usuario.
func (uc *CompanyUseCase) SaveThreeWords(userID, companyID string, in dto.ThreeWordsInput) dto.ActionState {
	if companyID == "" {
		return dto.ErrorState(dto.CodeMissingReference, "Falta el ID de la empresa.")
	}
	if userID == "" {
		return dto.ErrorState(dto.CodeUnauthorized, "Autenticación requerida. Vuelve a iniciar sesión.")
	}

	form, fieldErrs := schema.ParseThreeWords(in.Word1, in.Word2, in.Word3)
	if fieldErrs != nil {
		return dto.ValidationState("Validación fallida.", fieldErrs)
	}

	company, err := uc.companies.GetByIDAndOwner(companyID, userID)
	if err != nil {
		uc.log.Error().Err(err).Str("company_id", companyID).Msg("lookup de empresa falló")
		return dto.ErrorState(dto.CodeDBError, fmt.Sprintf("Error de base de datos: %v", err))
	}
	if company == nil {
		return dto.ErrorState(dto.CodeNotFound, "Empresa no encontrada.")
	}

	if err := uc.companies.UpdateThreeWords(companyID, userID, form.Words()); err != nil {
		uc.log.Error().Err(err).Str("company_id", companyID).Msg("update de three_words falló")
		return dto.ErrorState(dto.CodeDBError, "No se pudieron guardar las palabras. Inténtalo de nuevo.")
	}
	return dto.SuccessState("¡Detalles del negocio guardados!")
}

// ListMine lista las empresas del vendedor autenticado.
func (uc *CompanyUseCase) ListMine(userID string) (*dto.CompanyListResponse, error) {
	list, err := uc.companies.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Items: items}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:         c.ID,
		OwnerID:    c.OwnerID,
		Name:       c.Name,
		ThreeWords: c.ThreeWords,
		CreatedAt:  c.CreatedAt,
	}
}
