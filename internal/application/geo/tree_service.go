package geo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mdm/backend/internal/domain/geo"
	"github.com/mdm/backend/internal/domain/shared"
)

// complianceTimeout bounds each collaborator call during tree annotation
const complianceTimeout = 5 * time.Second

// TreeService serves the geographic hierarchy as a nested tree and
// handles generic node creation and deletion.
type TreeService struct {
	regionRepo  geo.RegionRepository
	countryRepo geo.CountryRepository
	localeRepo  geo.LocaleRepository
	compliance  ComplianceClient
	logger      *zap.Logger
}

// NewTreeService creates a new TreeService
func NewTreeService(
	regionRepo geo.RegionRepository,
	countryRepo geo.CountryRepository,
	localeRepo geo.LocaleRepository,
	compliance ComplianceClient,
	logger *zap.Logger,
) *TreeService {
	return &TreeService{
		regionRepo:  regionRepo,
		countryRepo: countryRepo,
		localeRepo:  localeRepo,
		compliance:  compliance,
		logger:      logger,
	}
}

// Tree returns the full region > country > locale hierarchy. When
// includeCompliance is set, country nodes are annotated with the
// collaborator's screening verdict; annotation failures leave the node
// bare rather than failing the request.
func (s *TreeService) Tree(ctx context.Context, tenantID uuid.UUID, includeCompliance bool) ([]TreeNode, error) {
	regions, err := s.regionRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	countries, err := s.countryRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	locales, err := s.localeRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	localesByCountry := make(map[uuid.UUID][]TreeNode)
	for i := range locales {
		l := &locales[i]
		localesByCountry[l.CountryID] = append(localesByCountry[l.CountryID], TreeNode{
			ID:         l.ID,
			Type:       string(geo.NodeTypeLocale),
			Code:       l.Code,
			Name:       l.Name,
			Properties: localeProperties(l),
		})
	}

	countriesByRegion := make(map[uuid.UUID][]TreeNode)
	for i := range countries {
		c := &countries[i]
		node := TreeNode{
			ID:       c.ID,
			Type:     string(geo.NodeTypeCountry),
			Code:     c.Code,
			Name:     c.Name,
			Children: localesByCountry[c.ID],
		}
		if includeCompliance {
			node.Compliance = s.screenCountry(ctx, c.Code)
		}
		countriesByRegion[c.RegionID] = append(countriesByRegion[c.RegionID], node)
	}

	tree := make([]TreeNode, 0, len(regions))
	for i := range regions {
		r := &regions[i]
		tree = append(tree, TreeNode{
			ID:       r.ID,
			Type:     string(geo.NodeTypeRegion),
			Code:     r.Code,
			Name:     r.Name,
			Children: countriesByRegion[r.ID],
		})
	}
	return tree, nil
}

// screenCountry asks the collaborator for a verdict, returning nil when
// the call fails or times out.
func (s *TreeService) screenCountry(ctx context.Context, code string) *CountryScreening {
	if s.compliance == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, complianceTimeout)
	defer cancel()

	screening, err := s.compliance.ScreenCountry(ctx, code)
	if err != nil {
		s.logger.Warn("compliance screening unavailable",
			zap.String("country_code", code),
			zap.Error(err))
		return nil
	}
	return screening
}

// CreateNode creates a region, country, or locale depending on nodeType
func (s *TreeService) CreateNode(ctx context.Context, tenantID uuid.UUID, req CreateNodeRequest) (*TreeNode, error) {
	switch geo.NodeType(req.NodeType) {
	case geo.NodeTypeRegion:
		return s.createRegion(ctx, tenantID, req)
	case geo.NodeTypeCountry:
		return s.createCountry(ctx, tenantID, req)
	case geo.NodeTypeLocale:
		return s.createLocale(ctx, tenantID, req)
	default:
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown node type: "+req.NodeType)
	}
}

func (s *TreeService) createRegion(ctx context.Context, tenantID uuid.UUID, req CreateNodeRequest) (*TreeNode, error) {
	region, err := geo.NewRegion(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.regionRepo.Save(ctx, region); err != nil {
		return nil, err
	}
	return &TreeNode{ID: region.ID, Type: string(geo.NodeTypeRegion), Code: region.Code, Name: region.Name}, nil
}

func (s *TreeService) createCountry(ctx context.Context, tenantID uuid.UUID, req CreateNodeRequest) (*TreeNode, error) {
	if req.ParentID == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Country requires a parent region")
	}
	if _, err := s.regionRepo.FindByID(ctx, tenantID, *req.ParentID); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Parent region not found")
	}

	country, err := geo.NewCountry(tenantID, *req.ParentID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.countryRepo.Save(ctx, country); err != nil {
		return nil, err
	}
	return &TreeNode{ID: country.ID, Type: string(geo.NodeTypeCountry), Code: country.Code, Name: country.Name}, nil
}

func (s *TreeService) createLocale(ctx context.Context, tenantID uuid.UUID, req CreateNodeRequest) (*TreeNode, error) {
	if req.ParentID == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Locale requires a parent country")
	}
	country, err := s.countryRepo.FindByID(ctx, tenantID, *req.ParentID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Parent country not found")
	}

	existing, err := s.localeRepo.CodesByCountry(ctx, tenantID, country.ID)
	if err != nil {
		return nil, err
	}
	code := geo.UniqueLocaleCode(req.Code, existing)

	defaults := geo.DefaultsForCountry(country.Code)
	languageCode := defaults.LanguageCode
	currencyCode := defaults.Currency
	dateFormat := defaults.DateFormat
	numberFormat := defaults.NumberFormat
	rtl := defaults.RTL
	priority := 0

	if p := req.Properties; p != nil {
		if p.LanguageCode != "" {
			languageCode = p.LanguageCode
		}
		if p.Currency != "" {
			currencyCode = p.Currency
		}
		if p.DateFormat != "" {
			dateFormat = p.DateFormat
		}
		if p.NumberFormat != "" {
			numberFormat = p.NumberFormat
		}
		if p.RTL != nil {
			rtl = *p.RTL
		}
		priority = p.Priority
	}

	locale, err := geo.NewLocale(tenantID, country.ID, code, req.Name, languageCode, currencyCode)
	if err != nil {
		return nil, err
	}
	locale.SetFormatting(dateFormat, numberFormat, rtl)
	if priority > 0 {
		locale.SetPriority(priority)
	}

	if err := s.localeRepo.Save(ctx, locale); err != nil {
		return nil, err
	}
	return &TreeNode{
		ID:         locale.ID,
		Type:       string(geo.NodeTypeLocale),
		Code:       locale.Code,
		Name:       locale.Name,
		Properties: localeProperties(locale),
	}, nil
}

// DeleteNode deletes the node with the given ID at whichever level it
// lives. Primary locales and nodes that still have children are
// protected.
func (s *TreeService) DeleteNode(ctx context.Context, tenantID, id uuid.UUID) error {
	if locale, err := s.localeRepo.FindByID(ctx, tenantID, id); err == nil {
		if locale.IsPrimary {
			return shared.NewDomainError("INVALID_STATE", "Primary locale cannot be deleted")
		}
		return s.localeRepo.Delete(ctx, tenantID, id)
	}

	if _, err := s.countryRepo.FindByID(ctx, tenantID, id); err == nil {
		count, err := s.countryRepo.CountLocales(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return shared.NewDomainError("INVALID_STATE", "Country still has locales")
		}
		return s.countryRepo.Delete(ctx, tenantID, id)
	}

	if _, err := s.regionRepo.FindByID(ctx, tenantID, id); err == nil {
		count, err := s.regionRepo.CountCountries(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return shared.NewDomainError("INVALID_STATE", "Region still has countries")
		}
		return s.regionRepo.Delete(ctx, tenantID, id)
	}

	return shared.ErrNotFound
}

// ScreenCountry proxies a single country screening to the collaborator
func (s *TreeService) ScreenCountry(ctx context.Context, code string) (*CountryScreening, error) {
	if s.compliance == nil {
		return nil, shared.NewDomainError("UNAVAILABLE", "Compliance service is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, complianceTimeout)
	defer cancel()
	return s.compliance.ScreenCountry(ctx, code)
}

// AssessRegion proxies a region assessment to the collaborator
func (s *TreeService) AssessRegion(ctx context.Context, code string) (*RegionAssessment, error) {
	if s.compliance == nil {
		return nil, shared.NewDomainError("UNAVAILABLE", "Compliance service is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, complianceTimeout)
	defer cancel()
	return s.compliance.AssessRegion(ctx, code)
}
