package mock

import (
	"context"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
)

var _ rosh.SiteService = (*SiteService)(nil)

// SiteService is a mock implementation of rosh.SiteService.
type SiteService struct {
	CreateSiteFn   func(ctx context.Context, site *rosh.Site) error
	FindSiteByIDFn func(ctx context.Context, id string) (*rosh.Site, error)
	FindSitesFn    func(ctx context.Context, filter rosh.SiteFilter) ([]*rosh.Site, error)
	UpdateSiteFn   func(ctx context.Context, id string, upd rosh.SiteUpdate) (*rosh.Site, error)
	DeleteSiteFn   func(ctx context.Context, id string) error
}

func (s *SiteService) CreateSite(ctx context.Context, site *rosh.Site) error {
	return s.CreateSiteFn(ctx, site)
}

func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*rosh.Site, error) {
	return s.FindSiteByIDFn(ctx, id)
}

func (s *SiteService) FindSites(ctx context.Context, filter rosh.SiteFilter) ([]*rosh.Site, error) {
	return s.FindSitesFn(ctx, filter)
}

func (s *SiteService) UpdateSite(ctx context.Context, id string, upd rosh.SiteUpdate) (*rosh.Site, error) {
	return s.UpdateSiteFn(ctx, id, upd)
}

func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	return s.DeleteSiteFn(ctx, id)
}
