package slog

import (
	"context"
	"log/slog"
	"time"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
)

var _ rosh.SiteService = (*LoggingSiteService)(nil)

// LoggingSiteService wraps a SiteService with logging of every call.
type LoggingSiteService struct {
	next   rosh.SiteService
	logger *slog.Logger
}

// NewLoggingSiteService creates a new LoggingSiteService.
func NewLoggingSiteService(next rosh.SiteService, logger *slog.Logger) *LoggingSiteService {
	return &LoggingSiteService{next: next, logger: logger}
}

func (s *LoggingSiteService) CreateSite(ctx context.Context, site *rosh.Site) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create site",
			"name", site.Name,
			"id", site.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSite(ctx, site)
}

func (s *LoggingSiteService) FindSiteByID(ctx context.Context, id string) (site *rosh.Site, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find site",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSiteByID(ctx, id)
}

func (s *LoggingSiteService) FindSites(ctx context.Context, filter rosh.SiteFilter) (sites []*rosh.Site, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find sites",
			"count", len(sites),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSites(ctx, filter)
}

func (s *LoggingSiteService) UpdateSite(ctx context.Context, id string, upd rosh.SiteUpdate) (site *rosh.Site, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update site",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateSite(ctx, id, upd)
}

func (s *LoggingSiteService) DeleteSite(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete site",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSite(ctx, id)
}
