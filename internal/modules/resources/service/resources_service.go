// Package service implements catalog browsing and resource opening.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pathora/internal/modules/resources/domain"
	portout "pathora/internal/modules/resources/port/out"
	apperrors "pathora/internal/platform/errors"
)

type ResourcesService struct {
	catalog  portout.CatalogAPI
	launcher portout.ExternalLauncher
	fetcher  portout.FileFetcher
	pdf      portout.PDFReader
	log      *zap.Logger
}

func NewResourcesService(
	catalog portout.CatalogAPI,
	launcher portout.ExternalLauncher,
	fetcher portout.FileFetcher,
	pdf portout.PDFReader,
	log *zap.Logger,
) *ResourcesService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResourcesService{catalog: catalog, launcher: launcher, fetcher: fetcher, pdf: pdf, log: log}
}

func (s *ResourcesService) Resources(ctx context.Context, kind, query string) ([]domain.Resource, error) {
	resources, err := s.catalog.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Filter(resources, kind, query), nil
}

func (s *ResourcesService) Open(ctx context.Context, resourceID int) error {
	resource, err := s.find(ctx, resourceID)
	if err != nil {
		return err
	}
	s.log.Info("opening resource", zap.Int("resource_id", resourceID), zap.String("url", resource.URL))
	return s.launcher.Open(ctx, resource.URL)
}

func (s *ResourcesService) ReadPDFPage(ctx context.Context, resourceID, page int) (domain.Page, int, error) {
	resource, err := s.find(ctx, resourceID)
	if err != nil {
		return domain.Page{}, 0, err
	}
	if !resource.IsPDF() {
		return domain.Page{}, 0, fmt.Errorf("%w: resource %d is not a pdf", apperrors.ErrInvalidInput, resourceID)
	}
	if page < 1 {
		page = 1
	}

	path, err := s.fetcher.Fetch(ctx, resource.URL)
	if err != nil {
		return domain.Page{}, 0, fmt.Errorf("fetch pdf: %w", err)
	}
	return s.pdf.ReadPage(ctx, path, page)
}

func (s *ResourcesService) find(ctx context.Context, resourceID int) (domain.Resource, error) {
	resources, err := s.catalog.ListResources(ctx)
	if err != nil {
		return domain.Resource{}, err
	}
	for _, r := range resources {
		if r.ID == resourceID {
			return r, nil
		}
	}
	return domain.Resource{}, fmt.Errorf("%w: resource %d", apperrors.ErrNotFound, resourceID)
}
