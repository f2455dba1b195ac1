// Package usecase adapts the resources service to the inbound port.
package usecase

import (
	"context"

	"pathora/internal/modules/resources/dto"
	portin "pathora/internal/modules/resources/port/in"
	"pathora/internal/modules/resources/service"
)

type Interactor struct {
	svc *service.ResourcesService
}

var _ portin.Usecase = (*Interactor)(nil)

func NewInteractor(svc *service.ResourcesService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) Resources(ctx context.Context, kind, query string) ([]dto.ResourceOutput, error) {
	resources, err := i.svc.Resources(ctx, kind, query)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResourceOutput, 0, len(resources))
	for _, r := range resources {
		out = append(out, dto.ResourceOutput{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
			Kind:        r.Kind,
		})
	}
	return out, nil
}

func (i *Interactor) Open(ctx context.Context, resourceID int) error {
	return i.svc.Open(ctx, resourceID)
}

func (i *Interactor) ReadPDFPage(ctx context.Context, resourceID, page int) (dto.PageOutput, error) {
	p, total, err := i.svc.ReadPDFPage(ctx, resourceID, page)
	if err != nil {
		return dto.PageOutput{}, err
	}
	return dto.PageOutput{Number: p.Number, TotalPages: total, Text: p.Text}, nil
}
