// Package portin declares the inbound boundary of the resources module.
package portin

import (
	"context"

	"pathora/internal/modules/resources/dto"
)

type Usecase interface {
	Resources(ctx context.Context, kind, query string) ([]dto.ResourceOutput, error)
	// Open launches the resource in the OS browser. PDFs are better served
	// by ReadPDFPage.
	Open(ctx context.Context, resourceID int) error
	// ReadPDFPage downloads the resource once and extracts one page of text.
	ReadPDFPage(ctx context.Context, resourceID, page int) (dto.PageOutput, error)
}
