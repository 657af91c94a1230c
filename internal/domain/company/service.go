package company

import (
	"context"
)

type CompanyService interface {
	GetMy(ctx context.Context) (CompanyResponse, error)
	UpdateEdiSettings(ctx context.Context, req UpdateEdiSettingsRequest) (CompanyResponse, error)
}
