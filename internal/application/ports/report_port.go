package ports

import (
	"context"
	"time"

	"github.com/jhoicas/assettrack-console/internal/domain/entity"
)

// AssetReportGenerator genera el informe de inspección de assets (PDF).
type AssetReportGenerator interface {
	GenerateAssetReport(ctx context.Context, assets []entity.Asset, generatedAt time.Time) ([]byte, error)
}
