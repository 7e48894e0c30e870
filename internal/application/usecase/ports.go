package usecase

import (
	"context"

	"github.com/jhoicas/merma-api/internal/application/dto"
)

// ReportPDFGenerator puerto para la versión imprimible del reporte de merma.
// Lo implementa la infraestructura (Maroto).
type ReportPDFGenerator interface {
	GenerateShrinkageReport(ctx context.Context, report *dto.ShrinkageReportDTO) ([]byte, error)
}
