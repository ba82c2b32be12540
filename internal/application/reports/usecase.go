package reports

import (
	"context"
	"time"

	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/domain"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
)

// PDFGenerator genera el PDF del informe mensual a partir del DTO ya armado.
type PDFGenerator interface {
	MonthlyReport(report *dto.MonthlyReportResponse) ([]byte, error)
}

// ReportUseCase arma el informe mensual de cumplimiento de una empresa.
type ReportUseCase struct {
	reportRepo  repository.ReportRepository
	companyRepo repository.CompanyRepository
	pdfGen      PDFGenerator
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso de informes.
func NewReportUseCase(reportRepo repository.ReportRepository, companyRepo repository.CompanyRepository, pdfGen PDFGenerator) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:  reportRepo,
		companyRepo: companyRepo,
		pdfGen:      pdfGen,
		now:         time.Now,
	}
}

// Monthly arma el informe del mes indicado para una empresa del usuario.
// El estado "overdue" se deriva al momento de la consulta, nunca se persiste.
func (uc *ReportUseCase) Monthly(ctx context.Context, companyID, userID string, year, month int) (*dto.MonthlyReportResponse, error) {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByIDAndUser(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	m := time.Month(month)
	summary, err := uc.reportRepo.MonthlySummary(ctx, companyID, year, m, uc.now())
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.MonthlyTasks(ctx, companyID, year, m)
	if err != nil {
		return nil, err
	}

	report := &dto.MonthlyReportResponse{
		CompanyID:   companyID,
		CompanyName: company.Name,
		FiscalCode:  company.FiscalCode,
		Year:        year,
		Month:       month,
		Tasks:       make([]dto.ReportTaskItemDTO, 0, len(rows)),
	}
	if summary != nil {
		report.TotalTasks = summary.TotalTasks
		report.CompletedTasks = summary.CompletedTasks
		report.PendingTasks = summary.PendingTasks
		report.BlockedTasks = summary.BlockedTasks
		report.OverdueTasks = summary.OverdueTasks
		if summary.TotalTasks > 0 {
			report.ComplianceRate = float64(summary.CompletedTasks) / float64(summary.TotalTasks)
		}
	}
	for _, r := range rows {
		item := dto.ReportTaskItemDTO{
			Title:       r.Title,
			DueDate:     r.DueDate.Format("2006-01-02"),
			Status:      r.Status,
			CompletedBy: r.CompletedBy,
		}
		if r.CompletedAt != nil {
			s := r.CompletedAt.Format(time.RFC3339)
			item.CompletedAt = &s
		}
		report.Tasks = append(report.Tasks, item)
	}
	return report, nil
}

// MonthlyPDF arma el informe y lo renderiza como PDF.
func (uc *ReportUseCase) MonthlyPDF(ctx context.Context, companyID, userID string, year, month int) ([]byte, error) {
	report, err := uc.Monthly(ctx, companyID, userID, year, month)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.MonthlyReport(report)
}
