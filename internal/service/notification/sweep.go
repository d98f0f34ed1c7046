package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/viniciussvasques/innexar-hr/internal/domain/notification"
	"github.com/viniciussvasques/innexar-hr/internal/domain/tax"
	vacationcalc "github.com/viniciussvasques/innexar-hr/internal/service/vacation"
)

const (
	documentExpiryWindow = 30 * 24 * time.Hour
	documentUrgentWindow = 7 * 24 * time.Hour
	vacationExpiryWindow = 30 * 24 * time.Hour
	lowBalanceThreshold  = 5
	pendingPunchWindow   = 7 * 24 * time.Hour
	// sweepDedupeWindow keeps daily sweep runs from re-alerting on the
	// same finding.
	sweepDedupeWindow = 7 * 24 * time.Hour
)

// Sweep runs all scheduled checks. Each check is independent; a failure
// in one is logged and does not stop the others.
func (s *ServiceImpl) Sweep(ctx context.Context) (notification.SweepResult, error) {
	var result notification.SweepResult
	now := time.Now().UTC()

	docs, err := s.sweepDocuments(ctx, now)
	if err != nil {
		slog.Error("document sweep failed", "error", err)
	}
	result.Documents = docs

	vacations, err := s.sweepVacations(ctx, now)
	if err != nil {
		slog.Error("vacation sweep failed", "error", err)
	}
	result.Vacations = vacations

	punches, err := s.sweepPendingPunches(ctx, now)
	if err != nil {
		slog.Error("pending punch sweep failed", "error", err)
	}
	result.TimeRecords = punches

	return result, nil
}

// createOnce writes the notification unless an equivalent one was
// created inside the dedupe window.
func (s *ServiceImpl) createOnce(ctx context.Context, n notification.Notification, titlePart string, now time.Time) (bool, error) {
	if n.EmployeeID == nil {
		return false, nil
	}
	since := now.Add(-sweepDedupeWindow)
	exists, err := s.notificationRepo.ExistsSince(ctx, *n.EmployeeID, n.Type, titlePart, since)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if _, err := s.notificationRepo.Create(ctx, n); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ServiceImpl) sweepDocuments(ctx context.Context, now time.Time) (int, error) {
	docs, err := s.employeeRepo.ListDocumentsExpiringBetween(ctx, now, now.Add(documentExpiryWindow))
	if err != nil {
		return 0, fmt.Errorf("failed to list expiring documents: %w", err)
	}

	created := 0
	for _, doc := range docs {
		if doc.ExpiryDate == nil {
			continue
		}
		title := "Documento expirando: " + doc.Name
		message := fmt.Sprintf("O documento %s expira em %s", doc.Name, doc.ExpiryDate.Format("02/01/2006"))
		if doc.ExpiryDate.Sub(now) <= documentUrgentWindow {
			title = "Documento expira em breve: " + doc.Name
			message = fmt.Sprintf("Atenção: o documento %s expira em %s. Providencie a renovação.",
				doc.Name, doc.ExpiryDate.Format("02/01/2006"))
		}

		employeeID := doc.EmployeeID
		ok, err := s.createOnce(ctx, notification.Notification{
			EmployeeID: &employeeID,
			Type:       notification.TypeDocumentExpiring,
			Title:      title,
			Message:    message,
			ActionURL:  "/employees/" + doc.EmployeeID + "/documents",
		}, doc.Name, now)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

func (s *ServiceImpl) sweepVacations(ctx context.Context, now time.Time) (int, error) {
	employees, err := s.employeeRepo.ListActiveWithHireDate(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list employees: %w", err)
	}

	policy := tax.DefaultPolicy(now.Year())
	created := 0
	for _, emp := range employees {
		earned := vacationcalc.EarnedDays(*emp.HireDate, now, policy)

		taken := 0
		rows, err := s.vacationRepo.ListCountedAsTaken(ctx, emp.ID, now)
		if err != nil {
			return created, fmt.Errorf("failed to list taken vacations: %w", err)
		}
		for _, v := range rows {
			taken += v.Days
		}
		balance := vacationcalc.Balance(earned, taken)

		if expiry := vacationcalc.NextExpiry(*emp.HireDate, now); expiry != nil && balance > 0 {
			if expiry.Sub(now) <= vacationExpiryWindow {
				ok, err := s.createOnce(ctx, notification.Notification{
					EmployeeID: &emp.ID,
					Type:       notification.TypeVacationExpiring,
					Title:      "Férias expirando em " + expiry.Format("02/01/2006"),
					Message: fmt.Sprintf("Você tem %d dias de férias que expiram em %s. Agende suas férias.",
						balance, expiry.Format("02/01/2006")),
					ActionURL: "/vacations",
				}, expiry.Format("02/01/2006"), now)
				if err != nil {
					return created, err
				}
				if ok {
					created++
				}
			}
		}

		if balance > 0 && balance <= lowBalanceThreshold {
			ok, err := s.createOnce(ctx, notification.Notification{
				EmployeeID: &emp.ID,
				Type:       notification.TypeVacationBalanceLow,
				Title:      "Saldo de férias baixo",
				Message:    fmt.Sprintf("Seu saldo de férias é de apenas %d dias.", balance),
				ActionURL:  "/vacations",
			}, "Saldo de férias baixo", now)
			if err != nil {
				return created, err
			}
			if ok {
				created++
			}
		}
	}
	return created, nil
}

func (s *ServiceImpl) sweepPendingPunches(ctx context.Context, now time.Time) (int, error) {
	summaries, err := s.timeRecordRepo.PendingBySupervisor(ctx, now.Add(-pendingPunchWindow))
	if err != nil {
		return 0, fmt.Errorf("failed to list pending punches: %w", err)
	}

	created := 0
	for _, summary := range summaries {
		if summary.PendingCount == 0 {
			continue
		}
		supervisorID := summary.SupervisorID
		ok, err := s.createOnce(ctx, notification.Notification{
			EmployeeID: &supervisorID,
			Type:       notification.TypeTimeRecordPending,
			Title:      "Registros de ponto pendentes",
			Message:    fmt.Sprintf("Há %d registros de ponto aguardando sua aprovação.", summary.PendingCount),
			ActionURL:  "/time-records?approved=false",
		}, "Registros de ponto pendentes", now)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}
