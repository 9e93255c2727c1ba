package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/yourusername/tryout-api/internal/domain/entity"
	"github.com/yourusername/tryout-api/internal/domain/repository"
)

// NotificationService emails every ranked user their per-subtest scores for
// a package. One user's failed delivery is logged and skipped; it never
// aborts the batch.
type NotificationService struct {
	packageRepo repository.PackageRepository
	resultRepo  repository.ResultRepository
	userRepo    repository.UserRepository
	email       EmailService
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	packageRepo repository.PackageRepository,
	resultRepo repository.ResultRepository,
	userRepo repository.UserRepository,
	email EmailService,
) *NotificationService {
	return &NotificationService{
		packageRepo: packageRepo,
		resultRepo:  resultRepo,
		userRepo:    userRepo,
		email:       email,
	}
}

// NotifyPackageScores sends one score email per ranked user and returns the
// sent and skipped counts. Users without an email address, and users whose
// delivery fails, are counted as skipped.
func (s *NotificationService) NotifyPackageScores(ctx context.Context, packageID uint) (sent, skipped int, err error) {
	pkg, err := s.packageRepo.GetByID(packageID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load package #%d: %w", packageID, err)
	}

	subtests, err := s.packageRepo.GetSubtests(packageID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load subtests for package #%d: %w", packageID, err)
	}
	codeBySubtest := make(map[uint]string, len(subtests))
	for _, st := range subtests {
		codeBySubtest[st.ID] = st.Code
	}

	entries, err := s.resultRepo.GetLeaderboard(packageID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load leaderboard for package #%d: %w", packageID, err)
	}

	userIDs := make([]uint, 0, len(entries))
	for _, e := range entries {
		userIDs = append(userIDs, e.UserID)
	}
	users, err := s.userRepo.GetByIDs(userIDs)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load users for package #%d: %w", packageID, err)
	}
	emailByUser := make(map[uint]string, len(users))
	for _, u := range users {
		emailByUser[u.ID] = u.Email
	}

	for _, entry := range entries {
		toEmail := emailByUser[entry.UserID]
		if toEmail == "" {
			log.Printf("[NotificationService] user #%d has no email address, skipping", entry.UserID)
			skipped++
			continue
		}

		results, resErr := s.resultRepo.GetUserPackageResults(packageID, entry.UserID)
		if resErr != nil {
			log.Printf("[NotificationService] failed to load results for user #%d: %v, skipping", entry.UserID, resErr)
			skipped++
			continue
		}

		subject := fmt.Sprintf("Hasil tryout: %s", pkg.Title)
		text, html := buildScoreEmail(pkg.Title, entry, results, codeBySubtest)

		if sendErr := s.email.Send(ctx, toEmail, subject, text, html, scoreEmailIdempotencyKey(packageID, entry.UserID)); sendErr != nil {
			log.Printf("[NotificationService] failed to send score email to user #%d: %v, skipping", entry.UserID, sendErr)
			skipped++
			continue
		}
		sent++
	}

	log.Printf("[NotificationService] Package #%d notifications done: sent=%d skipped=%d", packageID, sent, skipped)
	return sent, skipped, nil
}

// scoreEmailIdempotencyKey is stable per (package, user) so a retried batch
// cannot double-send.
func scoreEmailIdempotencyKey(packageID, userID uint) string {
	name := fmt.Sprintf("score-report:%d:%d", packageID, userID)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

func buildScoreEmail(packageTitle string, entry entity.LeaderboardEntry, results []entity.SubtestResult, codeBySubtest map[uint]string) (text, html string) {
	var tb, hb strings.Builder

	fmt.Fprintf(&tb, "Halo %s,\n\nHasil %s:\n\n", entry.Username, packageTitle)
	fmt.Fprintf(&hb, "<p>Halo <strong>%s</strong>,</p><p>Hasil %s:</p><table>", entry.Username, packageTitle)

	for _, r := range results {
		label := SubjectLabel(codeBySubtest[r.SubtestID])
		fmt.Fprintf(&tb, "%s: %.2f (%d benar, %d salah)\n", label, r.Score, r.CorrectCount, r.IncorrectCount)
		fmt.Fprintf(&hb, "<tr><td>%s</td><td>%.2f</td></tr>", label, r.Score)
	}

	fmt.Fprintf(&tb, "\nTotal: %.2f\nRata-rata: %.2f\nPeringkat: %d\n", entry.TotalScore, entry.AverageScore, entry.Rank)
	fmt.Fprintf(&hb, "</table><p>Total: <strong>%.2f</strong><br>Rata-rata: <strong>%.2f</strong><br>Peringkat: <strong>%d</strong></p>",
		entry.TotalScore, entry.AverageScore, entry.Rank)

	return tb.String(), hb.String()
}
