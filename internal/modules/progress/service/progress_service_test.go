package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pathora/internal/modules/progress/domain"
	"pathora/internal/modules/progress/service"
	"pathora/internal/platform/clock"
)

type fakeProgressAPI struct {
	overview    domain.Overview
	overviewErr error
	completions []int
	sentHours   []float64
	completeErr error
}

func (a *fakeProgressAPI) Overview(context.Context, int) (domain.Overview, error) {
	return a.overview, a.overviewErr
}

func (a *fakeProgressAPI) PathProgress(context.Context, int, int) (domain.PathProgress, error) {
	return domain.PathProgress{PathID: 1, CompletedLessons: 2, TotalLessons: 3}, nil
}

func (a *fakeProgressAPI) CompleteLesson(_ context.Context, lessonID, _ int, hours float64) error {
	if a.completeErr != nil {
		return a.completeErr
	}
	a.completions = append(a.completions, lessonID)
	a.sentHours = append(a.sentHours, hours)
	a.overview.CompletedSkillIDs = append(a.overview.CompletedSkillIDs, "42")
	return nil
}

type fakeJournal struct {
	entries []domain.JournalEntry
	err     error
}

func (j *fakeJournal) Append(_ context.Context, entry domain.JournalEntry) error {
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, entry)
	return nil
}

var testNow = time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

func TestCompleteSkillReturnsRefreshedOverview(t *testing.T) {
	t.Parallel()
	api := &fakeProgressAPI{overview: domain.Overview{CompletedSkillIDs: []string{"1", "2"}}}
	journal := &fakeJournal{}
	svc := service.NewProgressService(api, journal, clock.Fixed{T: testNow}, nil)

	overview, err := svc.CompleteSkill(context.Background(), 7, domain.JournalEntry{SkillID: 42, SkillTitle: "SQL Joins", Minutes: 30})
	if err != nil {
		t.Fatalf("complete skill: %v", err)
	}
	if overview.CompletedCount() != 3 {
		t.Fatalf("overview must reflect the completion, got %d", overview.CompletedCount())
	}
	if len(journal.entries) != 1 || !journal.entries[0].When.Equal(testNow) {
		t.Fatalf("journal entry missing or unstamped: %+v", journal.entries)
	}
}

func TestCompleteSkillSendsHoursNotMinutes(t *testing.T) {
	t.Parallel()
	api := &fakeProgressAPI{}
	svc := service.NewProgressService(api, &fakeJournal{}, clock.Fixed{T: testNow}, nil)

	if _, err := svc.CompleteSkill(context.Background(), 7, domain.JournalEntry{SkillID: 42, Minutes: 30}); err != nil {
		t.Fatalf("complete skill: %v", err)
	}
	if len(api.sentHours) != 1 || api.sentHours[0] != 0.5 {
		t.Fatalf("30 minutes must go out as 0.5 hours, got %v", api.sentHours)
	}
}

func TestCompleteSkillFailureLeavesNoJournalEntry(t *testing.T) {
	t.Parallel()
	api := &fakeProgressAPI{completeErr: errors.New("boom")}
	journal := &fakeJournal{}
	svc := service.NewProgressService(api, journal, clock.Fixed{T: testNow}, nil)

	if _, err := svc.CompleteSkill(context.Background(), 7, domain.JournalEntry{SkillID: 42}); err == nil {
		t.Fatalf("expected error")
	}
	if len(journal.entries) != 0 {
		t.Fatalf("rejected completion must not be journaled")
	}
}

func TestJournalFailureDoesNotFailCompletion(t *testing.T) {
	t.Parallel()
	api := &fakeProgressAPI{}
	journal := &fakeJournal{err: errors.New("disk full")}
	svc := service.NewProgressService(api, journal, clock.Fixed{T: testNow}, nil)

	if _, err := svc.CompleteSkill(context.Background(), 7, domain.JournalEntry{SkillID: 42}); err != nil {
		t.Fatalf("journal failure must not surface: %v", err)
	}
	if len(api.completions) != 1 {
		t.Fatalf("completion should have been recorded")
	}
}

func TestPathProgressComputesPercent(t *testing.T) {
	t.Parallel()
	svc := service.NewProgressService(&fakeProgressAPI{}, &fakeJournal{}, clock.Fixed{T: testNow}, nil)
	progress, err := svc.PathProgress(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("path progress: %v", err)
	}
	if progress.Percent != 67 {
		t.Fatalf("percent = %d, want 67", progress.Percent)
	}
}
