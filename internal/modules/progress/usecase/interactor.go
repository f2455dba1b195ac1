// Package usecase adapts the progress service to the inbound port.
package usecase

import (
	"context"

	"pathora/internal/modules/progress/domain"
	"pathora/internal/modules/progress/dto"
	portin "pathora/internal/modules/progress/port/in"
	"pathora/internal/modules/progress/service"
)

type Interactor struct {
	svc *service.ProgressService
}

var _ portin.Usecase = (*Interactor)(nil)

func NewInteractor(svc *service.ProgressService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) Overview(ctx context.Context, userID int) (dto.OverviewOutput, error) {
	overview, err := i.svc.Overview(ctx, userID)
	if err != nil {
		return dto.OverviewOutput{}, err
	}
	return ToOverviewOutput(overview), nil
}

func (i *Interactor) PathProgress(ctx context.Context, pathID, userID int) (dto.PathProgressOutput, error) {
	progress, err := i.svc.PathProgress(ctx, pathID, userID)
	if err != nil {
		return dto.PathProgressOutput{}, err
	}
	return dto.PathProgressOutput{
		PathID:           progress.PathID,
		CompletedLessons: progress.CompletedLessons,
		TotalLessons:     progress.TotalLessons,
		Percent:          progress.Percent,
	}, nil
}

func (i *Interactor) CompleteSkill(ctx context.Context, userID int, in dto.CompleteSkillInput) (dto.OverviewOutput, error) {
	overview, err := i.svc.CompleteSkill(ctx, userID, domain.JournalEntry{
		SkillID:    in.SkillID,
		SkillTitle: in.SkillTitle,
		PathTitle:  in.PathTitle,
		Minutes:    in.Minutes,
		Note:       in.Note,
	})
	if err != nil {
		return dto.OverviewOutput{}, err
	}
	return ToOverviewOutput(overview), nil
}

// ToOverviewOutput is shared with the curriculum loader, which joins the
// overview into its initial-data payload.
func ToOverviewOutput(o domain.Overview) dto.OverviewOutput {
	weekly := o.WeeklyHoursSummary()
	out := dto.OverviewOutput{
		CompletedSkillIDs:  o.CompletedSkillIDs,
		InProgressSkillIDs: o.InProgressSkillIDs,
		CompletedSkills:    o.CompletedCount(),
		InProgressSkills:   o.InProgressCount(),
		WeeklyStreak:       o.WeeklyStreak,
		WeeklyGoalHours:    o.WeeklyGoalHours,
		TotalHoursSpent:    o.TotalHoursSpent,
		WeeklyHours:        dto.WeeklyHoursOutput{Spent: weekly.Spent, Goal: weekly.Goal, Percent: weekly.Percent},
		CurrentPath:        o.CurrentPath,
	}
	for _, day := range o.WeeklyActivity {
		out.WeeklyActivity = append(out.WeeklyActivity, dto.DayActivityOutput{Day: day.Day, Hours: day.Hours})
	}
	for _, point := range o.Trajectory {
		out.Trajectory = append(out.Trajectory, dto.TrajectoryOutput{Month: point.Month, Skills: point.Skills})
	}
	for _, m := range o.Milestones {
		out.Milestones = append(out.Milestones, dto.MilestoneOutput{
			Title:       m.Title,
			Description: m.Description,
			Date:        m.Date,
			Achieved:    m.Achieved,
		})
	}
	return out
}
