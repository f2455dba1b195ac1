package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pathora/internal/bootstrap"
	accountdto "pathora/internal/modules/account/dto"
	assistantdto "pathora/internal/modules/assistant/dto"
	curriculumdto "pathora/internal/modules/curriculum/dto"
	progressdto "pathora/internal/modules/progress/dto"
	workspacedto "pathora/internal/modules/workspace/dto"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var stateDir, logLevel string

	root := &cobra.Command{
		Use:           "pathora",
		Short:         "Personalized learning-path tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&stateDir, "state-dir", "", "state directory (default ~/.pathora)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug|info|warn|error")

	root.AddCommand(newTUICmd(&stateDir, &logLevel))
	root.AddCommand(newLoginCmd(&stateDir, &logLevel))
	root.AddCommand(newRegisterCmd(&stateDir, &logLevel))
	root.AddCommand(newLogoutCmd(&stateDir, &logLevel))
	root.AddCommand(newWhoamiCmd(&stateDir, &logLevel))
	root.AddCommand(newOnboardCmd(&stateDir, &logLevel))
	root.AddCommand(newPathCmd(&stateDir, &logLevel))
	root.AddCommand(newSkillCmd(&stateDir, &logLevel))
	root.AddCommand(newProgressCmd(&stateDir, &logLevel))
	root.AddCommand(newQuizCmd(&stateDir, &logLevel))
	root.AddCommand(newChatCmd(&stateDir, &logLevel))
	root.AddCommand(newProjectCmd(&stateDir, &logLevel))
	root.AddCommand(newResourceCmd(&stateDir, &logLevel))
	root.AddCommand(newReindexCmd(&stateDir, &logLevel))
	return root
}

func loadApp(stateDir, logLevel *string) (*bootstrap.App, error) {
	return bootstrap.New(*stateDir, *logLevel)
}

func newTUICmd(stateDir, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the Pathora terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(stateDir, logLevel *string) *cobra.Command {
	var identifier, password string
	cmd := &cobra.Command{
		Use:   "login --identifier <email|phone> --password <password>",
		Short: "Authenticate and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			session, err := app.Account.Login(context.Background(), accountdto.LoginInput{
				Identifier: identifier,
				Password:   password,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (user %d)\n", session.FullName, session.UserID)
			if !session.Onboarded {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "onboarding pending: run `pathora onboard`")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&identifier, "identifier", "", "email or phone")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

func newRegisterCmd(stateDir, logLevel *string) *cobra.Command {
	var fullName, email, phone, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			session, err := app.Account.Register(context.Background(), accountdto.RegisterInput{
				FullName: fullName,
				Email:    email,
				Phone:    phone,
				Password: password,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered %s (user %d)\n", session.FullName, session.UserID)
			return nil
		},
	}
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

func newLogoutCmd(stateDir, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Destroy the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.Account.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(stateDir, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			session, err := app.Account.Current(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user: %d\nname: %s\nemail: %s\nrole: %s\nonboarded: %t\nstate: %s\n",
				session.UserID, session.FullName, session.Email, session.Role, session.Onboarded, session.State)
			return nil
		},
	}
}

func newOnboardCmd(stateDir, logLevel *string) *cobra.Command {
	var careerGoal, experience, topic string
	var weeklyHours, weeks int
	cmd := &cobra.Command{
		Use:   "onboard --goal <role> --topic <topic>",
		Short: "Answer the onboarding questions and generate the first path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(topic) == "" {
				return fmt.Errorf("--topic is required")
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			ctx := context.Background()

			if _, err := app.Account.UpdateProfile(ctx, accountdto.ProfileUpdateInput{
				CareerGoal:      careerGoal,
				ExperienceLevel: experience,
				WeeklyHours:     fmt.Sprint(weeklyHours),
			}); err != nil {
				return err
			}
			generated, err := app.Assistant.GeneratePath(ctx, assistantdto.GeneratePathInput{
				Topic:        topic,
				Difficulty:   experience,
				Weeks:        weeks,
				HoursPerWeek: weeklyHours,
			})
			if err != nil {
				return err
			}
			if err := app.Account.CompleteOnboarding(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "onboarding complete, first path: %s (%d)\n", generated.Title, generated.PathID)
			return nil
		},
	}
	cmd.Flags().StringVar(&careerGoal, "goal", "", "career goal")
	cmd.Flags().StringVar(&experience, "experience", "beginner", "experience level: beginner|intermediate|advanced")
	cmd.Flags().StringVar(&topic, "topic", "", "first topic to learn")
	cmd.Flags().IntVar(&weeklyHours, "weekly-hours", 5, "hours per week")
	cmd.Flags().IntVar(&weeks, "weeks", 8, "path duration in weeks")
	return cmd
}

func newPathCmd(stateDir, logLevel *string) *cobra.Command {
	path := &cobra.Command{Use: "path", Short: "Learning path commands"}

	path.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your learning paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			paths, err := app.Curriculum.Paths(context.Background())
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no learning paths")
				return nil
			}
			for _, p := range paths {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d modules\t%d skills\n",
					p.ID, p.Title, p.Difficulty, p.ModuleCount, p.SkillCount)
			}
			return nil
		},
	})

	path.AddCommand(&cobra.Command{
		Use:   "select <id>",
		Short: "Select the active path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			data, err := app.Curriculum.LoadInitialData(context.Background(), curriculumdto.LoadOptions{RequestedPathID: id})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "selected %s (%d skills)\n", data.Selected.Title, len(data.Skills))
			return nil
		},
	})

	var difficulty string
	var weeks, hours int
	generate := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Generate a new path with AI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.Assistant.GeneratePath(context.Background(), assistantdto.GeneratePathInput{
				Topic:        args[0],
				Difficulty:   difficulty,
				Weeks:        weeks,
				HoursPerWeek: hours,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "generated %s (%d)\n", out.Title, out.PathID)
			if out.Message != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			}
			return nil
		},
	}
	generate.Flags().StringVar(&difficulty, "difficulty", "beginner", "beginner|intermediate|advanced")
	generate.Flags().IntVar(&weeks, "weeks", 8, "duration in weeks")
	generate.Flags().IntVar(&hours, "hours", 5, "hours per week")
	path.AddCommand(generate)

	return path
}

func newSkillCmd(stateDir, logLevel *string) *cobra.Command {
	skill := &cobra.Command{Use: "skill", Short: "Skill commands"}

	skill.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the active path's skills",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			data, err := app.Curriculum.LoadInitialData(context.Background(), curriculumdto.LoadOptions{})
			if err != nil {
				return err
			}
			printSkills(cmd, data.Skills)
			return nil
		},
	})

	skill.AddCommand(&cobra.Command{
		Use:   "show <skill-id>",
		Short: "Show one skill from the local index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.Curriculum.Skill(context.Background(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s (%s)\n", s.Title, s.Category)
			_, _ = fmt.Fprintf(out, "status: %s  difficulty: %s  estimated: %s  locked: %v\n",
				s.Status, s.Difficulty, s.EstimatedTime, s.Locked)
			if s.WhyItMatters != "" {
				_, _ = fmt.Fprintf(out, "why: %s\n", s.WhyItMatters)
			}
			for _, w := range s.WhatYouLearn {
				_, _ = fmt.Fprintf(out, "  - %s\n", w)
			}
			for _, r := range s.AIResources {
				_, _ = fmt.Fprintf(out, "  %s: %s\n", r.Kind, r.URL)
			}
			return nil
		},
	})

	skill.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Search the local skill index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			skills, err := app.Curriculum.SearchSkills(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printSkills(cmd, skills)
			return nil
		},
	})

	skill.AddCommand(&cobra.Command{
		Use:   "content <skill-id>",
		Short: "Generate and print a skill's lesson content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			body, err := app.Assistant.GenerateLessonContent(context.Background(), id)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), body)
			return nil
		},
	})

	skill.AddCommand(&cobra.Command{
		Use:   "start <skill-id>",
		Short: "Mark a skill in-progress in the local index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.Curriculum.StartSkill(context.Background(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "skill %d is now in-progress\n", id)
			return nil
		},
	})

	var minutes int
	var note string
	complete := &cobra.Command{
		Use:   "complete <skill-id>",
		Short: "Mark a skill completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			ctx := context.Background()

			session, err := app.Account.Current(ctx)
			if err != nil {
				return err
			}
			data, err := app.Curriculum.LoadInitialData(ctx, curriculumdto.LoadOptions{})
			if err != nil {
				return err
			}
			title := fmt.Sprintf("skill %d", id)
			for _, s := range data.Skills {
				if s.ID == id {
					if s.Locked {
						return fmt.Errorf("skill %d is locked: finish its prerequisites first", id)
					}
					title = s.Title
				}
			}
			overview, err := app.Progress.CompleteSkill(ctx, session.UserID, progressdto.CompleteSkillInput{
				SkillID:    id,
				SkillTitle: title,
				PathTitle:  data.Selected.Title,
				Minutes:    minutes,
				Note:       note,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "completed %s — %d skills done\n", title, overview.CompletedSkills)
			return nil
		},
	}
	complete.Flags().IntVar(&minutes, "minutes", 30, "time spent in minutes")
	complete.Flags().StringVar(&note, "note", "", "journal note")
	skill.AddCommand(complete)

	return skill
}

func newProgressCmd(stateDir, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show the progress overview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			ctx := context.Background()
			session, err := app.Account.Current(ctx)
			if err != nil {
				return err
			}
			overview, err := app.Progress.Overview(ctx, session.UserID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "path: %s\ncompleted: %d\nin progress: %d\nstreak: %d days\ntotal hours: %.1f\n",
				overview.CurrentPath, overview.CompletedSkills, overview.InProgressSkills,
				overview.WeeklyStreak, overview.TotalHoursSpent)
			for _, day := range overview.WeeklyActivity {
				_, _ = fmt.Fprintf(out, "  %s\t%.1fh\n", day.Day, day.Hours)
			}
			for _, ms := range overview.Milestones {
				mark := " "
				if ms.Achieved {
					mark = "x"
				}
				_, _ = fmt.Fprintf(out, "  [%s] %s %s\n", mark, ms.Title, ms.Date)
			}
			return nil
		},
	}
}

func newQuizCmd(stateDir, logLevel *string) *cobra.Command {
	var difficulty string
	var count int
	var showAnswers bool
	cmd := &cobra.Command{
		Use:   "quiz <topic>",
		Short: "Generate a quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			quiz, err := app.Assistant.GenerateQuiz(context.Background(), assistantdto.GenerateQuizInput{
				Topic:         args[0],
				Difficulty:    difficulty,
				QuestionCount: count,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, quiz.Title)
			for i, q := range quiz.Questions {
				_, _ = fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Prompt)
				for j, opt := range q.Options {
					marker := " "
					if showAnswers && j == q.CorrectIndex {
						marker = "*"
					}
					_, _ = fmt.Fprintf(out, "  %s %c) %s\n", marker, 'a'+j, opt)
				}
				if showAnswers && q.Explanation != "" {
					_, _ = fmt.Fprintf(out, "     %s\n", q.Explanation)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "beginner", "beginner|intermediate|advanced")
	cmd.Flags().IntVar(&count, "count", 5, "number of questions")
	cmd.Flags().BoolVar(&showAnswers, "show-answers", false, "mark the correct options")
	return cmd
}

func newChatCmd(stateDir, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Ask the AI mentor a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			reply, err := app.Assistant.Chat(context.Background(), strings.Join(args, " "), nil)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
}

func newProjectCmd(stateDir, logLevel *string) *cobra.Command {
	project := &cobra.Command{Use: "project", Short: "Practice project commands"}

	project.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			projects, err := app.Workspace.Projects(context.Background())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no projects")
				return nil
			}
			for _, p := range projects {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d files\t%s\n",
					p.ID, p.Status, p.Title, p.FileCount, strings.Join(p.Technologies, ","))
			}
			return nil
		},
	})

	project.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			p, err := app.Workspace.Project(context.Background(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s (%s)\n", p.Title, p.Status)
			if p.Description != "" {
				_, _ = fmt.Fprintln(out, p.Description)
			}
			_, _ = fmt.Fprintf(out, "stack: %s  files: %d  estimated: %s\n",
				strings.Join(p.Technologies, ","), p.FileCount, p.EstimatedHours)
			return nil
		},
	})

	var title, description, difficulty, estimatedHours string
	var technologies []string
	create := &cobra.Command{
		Use:   "create --title <title>",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			created, err := app.Workspace.CreateProject(context.Background(), workspacedto.CreateProjectInput{
				Title:          title,
				Description:    description,
				Difficulty:     difficulty,
				Technologies:   technologies,
				EstimatedHours: estimatedHours,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created project %d: %s\n", created.ID, created.Title)
			return nil
		},
	}
	create.Flags().StringVar(&title, "title", "", "project title")
	create.Flags().StringVar(&description, "description", "", "project description")
	create.Flags().StringVar(&difficulty, "difficulty", "beginner", "project difficulty")
	create.Flags().StringSliceVar(&technologies, "tech", nil, "technologies")
	create.Flags().StringVar(&estimatedHours, "hours", "", "estimated hours, free text")
	project.AddCommand(create)

	project.AddCommand(&cobra.Command{
		Use:   "checkout <id>",
		Short: "Materialize a project's files locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.Workspace.Checkout(context.Background(), id)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "checked out %s to %s\n", out.Project.Title, out.Dir)
			return nil
		},
	})

	project.AddCommand(&cobra.Command{
		Use:   "sync <id>",
		Short: "Push local edits back to the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.Workspace.Sync(context.Background(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "synced")
			return nil
		},
	})

	project.AddCommand(&cobra.Command{
		Use:   "close <id>",
		Short: "Sync, then delete the local checkout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.Workspace.CloseCheckout(context.Background(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "closed")
			return nil
		},
	})

	project.AddCommand(&cobra.Command{
		Use:   "status <id> <planning|in-progress|completed>",
		Short: "Change a project's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.Workspace.SetStatus(context.Background(), id, args[1]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "status updated")
			return nil
		},
	})

	project.AddCommand(&cobra.Command{
		Use:   "runners",
		Short: "List configured runners that answer a probe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			runners, err := app.Workspace.Runners(context.Background())
			if err != nil {
				return err
			}
			if len(runners) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no runners configured")
				return nil
			}
			for _, r := range runners {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", r.Name, r.Version, r.Description)
			}
			return nil
		},
	})

	var inputJSON string
	var projectID int
	run := &cobra.Command{
		Use:   "run <runner> <command>",
		Short: "Execute a runner command against a checkout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			result, err := app.Workspace.RunCommand(context.Background(), workspacedto.RunCommandInput{
				Runner:    args[0],
				CommandID: args[1],
				InputJSON: inputJSON,
				ProjectID: projectID,
			})
			if err != nil {
				return err
			}
			if result.Stdout != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Stdout)
			}
			if result.Stderr != "" {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), result.Stderr)
			}
			if result.ExitCode != 0 {
				return fmt.Errorf("runner exited with code %d", result.ExitCode)
			}
			return nil
		},
	}
	run.Flags().StringVar(&inputJSON, "input", "", "JSON payload for the command")
	run.Flags().IntVar(&projectID, "project", 0, "project id whose checkout is the working dir")
	project.AddCommand(run)

	return project
}

func newResourceCmd(stateDir, logLevel *string) *cobra.Command {
	resource := &cobra.Command{Use: "resource", Short: "Learning resource commands"}

	var kind, query string
	list := &cobra.Command{
		Use:   "list",
		Short: "List resources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			resources, err := app.Resources.Resources(context.Background(), kind, query)
			if err != nil {
				return err
			}
			for _, r := range resources {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", r.ID, r.Kind, r.Title, r.URL)
			}
			return nil
		},
	}
	list.Flags().StringVar(&kind, "kind", "", "filter: video|article|pdf|course")
	list.Flags().StringVar(&query, "query", "", "filter by title or description")
	resource.AddCommand(list)

	resource.AddCommand(&cobra.Command{
		Use:   "open <id>",
		Short: "Open a resource in the system browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			return app.Resources.Open(context.Background(), id)
		},
	})

	var page int
	read := &cobra.Command{
		Use:   "read <id>",
		Short: "Print one page of a PDF resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.Resources.ReadPDFPage(context.Background(), id, page)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "page %d/%d\n\n%s\n", out.Number, out.TotalPages, out.Text)
			return nil
		},
	}
	read.Flags().IntVar(&page, "page", 1, "page number")
	resource.AddCommand(read)

	return resource
}

func newReindexCmd(stateDir, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the local skill index for the active path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(stateDir, logLevel)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.Curriculum.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func printSkills(cmd *cobra.Command, skills []curriculumdto.SkillOutput) {
	if len(skills) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no skills")
		return
	}
	for _, s := range skills {
		lock := ""
		if s.Locked {
			lock = " (locked)"
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%-12s\t%s\t%s%s\n", s.ID, s.Status, s.Category, s.Title, lock)
	}
}

func parseID(raw string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(raw, "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
