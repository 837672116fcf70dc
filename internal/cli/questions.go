package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/storage"
)

const shortIDLen = 8

type QuestionsAddCmd struct {
	Text []string `arg:"" help:"The question to ask."`
	Type string   `short:"t" enum:"consultant,gp,nurse,other" default:"consultant" help:"Who the question is for (consultant, gp, nurse or other)."`
}

func (c *QuestionsAddCmd) Run(ctx *Context) error {
	kind, _ := models.ParseQuestionType(c.Type)
	questions, q, err := ctx.journal().AddQuestion(storage.LoadQuestions(ctx.Store), strings.Join(c.Text, " "), kind)
	if err != nil {
		return err
	}

	storage.SaveQuestions(ctx.Store, questions)
	ctx.printf("✓ Added %s question %s\n", q.Type, shortID(q.ID))
	return nil
}

type QuestionsListCmd struct {
	Status string `short:"s" enum:"all,unasked,answered" default:"all" help:"Only show questions with this status (all, unasked or answered)."`
}

func (c *QuestionsListCmd) Run(ctx *Context) error {
	questions := storage.LoadQuestions(ctx.Store)
	if len(questions) == 0 {
		ctx.println("No questions yet.")
		ctx.println(mutedStyle.Render("Add one with 'daylog questions add \"...\"'."))
		return nil
	}

	var shown []models.Question
	open := 0
	for _, q := range questions {
		if q.Status == models.QuestionUnasked {
			open++
		}
		if c.Status == "all" || string(q.Status) == c.Status {
			shown = append(shown, q)
		}
	}
	if len(shown) == 0 {
		ctx.printf("No %s questions.\n", c.Status)
		return nil
	}

	ctx.println(questionsTable(shown).Render())
	ctx.println(mutedStyle.Render(fmt.Sprintf("%d unasked of %d %s.",
		open, len(questions), pluralize(len(questions), "question", "questions"))))
	return nil
}

func questionsTable(questions []models.Question) *table.Table {
	rows := make([][]string, 0, len(questions))
	for _, q := range questions {
		text := q.Text
		if q.Answer != "" {
			text += "\n→ " + q.Answer
		}
		rows = append(rows, []string{
			shortID(q.ID),
			string(q.Type),
			string(q.Status),
			text,
			formatDate(dateOf(q.CreatedAt)),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "FOR", "STATUS", "QUESTION", "ADDED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

type QuestionsAnswerCmd struct {
	ID     string   `arg:"" help:"Question id or a unique prefix of it."`
	Answer []string `arg:"" optional:"" help:"What you were told."`
	Reopen bool     `help:"Mark the question unasked again instead."`
}

func (c *QuestionsAnswerCmd) Run(ctx *Context) error {
	questions := storage.LoadQuestions(ctx.Store)
	q, err := journal.ResolveQuestion(questions, c.ID)
	if err != nil {
		return err
	}

	status := models.QuestionAnswered
	upd := journal.QuestionUpdate{Status: &status}
	if c.Reopen {
		status = models.QuestionUnasked
	}
	if len(c.Answer) > 0 {
		answer := strings.Join(c.Answer, " ")
		upd.Answer = &answer
	}

	questions, _ = ctx.journal().UpdateQuestion(questions, q.ID, upd)
	storage.SaveQuestions(ctx.Store, questions)
	ctx.printf("✓ Marked question %s %s\n", shortID(q.ID), status)
	return nil
}

type QuestionsDeleteCmd struct {
	ID  string `arg:"" help:"Question id or a unique prefix of it."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *QuestionsDeleteCmd) Run(ctx *Context) error {
	questions := storage.LoadQuestions(ctx.Store)
	q, err := journal.ResolveQuestion(questions, c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		confirmed, err := ctx.prompter().Confirm(
			fmt.Sprintf("Delete question %q?", preview(q.Text, notesPreviewLen)),
			"Delete", "Cancel")
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.println("Delete cancelled.")
			return nil
		}
	}

	storage.SaveQuestions(ctx.Store, journal.DeleteQuestion(questions, q.ID))
	ctx.printf("✓ Deleted question %s\n", shortID(q.ID))
	return nil
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// dateOf returns the date part of a stored timestamp.
func dateOf(stamp string) string {
	date, _, _ := strings.Cut(stamp, "T")
	return date
}
