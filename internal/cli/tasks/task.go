package tasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/orbit/internal/cli"
	"github.com/julianstephens/orbit/internal/models"
	"github.com/julianstephens/orbit/internal/recorder"
	"github.com/julianstephens/orbit/internal/tui"
	"github.com/julianstephens/orbit/internal/utils"
)

type TaskAddCmd struct {
	Title       []string `arg:"" help:"Task title."`
	Category    string   `short:"c" help:"Category." default:"general"`
	Priority    string   `short:"p" help:"Priority (low|medium|high)." default:"medium" enum:"low,medium,high"`
	Due         string   `short:"d" help:"Due date (YYYY-MM-DD)."`
	DueTime     string   `short:"t" help:"Due time (HH:MM)."`
	Recurrence  string   `short:"r" help:"Recurrence (daily|weekly|monthly)."`
	Description string   `help:"Longer description."`
	Meeting     bool     `help:"Mark the task as a meeting."`
	Done        bool     `help:"Add the task already completed."`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	var due *time.Time
	if c.Due != "" {
		d, err := utils.ParseDateInLocation(c.Due, ctx.History.Location())
		if err != nil {
			return fmt.Errorf("invalid due date %q: %w", c.Due, err)
		}
		due = &d
	}

	task, err := recorder.Task(recorder.TaskInput{
		Title:       strings.Join(c.Title, " "),
		Category:    c.Category,
		Priority:    models.Priority(c.Priority),
		DueDate:     due,
		DueTime:     c.DueTime,
		Recurrence:  models.RecurrenceKind(c.Recurrence),
		Description: c.Description,
		IsMeeting:   c.Meeting,
		Completed:   c.Done,
		CreatedAt:   ctx.History.Now(),
	})
	if err != nil {
		return err
	}
	ctx.Report(ctx.History.AddTask(task))

	fmt.Printf("✓ Task added: %s (%s)\n", task.Title, task.ID[:8])
	return nil
}

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task id or id prefix."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	task, err := setCompletion(ctx, c.ID, true)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Completed: %s\n", task.Title)
	return nil
}

type TaskUndoCmd struct {
	ID string `arg:"" help:"Task id or id prefix."`
}

func (c *TaskUndoCmd) Run(ctx *cli.Context) error {
	task, err := setCompletion(ctx, c.ID, false)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Marked as not done: %s\n", task.Title)
	return nil
}

func setCompletion(ctx *cli.Context, ref string, completed bool) (models.Task, error) {
	found, err := ctx.History.FindTask(ref)
	if err != nil {
		return models.Task{}, err
	}
	task, res, err := ctx.History.SetTaskCompletion(found.ID, completed)
	if err != nil {
		return models.Task{}, err
	}
	ctx.Report(res)
	return task, nil
}

type TaskListCmd struct {
	All bool `short:"a" help:"Show tasks from every day, not just today."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	list := ctx.History.TodayTasks()
	if c.All {
		list = ctx.History.Tasks()
	}
	fmt.Print(tui.RenderTasks(list))
	return nil
}
