package commands

import (
	"context"
	"dashboard/internal/domains/entry/model/dto"
	"dashboard/internal/domains/entry/service"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"
)

var errMissingID = errors.New("missing entry id")

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// EntriesCmd implements the entries command group.
type EntriesCmd struct {
	service service.Entry

	// list flags
	search  string
	sortBy  string
	sortDir string
	asJSON  bool
}

func NewEntriesCmd(service service.Entry) *EntriesCmd {
	return &EntriesCmd{service: service}
}

// Register adds the list and show commands to the application.
func (cmd *EntriesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, cmd.listCmd(), cmd.showCmd())

	return app
}

func (cmd *EntriesCmd) jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:        "json",
		Usage:       "print JSON lines instead of a table",
		Destination: &cmd.asJSON,
	}
}

func (cmd *EntriesCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List project entries",
		UsageText: "entries list [--search <term>] [--sort-by <field>] [--sort-dir asc|desc] [--json]",
		Description: `Lists entries after search and sort, the same view the dashboard table shows.

Examples:
  entries list
  entries list --search mike
  entries list --sort-by name --sort-dir desc --json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "case-insensitive match on name, assignee or id",
				Destination: &cmd.search,
			},
			&cli.StringFlag{
				Name:        "sort-by",
				Usage:       "field to order by (id, name, status, priority, assignee, dueDate, progress)",
				Destination: &cmd.sortBy,
			},
			&cli.StringFlag{
				Name:        "sort-dir",
				Usage:       "asc or desc",
				Destination: &cmd.sortDir,
			},
			cmd.jsonFlag(),
		},
		Action: cmd.runList,
	}
}

func (cmd *EntriesCmd) showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one entry",
		UsageText: "entries show <id> [--json]",
		Flags:     []cli.Flag{cmd.jsonFlag()},
		Action:    cmd.runShow,
	}
}

func (cmd *EntriesCmd) runList(ctx context.Context, c *cli.Command) error {
	res, err := cmd.service.List(ctx, dto.ListEntriesRequest{
		Search:  cmd.search,
		SortBy:  cmd.sortBy,
		SortDir: strings.ToLower(cmd.sortDir),
	})
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	w := c.Root().Writer

	if cmd.asJSON {
		return writeLines(w, res.Entries)
	}

	if len(res.Entries) == 0 {
		_, err = fmt.Fprintf(w, "No entries match %q.\n", res.Search)

		return err //nolint:wrapcheck
	}

	rows := make([][]string, len(res.Entries))
	for i, entry := range res.Entries {
		rows[i] = []string{
			entry.ID,
			entry.Name,
			entry.Status,
			entry.Priority,
			entry.Assignee,
			entry.DueDate,
			strconv.Itoa(entry.Progress) + "%",
		}
	}

	headers := make([]string, len(res.Columns))
	for i, column := range res.Columns {
		headers[i] = column.Label
		if column.Active {
			headers[i] += " " + arrow(column.Direction)
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	_, err = fmt.Fprintf(w, "%s\n%d of %d entries\n", t.Render(), res.TotalData, res.TotalEntries)

	return err //nolint:wrapcheck
}

func (cmd *EntriesCmd) runShow(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return errMissingID
	}

	entry, err := cmd.service.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("show entry %s: %w", id, err)
	}

	w := c.Root().Writer

	if cmd.asJSON {
		return writeLines(w, []dto.EntryResponse{entry})
	}

	_, err = fmt.Fprintf(w, "%s  %s\n  status:   %s\n  priority: %s\n  assignee: %s\n  due:      %s\n  progress: %d%%\n",
		entry.ID, entry.Name, entry.Status, entry.Priority, entry.Assignee, entry.DueDate, entry.Progress)

	return err //nolint:wrapcheck
}

func writeLines[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)

	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("encode entry: %w", err)
		}
	}

	return nil
}

func arrow(direction string) string {
	if direction == "desc" {
		return "↓"
	}

	return "↑"
}
