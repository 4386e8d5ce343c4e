// Command adminctl drives the admin API from a terminal.
package main

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"eduadmin/backend/client"
	"eduadmin/backend/session"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "[adminctl] ", 0)
	if err := newApp(os.Stdout, os.Stdin, logger).RunContext(ctx, os.Args); err != nil {
		logger.Fatal(err)
	}
}

type env struct {
	out    io.Writer
	in     *bufio.Reader
	logger *log.Logger
}

func (e *env) store(c *cli.Context) session.Store {
	return session.Store{Path: c.String("token-file")}
}

func (e *env) client(c *cli.Context) *client.Client {
	return client.New(c.String("api"), session.New(e.store(c)))
}

func newApp(out io.Writer, in io.Reader, logger *log.Logger) *cli.App {
	e := &env{out: out, in: bufio.NewReader(in), logger: logger}

	return &cli.App{
		Name:  "adminctl",
		Usage: "manage the education platform from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "admin API base URL",
				Value:   "http://localhost:8080",
				EnvVars: []string{client.EnvBaseURL},
			},
			&cli.StringFlag{
				Name:    "token-file",
				Usage:   "where the bearer token is kept",
				Value:   session.DefaultPath(),
				EnvVars: []string{"EDUADMIN_TOKEN_FILE"},
			},
		},
		Writer:    out,
		ErrWriter: out,
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "log in and keep the token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"EDUADMIN_PASSWORD"}},
				},
				Action: e.login,
			},
			{
				Name:   "logout",
				Usage:  "forget the stored token",
				Action: e.logout,
			},
			{
				Name:   "whoami",
				Usage:  "show the operator behind the stored token",
				Action: e.whoami,
			},
			{
				Name:   "overview",
				Usage:  "show the dashboard cards",
				Action: e.overview,
			},
			{
				Name:  "promo",
				Usage: "promo codes",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Flags:  listFlags(&cli.StringFlag{Name: "applicable-to", Usage: "courses, internships or both"}),
						Action: e.promoList,
					},
					{
						Name: "create",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "code", Required: true},
							&cli.StringFlag{Name: "applicable-to", Value: "both"},
							&cli.StringFlag{Name: "valid-till", Required: true, Usage: "2006-01-02T15:04"},
							&cli.StringFlag{Name: "discount", Required: true, Usage: "percentage, 1 to 100"},
							&cli.StringFlag{Name: "quantity", Required: true},
							&cli.StringFlag{Name: "college"},
						},
						Action: e.promoCreate,
					},
					{
						Name: "delete",
						Flags: []cli.Flag{
							&cli.UintFlag{Name: "id", Required: true},
							&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask for confirmation"},
						},
						Action: e.promoDelete,
					},
				},
			},
			{
				Name:  "universities",
				Usage: "partner universities",
				Subcommands: []*cli.Command{
					{Name: "count", Action: e.universityCount},
				},
			},
			{
				Name:  "payments",
				Usage: "payments",
				Subcommands: []*cli.Command{
					{
						Name:   "export",
						Usage:  "write one page of payments to an .xlsx file",
						Flags:  listFlags(&cli.StringFlag{Name: "status"}, &cli.StringFlag{Name: "out", Usage: "file name, defaults to the server's"}),
						Action: e.paymentsExport,
					},
				},
			},
			{
				Name:  "enquiries",
				Usage: "enquiries",
				Subcommands: []*cli.Command{
					{
						Name:   "chart",
						Usage:  "weekly enquiry counts",
						Flags:  []cli.Flag{&cli.StringFlag{Name: "month", Usage: "YYYY-MM, defaults to this month"}},
						Action: e.enquiryChart,
					},
				},
			},
			{
				Name:  "curriculum",
				Usage: "course and internship curricula",
				Subcommands: []*cli.Command{
					{
						Name:  "apply",
						Usage: "apply builder commands from a JSON file",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "kind", Value: client.KindCourses, Usage: "courses or internships"},
							&cli.UintFlag{Name: "id", Required: true},
							&cli.PathFlag{Name: "file", Required: true, Usage: `JSON list of commands, or {"commands": [...]}`},
						},
						Action: e.curriculumApply,
					},
				},
			},
		},
	}
}

func listFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{Name: "search"},
		&cli.IntFlag{Name: "page", Value: 1},
	}, extra...)
}
