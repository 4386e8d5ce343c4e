package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"eduadmin/backend/client"
	"eduadmin/backend/curriculum"
	"eduadmin/backend/dto"
	"eduadmin/backend/models"
	"eduadmin/backend/session"
	"eduadmin/backend/views"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func (e *env) notifier() views.Notifier {
	return views.LogNotifier{Logger: e.logger}
}

func (e *env) table(header ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	return w
}

// prompter asks on the terminal.
type prompter struct{ e *env }

func (p prompter) Confirm(prompt string) bool {
	fmt.Fprintf(p.e.out, "%s [y/N] ", prompt)
	line, _ := p.e.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (e *env) login(c *cli.Context) error {
	res, err := e.client(c).Login(c.Context, c.String("email"), c.String("password"))
	if err != nil {
		return err
	}
	if err := e.store(c).Save(res.Token); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "logged in as %s (%s)\n", res.User.Email, res.User.Role)
	return nil
}

func (e *env) logout(c *cli.Context) error {
	if err := e.store(c).Clear(); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "logged out")
	return nil
}

func (e *env) whoami(c *cli.Context) error {
	info, err := session.New(e.store(c)).Info()
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "user %d, role %s, expires %s\n", info.UserID, info.Role, info.ExpiresAt.Format("2006-01-02 15:04 MST"))
	return nil
}

func (e *env) overview(c *cli.Context) error {
	ov, err := e.client(c).Overview(c.Context)
	if err != nil {
		return err
	}
	w := e.table("COURSES", "INTERNSHIPS", "UNIVERSITIES", "STUDENTS", "PAYMENTS", "REVENUE")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%.2f\n", ov.Courses, ov.Internships, ov.Universities, ov.Students, ov.Payments, ov.Revenue)
	return w.Flush()
}

func (e *env) promoScreen(c *cli.Context) *views.PromoCodesScreen {
	var confirm views.Confirmer = prompter{e}
	if c.Bool("yes") {
		confirm = views.Always{}
	}
	return views.NewPromoCodesScreen(e.client(c), e.notifier(), confirm)
}

func (e *env) promoList(c *cli.Context) error {
	screen := e.promoScreen(c)
	if err := screen.Refresh(c.Context); err != nil {
		return err
	}
	screen.List.SetSearchTerm(c.String("search"))
	screen.List.SetFilter(c.String("applicable-to"))
	screen.List.SetPage(c.Int("page"))

	page := screen.List.Page()
	if page.Total == 0 {
		fmt.Fprintln(e.out, "no promo codes")
		return nil
	}
	w := e.table("ID", "CODE", "FOR", "DISCOUNT", "QUANTITY", "COLLEGE", "VALID TILL")
	for _, p := range page.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d%%\t%d\t%s\t%s\n", p.ID, p.Promocode, p.ApplicableTo,
			p.DiscountPercentage, p.Quantity, p.ForCollege, p.ValidTill.UTC().Format("2006-01-02 15:04"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "page %d of %d, %d total\n", page.Page, page.TotalPages, page.Total)
	return nil
}

func (e *env) promoCreate(c *cli.Context) error {
	form := views.PromoCodeForm{
		Promocode:          c.String("code"),
		ApplicableTo:       c.String("applicable-to"),
		ValidTill:          c.String("valid-till"),
		DiscountPercentage: c.String("discount"),
		Quantity:           c.String("quantity"),
		ForCollege:         c.String("college"),
	}
	return e.promoScreen(c).Create(c.Context, form)
}

func (e *env) promoDelete(c *cli.Context) error {
	screen := e.promoScreen(c)
	if err := screen.Refresh(c.Context); err != nil {
		return err
	}
	id := c.Uint("id")
	code, ok := screen.List.Find(func(p models.PromoCode) bool { return p.ID == id })
	if !ok {
		return errors.Errorf("promo code %d not found", id)
	}
	sent, err := screen.Delete(c.Context, code)
	if err == nil && !sent {
		fmt.Fprintln(e.out, "cancelled")
	}
	return err
}

func (e *env) universityCount(c *cli.Context) error {
	n, err := e.client(c).UniversityCount(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, n)
	return nil
}

func (e *env) paymentsExport(c *cli.Context) error {
	q := client.Query{
		Search:  c.String("search"),
		Page:    c.Int("page"),
		Filters: map[string]string{"status": c.String("status")},
	}
	d, err := e.client(c).ExportPayments(c.Context, q)
	if err != nil {
		return err
	}
	name := c.String("out")
	if name == "" {
		name = d.Name
	}
	if name == "" {
		name = "payments.xlsx"
	}
	if err := os.WriteFile(name, d.Data, 0o644); err != nil {
		return errors.Wrap(err, "write export")
	}
	fmt.Fprintf(e.out, "wrote %s (%d bytes)\n", name, len(d.Data))
	return nil
}

func (e *env) enquiryChart(c *cli.Context) error {
	chart, err := e.client(c).EnquiryChart(c.Context, c.String("month"))
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, chart.Month)
	w := e.table("WEEK", "ENQUIRIES")
	for _, b := range chart.Weeks {
		fmt.Fprintf(w, "%s\t%d\n", b.Label, b.Count)
	}
	return w.Flush()
}

// readCommands accepts a bare list or the request body shape.
func readCommands(path string) ([]curriculum.Command, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read commands")
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var cmds []curriculum.Command
		return cmds, errors.Wrap(sonic.UnmarshalString(trimmed, &cmds), "decode commands")
	}
	var body dto.CurriculumCommands
	return body.Commands, errors.Wrap(sonic.UnmarshalString(trimmed, &body), "decode commands")
}

func (e *env) curriculumApply(c *cli.Context) error {
	cmds, err := readCommands(c.Path("file"))
	if err != nil {
		return err
	}
	if len(cmds) == 0 {
		return errors.New("no commands in file")
	}
	out, err := e.client(c).ApplyCurriculum(c.Context, c.String("kind"), c.Uint("id"), cmds)
	if err != nil {
		return err
	}
	chapters := 0
	for _, u := range out.Units {
		chapters += len(u.Chapters)
	}
	fmt.Fprintf(e.out, "applied %d commands: %d units, %d chapters, %d lessons\n",
		len(cmds), len(out.Units), chapters, out.LessonCount())
	return nil
}
