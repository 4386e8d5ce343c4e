package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"eduadmin/backend/curriculum"
	"eduadmin/backend/dto"
	"eduadmin/backend/listing"
	"eduadmin/backend/models"
	"eduadmin/backend/session"
	"eduadmin/backend/stats"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login needs no token.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var env envelope[LoginResult]
	err := c.call(ctx, http.MethodPost, "/api/auth/login", nil,
		dto.LoginRequest{Email: email, Password: password}, &env, false)
	return env.Data, err
}

func (c *Client) Me(ctx context.Context) (models.User, error) {
	return getData[models.User](ctx, c, "/api/auth/me", nil)
}

type Overview struct {
	Courses      int64   `json:"courses"`
	Internships  int64   `json:"internships"`
	Universities int64   `json:"universities"`
	Students     int64   `json:"students"`
	Payments     int64   `json:"payments"`
	Revenue      float64 `json:"revenue"`
}

func (c *Client) Overview(ctx context.Context) (Overview, error) {
	return getData[Overview](ctx, c, "/api/admin/overview", nil)
}

// Promo codes

func (c *Client) PromoCodes(ctx context.Context, q Query) (listing.Page[models.PromoCode], error) {
	return getPage[models.PromoCode](ctx, c, "/api/admin/promocodes", q)
}

func (c *Client) CreatePromoCode(ctx context.Context, req dto.PromoCodeRequest) (models.PromoCode, error) {
	return sendData[models.PromoCode](ctx, c, http.MethodPost, "/api/admin/promocodes", req)
}

func (c *Client) UpdatePromoCode(ctx context.Context, id uint, req dto.PromoCodeRequest) (models.PromoCode, error) {
	return sendData[models.PromoCode](ctx, c, http.MethodPut, fmt.Sprintf("/api/admin/promocodes/%d", id), req)
}

func (c *Client) DeletePromoCode(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/promocodes/%d", id))
}

func (c *Client) PreviewPromoCode(ctx context.Context, req dto.PromoPreviewRequest) (dto.PromoPreviewResponse, error) {
	return sendData[dto.PromoPreviewResponse](ctx, c, http.MethodPost, "/api/admin/promocodes/preview", req)
}

// Payments

func (c *Client) Payments(ctx context.Context, q Query) (listing.Page[models.Payment], error) {
	return getPage[models.Payment](ctx, c, "/api/admin/payments", q)
}

// ExportPayments fetches the .xlsx of the page q selects.
func (c *Client) ExportPayments(ctx context.Context, q Query) (Download, error) {
	return c.download(ctx, "/api/admin/payments/export", q.values())
}

func (c *Client) SyncPayment(ctx context.Context, id uint) (models.Payment, error) {
	return sendData[models.Payment](ctx, c, http.MethodPost, fmt.Sprintf("/api/admin/payments/%d/sync", id), nil)
}

// Universities

func (c *Client) Universities(ctx context.Context, q Query) (listing.Page[models.University], error) {
	return getPage[models.University](ctx, c, "/api/admin/universities", q)
}

// UniversityCountRetries is how many times a failed count is retried.
const UniversityCountRetries = 2

// UniversityCount retries failed attempts up to UniversityCountRetries
// times, RetryDelay apart. A missing token is not retried.
func (c *Client) UniversityCount(ctx context.Context) (int64, error) {
	type countBody struct {
		Count int64 `json:"count"`
	}
	var lastErr error
	for attempt := 0; attempt <= UniversityCountRetries; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(c.RetryDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return 0, ctx.Err()
			case <-timer.C:
			}
		}
		body, err := getData[countBody](ctx, c, "/api/admin/universities/count", nil)
		if err == nil {
			return body.Count, nil
		}
		if errors.Is(err, session.ErrNotAuthorized) {
			return 0, err
		}
		lastErr = err
	}
	return 0, lastErr
}

func (c *Client) AddCoins(ctx context.Context, id uint, amount int) (models.University, error) {
	return sendData[models.University](ctx, c, http.MethodPost,
		fmt.Sprintf("/api/admin/universities/%d/coins", id), dto.CoinsRequest{Amount: amount})
}

func (c *Client) AllotCourse(ctx context.Context, id uint, req dto.AllotCourseRequest) (models.University, error) {
	return sendData[models.University](ctx, c, http.MethodPost, fmt.Sprintf("/api/admin/universities/%d/courses", id), req)
}

func (c *Client) DeleteUniversity(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/universities/%d", id))
}

// Batches

func (c *Client) Batches(ctx context.Context, q Query) (listing.Page[models.Batch], error) {
	return getPage[models.Batch](ctx, c, "/api/admin/batches", q)
}

func (c *Client) Enroll(ctx context.Context, batchID, userID uint) (models.Batch, error) {
	return sendData[models.Batch](ctx, c, http.MethodPost,
		fmt.Sprintf("/api/admin/batches/%d/users", batchID), dto.EnrollRequest{UserID: userID})
}

func (c *Client) Unenroll(ctx context.Context, batchID, userID uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/batches/%d/users/%d", batchID, userID))
}

// Users

func (c *Client) Users(ctx context.Context, q Query) (listing.Page[models.User], error) {
	return getPage[models.User](ctx, c, "/api/admin/users", q)
}

// Courses and internships

func (c *Client) Courses(ctx context.Context, q Query) (listing.Page[models.Course], error) {
	return getPage[models.Course](ctx, c, "/api/admin/courses", q)
}

func (c *Client) Course(ctx context.Context, id uint) (models.Course, error) {
	return getData[models.Course](ctx, c, fmt.Sprintf("/api/admin/courses/%d", id), nil)
}

func (c *Client) UpdateCourse(ctx context.Context, id uint, req dto.OfferingRequest) (models.Course, error) {
	return sendData[models.Course](ctx, c, http.MethodPut, fmt.Sprintf("/api/admin/courses/%d", id), req)
}

// Offering kinds with a curriculum.
const (
	KindCourses     = "courses"
	KindInternships = "internships"
)

func curriculumPath(kind string, id uint) (string, error) {
	if kind != KindCourses && kind != KindInternships {
		return "", errors.Errorf("unknown offering kind %q", kind)
	}
	return fmt.Sprintf("/api/admin/%s/%d/curriculum", kind, id), nil
}

func (c *Client) Curriculum(ctx context.Context, kind string, id uint) (*curriculum.Outline, error) {
	path, err := curriculumPath(kind, id)
	if err != nil {
		return nil, err
	}
	return getData[*curriculum.Outline](ctx, c, path, nil)
}

// ApplyCurriculum sends the commands as one all-or-nothing batch and returns
// the stored outline.
func (c *Client) ApplyCurriculum(ctx context.Context, kind string, id uint, cmds []curriculum.Command) (*curriculum.Outline, error) {
	path, err := curriculumPath(kind, id)
	if err != nil {
		return nil, err
	}
	return sendData[*curriculum.Outline](ctx, c, http.MethodPost, path+"/commands", dto.CurriculumCommands{Commands: cmds})
}

// Media and instructors

func (c *Client) Media(ctx context.Context, q Query) (listing.Page[models.Media], error) {
	return getPage[models.Media](ctx, c, "/api/admin/media", q)
}

func (c *Client) Instructors(ctx context.Context, q Query) (listing.Page[models.Instructor], error) {
	return getPage[models.Instructor](ctx, c, "/api/admin/instructors", q)
}

// EditorData is everything the course editor loads before it opens.
type EditorData struct {
	Course      models.Course
	Instructors []models.Instructor
	Media       []models.Media
}

// CourseEditorData fetches the course, instructors and media concurrently.
// Any failure fails the whole load.
func (c *Client) CourseEditorData(ctx context.Context, id uint) (EditorData, error) {
	var data EditorData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		course, err := c.Course(ctx, id)
		data.Course = course
		return err
	})
	g.Go(func() error {
		items, err := FetchAll(ctx, func(ctx context.Context, page int) (listing.Page[models.Instructor], error) {
			return c.Instructors(ctx, Query{Page: page, PageSize: listing.MaxPageSize})
		})
		data.Instructors = items
		return err
	})
	g.Go(func() error {
		items, err := FetchAll(ctx, func(ctx context.Context, page int) (listing.Page[models.Media], error) {
			return c.Media(ctx, Query{Page: page, PageSize: listing.MaxPageSize})
		})
		data.Media = items
		return err
	})
	if err := g.Wait(); err != nil {
		return EditorData{}, err
	}
	return data, nil
}

// Enquiries

type Chart struct {
	Month string         `json:"month"`
	Weeks []stats.Bucket `json:"weeks"`
}

// EnquiryChart asks for the weekly counts of month (YYYY-MM); empty means
// the current month.
func (c *Client) EnquiryChart(ctx context.Context, month string) (Chart, error) {
	q := url.Values{}
	if month != "" {
		q.Set("month", month)
	}
	return getData[Chart](ctx, c, "/api/admin/enquiries/chart", q)
}
