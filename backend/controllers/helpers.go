package controllers

import (
	"strconv"

	"eduadmin/backend/listing"
	"eduadmin/backend/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// bind parses the JSON body into v and runs its validation rules.
func bind(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot parse JSON")
	}
	return validation.Struct(v)
}

func listParams(c *fiber.Ctx) listing.Params {
	size := c.Query("pageSize")
	if size == "" {
		size = c.Query("page_size")
	}
	return listing.ParseParams(c.Query("search"), c.Query("page"), size)
}

// find loads one row by id, wrapping storage errors.
func find[T any](db *gorm.DB, id uint, preload ...string) (*T, error) {
	var row T
	q := db
	for _, p := range preload {
		q = q.Preload(p)
	}
	if err := q.First(&row, id).Error; err != nil {
		return nil, errors.Wrapf(err, "load %d", id)
	}
	return &row, nil
}

// loadAll fetches a whole collection, newest first.
func loadAll[T any](q *gorm.DB) ([]T, error) {
	var rows []T
	if err := q.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list")
	}
	return rows, nil
}

func remove[T any](db *gorm.DB, id uint) error {
	res := db.Delete(new(T), id)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete %d", id)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(gorm.ErrRecordNotFound, "delete %d", id)
	}
	return nil
}
