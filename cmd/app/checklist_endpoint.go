package main

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ChecklistAPI/internal/apperr"
	"ChecklistAPI/internal/middleware"
	"ChecklistAPI/internal/services"
)

type createChecklistRequest struct {
	Text string `json:"text"`
}

// updateChecklistRequest carries the only two fields an update accepts;
// anything else in the body is ignored.
type updateChecklistRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// serviceError maps a service error onto the response contract:
// not-found answers 404 with an empty body, everything else echoes the
// error as a 400.
func serviceError(c echo.Context, err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return c.NoContent(http.StatusNotFound)
	}
	if ve, ok := apperr.AsValidation(err); ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message, "field": ve.Field})
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
}

func registerChecklistRoutes(e *echo.Echo, cs *services.ChecklistService, authGate echo.MiddlewareFunc) {
	g := e.Group("/checklists")
	g.Use(authGate)

	// CREATE
	g.POST("", func(c echo.Context) error {
		req := new(createChecklistRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		owner := middleware.AuthUser(c)
		item, err := cs.Create(c.Request().Context(), owner.UserID, req.Text)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, item)
	})

	// LIST (scoped to the caller)
	g.GET("", func(c echo.Context) error {
		owner := middleware.AuthUser(c)
		list, err := cs.List(c.Request().Context(), owner.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"checklists": list})
	})

	// GET ONE
	g.GET("/:id", func(c echo.Context) error {
		owner := middleware.AuthUser(c)
		item, err := cs.Get(c.Request().Context(), owner.UserID, c.Param("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"checklist": item})
	})

	// UPDATE
	g.PATCH("/:id", func(c echo.Context) error {
		req := new(updateChecklistRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		owner := middleware.AuthUser(c)
		item, err := cs.Update(c.Request().Context(), owner.UserID, c.Param("id"), req.Text, req.Completed)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"checklist": item})
	})

	// DELETE
	g.DELETE("/:id", func(c echo.Context) error {
		owner := middleware.AuthUser(c)
		item, err := cs.Delete(c.Request().Context(), owner.UserID, c.Param("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"checklist": item})
	})
}
