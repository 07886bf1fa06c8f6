package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ChecklistAPI/internal/middleware"
	"ChecklistAPI/internal/services"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerUser handles POST /users: creates the account and logs it in
// immediately, returning the new session token in the x-auth header.
func registerUser(userSvc *services.UserService, tokenSvc *services.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		user, err := userSvc.Register(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return serviceError(c, err)
		}
		token, err := tokenSvc.Issue(c.Request().Context(), user.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		c.Response().Header().Set(middleware.AuthHeader, token)
		return c.JSON(http.StatusOK, user.Public())
	}
}

func loginUser(userSvc *services.UserService, tokenSvc *services.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		user, err := userSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return serviceError(c, err)
		}
		token, err := tokenSvc.Issue(c.Request().Context(), user.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		c.Response().Header().Set(middleware.AuthHeader, token)
		return c.JSON(http.StatusOK, user.Public())
	}
}

// currentUser returns the caller's public view, resolved by the gate.
func currentUser() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.AuthUser(c)
		if user == nil {
			return c.NoContent(http.StatusUnauthorized)
		}
		return c.JSON(http.StatusOK, user.Public())
	}
}

// logoutUser revokes exactly the token the caller presented.
func logoutUser(tokenSvc *services.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.AuthUser(c)
		if user == nil {
			return c.NoContent(http.StatusUnauthorized)
		}
		if err := tokenSvc.Revoke(c.Request().Context(), user.UserID, middleware.AuthToken(c)); err != nil {
			return serviceError(c, err)
		}
		return c.NoContent(http.StatusOK)
	}
}

func registerUserRoutes(e *echo.Echo, userSvc *services.UserService, tokenSvc *services.TokenService, authGate echo.MiddlewareFunc) {
	// public
	e.POST("/users", registerUser(userSvc, tokenSvc))
	e.POST("/users/login", loginUser(userSvc, tokenSvc))

	// authenticated
	me := e.Group("/users/me")
	me.Use(authGate)
	me.GET("", currentUser())
	me.DELETE("/token", logoutUser(tokenSvc))
}
