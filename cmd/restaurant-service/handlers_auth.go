package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restaurante-ecom/internal/httpx"
	"github.com/MikeMC777/restaurante-ecom/internal/user"
)

// signupHandler godoc
// @Summary  Create an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body     user.SignupRequest true "account"
// @Success  201  {object} user.AuthResponse
// @Failure  400  {object} httpx.Result
// @Failure  409  {object} httpx.Result
// @Router   /api/auth/signup [post]
func signupHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.SignupRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadJSON(c, err)
			return
		}
		res, err := svc.Signup(c.Request.Context(), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, res)
	}
}

// loginHandler godoc
// @Summary  Log in
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body     user.LoginRequest true "credentials"
// @Success  200  {object} user.AuthResponse
// @Failure  401  {object} httpx.Result
// @Failure  403  {object} httpx.Result
// @Router   /api/auth/login [post]
func loginHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.LoginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadJSON(c, err)
			return
		}
		res, err := svc.Login(c.Request.Context(), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// getUserHandler godoc
// @Summary  User profile
// @Tags     users
// @Produce  json
// @Security BearerAuth
// @Param    userId path     string true "user id"
// @Success  200    {object} user.Profile
// @Failure  404    {object} httpx.Result
// @Router   /api/users/{userId} [get]
func getUserHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), httpx.SessionFrom(c), c.Param("userId"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
