package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restaurante-ecom/internal/booking"
	"github.com/MikeMC777/restaurante-ecom/internal/httpx"
)

type bookResponse struct {
	httpx.Result
	Booking *booking.Booking `json:"booking"`
}

// listTablesHandler godoc
// @Summary  Dining tables
// @Tags     booking
// @Produce  json
// @Success  200 {array} booking.Table
// @Router   /api/tables [get]
func listTablesHandler(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListTables(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// bookTableHandler godoc
// @Summary  Book a table
// @Tags     booking
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body     booking.BookRequest true "booking"
// @Success  201  {object} bookResponse
// @Failure  400  {object} httpx.Result
// @Failure  404  {object} httpx.Result
// @Router   /api/booking [post]
func bookTableHandler(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in booking.BookRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadJSON(c, err)
			return
		}
		b, err := svc.Book(c.Request.Context(), httpx.SessionFrom(c), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, bookResponse{
			Result:  httpx.Result{Success: true, Message: "Table booked successfully"},
			Booking: b,
		})
	}
}

// listBookingsByUserHandler godoc
// @Summary  Bookings of a user
// @Tags     booking
// @Produce  json
// @Security BearerAuth
// @Param    userId path  string true "user id"
// @Success  200    {array} booking.Booking
// @Router   /api/bookings/{userId} [get]
func listBookingsByUserHandler(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListByUser(c.Request.Context(), httpx.SessionFrom(c), c.Param("userId"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// listAllBookingsHandler godoc
// @Summary  All bookings
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} booking.Booking
// @Router   /api/admin/bookings [get]
func listAllBookingsHandler(svc *booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListAll(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
