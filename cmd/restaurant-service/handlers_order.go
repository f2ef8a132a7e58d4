package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restaurante-ecom/internal/httpx"
	"github.com/MikeMC777/restaurante-ecom/internal/order"
)

type placeOrderResponse struct {
	httpx.Result
	Order *order.Order `json:"order"`
}

// placeOrderHandler godoc
// @Summary  Place an order from a cart snapshot
// @Tags     orders
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body     order.PlaceOrderRequest true "order"
// @Success  201  {object} placeOrderResponse
// @Failure  400  {object} httpx.Result
// @Router   /api/orders [post]
func placeOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.PlaceOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadJSON(c, err)
			return
		}
		o, err := svc.Place(c.Request.Context(), httpx.SessionFrom(c), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, placeOrderResponse{
			Result: httpx.Result{Success: true, Message: "Order placed successfully"},
			Order:  o,
		})
	}
}

// listOrdersByUserHandler godoc
// @Summary  Orders of a user
// @Tags     orders
// @Produce  json
// @Security BearerAuth
// @Param    userId path  string true "user id"
// @Success  200    {array} order.Order
// @Router   /api/orders/{userId} [get]
func listOrdersByUserHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListByUser(c.Request.Context(), httpx.SessionFrom(c), c.Param("userId"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// listAllOrdersHandler godoc
// @Summary  All orders
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} order.Order
// @Router   /api/admin/orders [get]
func listAllOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListAll(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// getOrderHandler godoc
// @Summary  One order by id
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Param    id  path     string true "order id"
// @Success  200 {object} order.Order
// @Failure  404 {object} httpx.Result
// @Router   /api/admin/orders/{id} [get]
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// updateOrderStatusHandler godoc
// @Summary  Change an order's status
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path     string                    true "order id"
// @Param    body body     order.UpdateStatusRequest true "status"
// @Success  200  {object} httpx.Result
// @Failure  400  {object} httpx.Result
// @Failure  404  {object} httpx.Result
// @Router   /api/admin/orders/{id} [patch]
func updateOrderStatusHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadJSON(c, err)
			return
		}
		if err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, http.StatusOK, "Order status updated")
	}
}
