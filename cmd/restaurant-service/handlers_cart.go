package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
	"github.com/MikeMC777/restaurante-ecom/internal/cart"
	"github.com/MikeMC777/restaurante-ecom/internal/httpx"
)

var errQuantityRequired = apperr.Validation("quantity is required")

// addToCartHandler godoc
// @Summary  Add an item to the cart
// @Tags     cart
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    userId path     string              true "user id"
// @Param    body   body     cart.AddItemRequest true "item"
// @Success  200    {object} httpx.Result
// @Failure  400    {object} httpx.Result
// @Failure  404    {object} httpx.Result
// @Router   /api/cart/{userId} [post]
func addToCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cart.AddItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadJSON(c, err)
			return
		}
		err := svc.AddItem(c.Request.Context(), httpx.SessionFrom(c), c.Param("userId"), in.ItemID, in.Quantity)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, http.StatusOK, "Item added to cart")
	}
}

// setCartQuantityHandler godoc
// @Summary  Set the quantity of a cart line
// @Tags     cart
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    userId   path     string                  true "user id"
// @Param    itemName path     string                  true "menu item name"
// @Param    body     body     cart.SetQuantityRequest true "quantity, 0 removes"
// @Success  200      {object} httpx.Result
// @Failure  404      {object} httpx.Result
// @Router   /api/cart/{userId}/{itemName} [put]
func setCartQuantityHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cart.SetQuantityRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadJSON(c, err)
			return
		}
		if in.Quantity == nil {
			httpx.Fail(c, errQuantityRequired)
			return
		}
		err := svc.SetQuantity(c.Request.Context(), httpx.SessionFrom(c), c.Param("userId"), c.Param("itemName"), *in.Quantity)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, http.StatusOK, "Cart updated")
	}
}

// getCartHandler godoc
// @Summary  Cart contents
// @Description With populate=true every line carries its menu item.
// @Tags     cart
// @Produce  json
// @Security BearerAuth
// @Param    userId   path  string true  "user id"
// @Param    populate query bool   false "resolve menu items"
// @Success  200      {array}  cart.Line
// @Router   /api/cart/{userId} [get]
func getCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, sess, userID := c.Request.Context(), httpx.SessionFrom(c), c.Param("userId")

		populate, _ := strconv.ParseBool(c.Query("populate"))
		var (
			items any
			err   error
		)
		if populate {
			items, err = svc.Lines(ctx, sess, userID)
		} else {
			items, err = svc.Entries(ctx, sess, userID)
		}
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// cartTotalHandler godoc
// @Summary  Cart total
// @Tags     cart
// @Produce  json
// @Security BearerAuth
// @Param    userId path     string true "user id"
// @Success  200    {object} cart.TotalResponse
// @Router   /api/cart/{userId}/total [get]
func cartTotalHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Total(c.Request.Context(), httpx.SessionFrom(c), c.Param("userId"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// clearCartHandler godoc
// @Summary  Empty the cart
// @Tags     cart
// @Produce  json
// @Security BearerAuth
// @Param    userId path     string true "user id"
// @Success  200    {object} httpx.Result
// @Router   /api/cart/{userId} [delete]
func clearCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), httpx.SessionFrom(c), c.Param("userId")); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, http.StatusOK, "Cart cleared")
	}
}
