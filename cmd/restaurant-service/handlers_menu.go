package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restaurante-ecom/internal/httpx"
	"github.com/MikeMC777/restaurante-ecom/internal/menu"
)

// listMenuHandler godoc
// @Summary  Menu items
// @Tags     menu
// @Produce  json
// @Success  200 {array} menu.MenuItem
// @Router   /api/menu [get]
func listMenuHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// adminMenuHandler godoc
// @Summary  Menu grouped by category
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} menu.Category
// @Router   /api/admin/menu [get]
func adminMenuHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := svc.ListGrouped(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, groups)
	}
}

// createMenuItemHandler godoc
// @Summary  Add a menu item
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body     menu.CreateItemRequest true "item"
// @Success  201  {object} menu.MenuItem
// @Failure  400  {object} httpx.Result
// @Router   /api/admin/menu [post]
func createMenuItemHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menu.CreateItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadJSON(c, err)
			return
		}
		m, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}

// updateMenuItemHandler godoc
// @Summary  Update a menu item
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path     string                 true "item id"
// @Param    body body     menu.UpdateItemRequest true "changes"
// @Success  200  {object} httpx.Result
// @Failure  404  {object} httpx.Result
// @Router   /api/admin/menu/{id} [put]
func updateMenuItemHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menu.UpdateItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadJSON(c, err)
			return
		}
		if err := svc.Update(c.Request.Context(), c.Param("id"), in); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, http.StatusOK, "Item updated successfully")
	}
}

// deleteMenuItemHandler godoc
// @Summary  Delete a menu item
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Param    id  path     string true "item id"
// @Success  200 {object} httpx.Result
// @Failure  404 {object} httpx.Result
// @Router   /api/admin/menu/{id} [delete]
func deleteMenuItemHandler(svc *menu.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, http.StatusOK, "Item deleted successfully")
	}
}
