package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/restaurante-ecom/docs"
	"github.com/MikeMC777/restaurante-ecom/internal/booking"
	"github.com/MikeMC777/restaurante-ecom/internal/cart"
	"github.com/MikeMC777/restaurante-ecom/internal/httpx"
	"github.com/MikeMC777/restaurante-ecom/internal/menu"
	"github.com/MikeMC777/restaurante-ecom/internal/order"
	"github.com/MikeMC777/restaurante-ecom/internal/payment"
	"github.com/MikeMC777/restaurante-ecom/internal/receipt"
	"github.com/MikeMC777/restaurante-ecom/internal/user"
)

// services is everything the router dispatches to.
type services struct {
	users    *user.Service
	menu     *menu.Service
	cart     *cart.Service
	orders   *order.Service
	payments *payment.Service
	receipts *receipt.Service
	bookings *booking.Service
}

type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(svc services, tokens httpx.TokenVerifier, db pinger, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(log), gin.Recovery())

	r.GET("/healthz", healthHandler(db))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := httpx.Authorize(tokens, httpx.Public)
	signedIn := httpx.Authorize(tokens, httpx.User)
	owner := httpx.Authorize(tokens, httpx.Owner)
	admin := httpx.Authorize(tokens, httpx.Admin)

	api := r.Group("/api")

	api.POST("/auth/signup", public, signupHandler(svc.users))
	api.POST("/auth/login", public, loginHandler(svc.users))
	api.GET("/users/:userId", owner, getUserHandler(svc.users))

	api.GET("/menu", public, listMenuHandler(svc.menu))
	api.GET("/tables", public, listTablesHandler(svc.bookings))

	api.POST("/cart/:userId", owner, addToCartHandler(svc.cart))
	api.PUT("/cart/:userId/:itemName", owner, setCartQuantityHandler(svc.cart))
	api.GET("/cart/:userId", owner, getCartHandler(svc.cart))
	api.GET("/cart/:userId/total", owner, cartTotalHandler(svc.cart))
	api.DELETE("/cart/:userId", owner, clearCartHandler(svc.cart))

	api.POST("/orders", signedIn, placeOrderHandler(svc.orders))
	api.GET("/orders/:userId", owner, listOrdersByUserHandler(svc.orders))

	api.POST("/payment", signedIn, submitPaymentHandler(svc.payments))

	api.GET("/receipts/:userId", owner, listReceiptsHandler(svc.receipts))
	api.GET("/receipts/:userId/latest", owner, latestReceiptHandler(svc.receipts))
	api.GET("/receipts/:userId/latest/qrcode", owner, receiptQRCodeHandler(svc.receipts))

	api.POST("/booking", signedIn, bookTableHandler(svc.bookings))
	api.GET("/bookings/:userId", owner, listBookingsByUserHandler(svc.bookings))

	adm := api.Group("/admin", admin)
	adm.GET("/menu", adminMenuHandler(svc.menu))
	adm.POST("/menu", createMenuItemHandler(svc.menu))
	adm.PUT("/menu/:id", updateMenuItemHandler(svc.menu))
	adm.DELETE("/menu/:id", deleteMenuItemHandler(svc.menu))
	adm.GET("/orders", listAllOrdersHandler(svc.orders))
	adm.GET("/orders/:id", getOrderHandler(svc.orders))
	adm.PATCH("/orders/:id", updateOrderStatusHandler(svc.orders))
	adm.GET("/payments", listPaymentsHandler(svc.payments))
	adm.PATCH("/payments/:id", updatePaymentStatusHandler(svc.payments))
	adm.GET("/bookings", listAllBookingsHandler(svc.bookings))

	return r
}

func healthHandler(db pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				_ = c.Error(err)
				c.String(http.StatusServiceUnavailable, "db unavailable")
				return
			}
		}
		c.String(http.StatusOK, "ok")
	}
}
