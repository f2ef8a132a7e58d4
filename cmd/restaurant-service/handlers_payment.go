package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restaurante-ecom/internal/httpx"
	"github.com/MikeMC777/restaurante-ecom/internal/payment"
	"github.com/MikeMC777/restaurante-ecom/internal/receipt"
)

// submitPaymentHandler godoc
// @Summary  Pay, write the receipt and empty the cart
// @Tags     payment
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body     payment.SubmitRequest true "payment"
// @Success  201  {object} payment.SubmitResponse
// @Failure  400  {object} httpx.Result
// @Failure  404  {object} httpx.Result
// @Router   /api/payment [post]
func submitPaymentHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in payment.SubmitRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadJSON(c, err)
			return
		}
		res, err := svc.Submit(c.Request.Context(), httpx.SessionFrom(c), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, res)
	}
}

// listPaymentsHandler godoc
// @Summary  All payments
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} payment.Payment
// @Router   /api/admin/payments [get]
func listPaymentsHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListAll(c.Request.Context())
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// updatePaymentStatusHandler godoc
// @Summary  Change a payment's status
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path     string                      true "payment id"
// @Param    body body     payment.UpdateStatusRequest true "status"
// @Success  200  {object} httpx.Result
// @Failure  404  {object} httpx.Result
// @Router   /api/admin/payments/{id} [patch]
func updatePaymentStatusHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in payment.UpdateStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadJSON(c, err)
			return
		}
		if err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status); err != nil {
			httpx.Fail(c, err)
			return
		}
		httpx.OK(c, http.StatusOK, "Payment status updated")
	}
}

// listReceiptsHandler godoc
// @Summary  Receipts of a user
// @Tags     receipts
// @Produce  json
// @Security BearerAuth
// @Param    userId path  string true "user id"
// @Success  200    {array} receipt.Receipt
// @Router   /api/receipts/{userId} [get]
func listReceiptsHandler(svc *receipt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListByUser(c.Request.Context(), httpx.SessionFrom(c), c.Param("userId"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// latestReceiptHandler godoc
// @Summary  Most recent receipt of a user
// @Tags     receipts
// @Produce  json
// @Security BearerAuth
// @Param    userId path     string true "user id"
// @Success  200    {object} receipt.Receipt
// @Failure  404    {object} httpx.Result
// @Router   /api/receipts/{userId}/latest [get]
func latestReceiptHandler(svc *receipt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc, err := svc.Latest(c.Request.Context(), httpx.SessionFrom(c), c.Param("userId"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, rc)
	}
}

// receiptQRCodeHandler godoc
// @Summary  QR code of the most recent receipt
// @Tags     receipts
// @Produce  png
// @Security BearerAuth
// @Param    userId path  string true  "user id"
// @Param    size   query int    false "pixels, default 256"
// @Success  200    {file} binary
// @Failure  404    {object} httpx.Result
// @Router   /api/receipts/{userId}/latest/qrcode [get]
func receiptQRCodeHandler(svc *receipt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc, err := svc.Latest(c.Request.Context(), httpx.SessionFrom(c), c.Param("userId"))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
		png, err := receipt.QRCode(rc, min(size, 1024))
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}
