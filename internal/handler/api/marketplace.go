package api

import (
	"errors"
	"net/http"

	reqdto "ecotrack/internal/handler/dto/request"
	resdto "ecotrack/internal/handler/dto/response"
	"ecotrack/internal/handler/middleware"
	"ecotrack/internal/usecase/commands"
	"ecotrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MarketplaceHandler struct {
	redemptionCommands commands.RedemptionCommands
	contentCommands    commands.ContentCommands
	marketplaceQueries queries.MarketplaceQueries
}

func NewMarketplaceHandler(
	redemptionCommands commands.RedemptionCommands,
	contentCommands commands.ContentCommands,
	marketplaceQueries queries.MarketplaceQueries,
) *MarketplaceHandler {
	return &MarketplaceHandler{
		redemptionCommands: redemptionCommands,
		contentCommands:    contentCommands,
		marketplaceQueries: marketplaceQueries,
	}
}

// @Summary List vouchers
// @Description Active vouchers newest first; includes the caller's points when authenticated
// @Tags marketplace
// @Produce json
// @Success 200 {object} queries.MarketplaceView
// @Router /vouchers [get]
func (h *MarketplaceHandler) ListVouchers(c *gin.Context) {
	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	view, err := h.marketplaceQueries.ListVouchers(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Get voucher
// @Tags marketplace
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 200 {object} queries.VoucherView
// @Failure 404 {object} map[string]string
// @Router /vouchers/{id} [get]
func (h *MarketplaceHandler) GetVoucher(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid voucher ID",
		})
		return
	}

	view, err := h.marketplaceQueries.GetVoucher(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVoucherNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Voucher not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Create voucher
// @Tags marketplace
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVoucherRequest true "Voucher"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /vouchers [post]
func (h *MarketplaceHandler) CreateVoucher(c *gin.Context) {
	var req reqdto.CreateVoucherRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.contentCommands.CreateVoucher(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidVoucher):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid voucher details",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Redeem voucher
// @Description Spend points on a voucher; atomic across stock, points and the redemption record
// @Tags marketplace
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /redeem [post]
func (h *MarketplaceHandler) Redeem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RedeemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	receipt, err := h.redemptionCommands.Redeem(c.Request.Context(), userID, req.VoucherID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRedeemVoucherNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Voucher not found",
			})
		case errors.Is(err, commands.ErrRedeemUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, commands.ErrVoucherOutOfStock):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Voucher out of stock",
			})
		case errors.Is(err, commands.ErrAlreadyRedeemed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Voucher already redeemed",
			})
		case errors.Is(err, commands.ErrVoucherExpired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Voucher expired",
			})
		case errors.Is(err, commands.ErrInsufficientPoints):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Insufficient points",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedeemReceipt(receipt))
}

// @Summary Redemption history
// @Tags marketplace
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.RedemptionView
// @Failure 401 {object} map[string]string
// @Router /redemptions [get]
func (h *MarketplaceHandler) ListRedemptions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.marketplaceQueries.ListRedemptions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
