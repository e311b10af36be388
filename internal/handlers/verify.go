package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go"
	verify "github.com/twilio/twilio-go/rest/verify/v2"
	"gorm.io/gorm"

	"github.com/SeaS7/mentor-verse/backend/internal/models"
)

// VerifyHandler drives phone verification through Twilio Verify. The client
// reads TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN from the environment.
type VerifyHandler struct {
	db         *gorm.DB
	client     *twilio.RestClient
	serviceSID string
}

func NewVerifyHandler(db *gorm.DB) *VerifyHandler {
	return &VerifyHandler{
		db:         db,
		client:     twilio.NewRestClient(),
		serviceSID: os.Getenv("TWILIO_VERIFY_SERVICE_SID"),
	}
}

// SendCode sends an OTP to the given phone number and stores the number on
// the caller's account (PROTECTED)
func (h *VerifyHandler) SendCode(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input struct {
		Phone string `json:"phone" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Phone number is required")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	params := &verify.CreateVerificationParams{}
	params.SetTo(input.Phone)
	params.SetChannel("sms")

	if _, err := h.client.VerifyV2.CreateVerification(h.serviceSID, params); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to send verification code")
		return
	}

	if err := h.db.Model(&user).Update("phone", input.Phone).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to save phone number")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Verification code sent",
	})
}

// CheckCode validates the OTP and marks the caller's account verified
// (PROTECTED)
func (h *VerifyHandler) CheckCode(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input struct {
		Code string `json:"code" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Verification code is required")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	if user.Phone == "" {
		fail(c, http.StatusBadRequest, "No phone number on file, request a code first")
		return
	}

	params := &verify.CreateVerificationCheckParams{}
	params.SetTo(user.Phone)
	params.SetCode(input.Code)

	resp, err := h.client.VerifyV2.CreateVerificationCheck(h.serviceSID, params)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to check verification code")
		return
	}

	if resp.Status == nil || *resp.Status != "approved" {
		fail(c, http.StatusBadRequest, "Invalid verification code")
		return
	}

	if err := h.db.Model(&user).Update("verified", true).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update verification state")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Phone number verified",
	})
}
