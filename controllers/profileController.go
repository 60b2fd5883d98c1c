package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/easyshop-store/easyshop-api/models"
	"github.com/easyshop-store/easyshop-api/stores"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileController struct {
	profiles *stores.ProfileStore
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{profiles: stores.NewProfileStore(db)}
}

func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	profile, err := c.profiles.GetByUserID(userID)
	if err != nil {
		respondStoreError(ctx, err, "Profile not found")
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// CreateProfile creates the current user's profile. A user has at most one
// profile; a second create is a conflict and leaves the original untouched.
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var profile models.Profile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	profile.UserID = userID

	_, err := c.profiles.GetByUserID(userID)
	if err == nil {
		sendErrorResponse(ctx, http.StatusConflict, "Profile already exists")
		return
	}
	if !errors.Is(err, stores.ErrNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := c.profiles.Create(&profile); err != nil {
		log.Println("Profile creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, profile)
}

// UpdateProfile fully replaces the contact and shipping fields of the
// current user's profile.
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var profile models.Profile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	profile.UserID = userID

	if err := c.profiles.Update(profile); err != nil {
		respondStoreError(ctx, err, "Profile not found")
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
