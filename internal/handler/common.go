package handler

import (
	"net/http"
	"strconv"

	"github.com/classhub/classhub-backend/internal/middleware"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
	"github.com/classhub/classhub-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// idParam parses a numeric path parameter. Responds with ErrInvalidID and
// returns false when the value is not a positive integer.
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// uuidParam parses a UUID path parameter.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// updateOwnProfile handles the multipart self-profile update shared by all
// three roles: optional name/email fields plus an optional avatar file.
func updateOwnProfile(c *gin.Context, roster *service.RosterService, media *service.MediaService, role model.Role, accountID int) {
	var req model.UpdateProfileRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	var imagePath *string
	if file, header, err := c.Request.FormFile("avatar"); err == nil {
		defer file.Close()
		path, err := media.SaveAvatar(file, header)
		if err != nil {
			failUpload(c, err)
			return
		}
		imagePath = &path
	}

	account, err := roster.UpdateProfile(c.Request.Context(), role, accountID, req, imagePath)
	if err != nil {
		failRoster(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"account": account})
}

// currentAccount returns the resolved account set by the role middleware.
func currentAccount(c *gin.Context) (*model.Account, bool) {
	account := middleware.GetAccount(c)
	if account == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return nil, false
	}
	return account, true
}
