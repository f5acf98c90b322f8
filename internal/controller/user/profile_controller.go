package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Careerly/internal/auth"
	"github.com/lshigami/Careerly/internal/dto"
	"github.com/lshigami/Careerly/internal/service"
	"github.com/rs/zerolog/log"
)

type ProfileController struct {
	profileService service.ProfileService
}

func NewProfileController(ps service.ProfileService) *ProfileController {
	return &ProfileController{profileService: ps}
}

// GetProfile godoc
// @Summary Get the caller's career profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.profileService.GetProfile(ctx.Request.Context(), auth.CallerFrom(ctx))
	if err != nil {
		respondError(ctx, err, "GetProfile")
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Create or replace the caller's career profile
// @Description Industry, years of experience and skills personalise generated assessments.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileDTO true "Profile fields"
// @Success 200 {object} dto.ProfileResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	caller, ok := requireCaller(ctx)
	if !ok {
		return
	}
	var req dto.UpdateProfileDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateProfile: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	profile, err := c.profileService.UpdateProfile(ctx.Request.Context(), caller, req)
	if err != nil {
		respondError(ctx, err, "UpdateProfile")
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
