package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dph/portal/internal/database/repository"
	"github.com/dph/portal/internal/service"
)

func handleInternalServerError(c *gin.Context, err error) {
	zap.S().Errorw(
		"Internal server error",
		"route", c.FullPath(),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
}

func handleInvalidInputError(c *gin.Context, err error) {
	zap.S().Warnw(
		"Invalid input error",
		"route", c.FullPath(),
		"error", err,
	)
	c.JSON(http.StatusBadRequest, messageResponse{Message: "You have provided a wrong input. Please check your parameters"})
}

func (s *Server) getContact(c *gin.Context) {
	settings, err := s.Contact.Get(c.Request.Context())
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, messageResponse{Message: "Contact information not found"})
		return
	}
	if err != nil {
		handleInternalServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) updateContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleInvalidInputError(c, err)
		return
	}
	settings, err := s.Contact.Update(c.Request.Context(), repository.ContactSettings{
		EnAddress:    req.EnAddress,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Fax:          req.Fax,
	})
	if err != nil {
		handleInternalServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) submitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleInvalidInputError(c, err)
		return
	}
	fb, err := s.Feedback.Submit(c.Request.Context(), repository.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Mobile:  req.Mobile,
		Message: req.Message,
	})
	if errors.Is(err, service.ErrMissingFields) {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "All fields are required."})
		return
	}
	if err != nil {
		zap.S().Errorw("Error saving feedback", "error", err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: "Server error, please try again later."})
		return
	}
	feedbackSubmitted.Inc()
	c.JSON(http.StatusCreated, feedbackResponse{Message: "Feedback submitted successfully", Feedback: fb})
}

func (s *Server) listFeedback(c *gin.Context) {
	list, err := s.Feedback.List(c.Request.Context())
	if err != nil {
		zap.S().Errorw("Error fetching feedbacks", "error", err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: "Server error"})
		return
	}
	if list == nil {
		list = []repository.Feedback{}
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) createBanner(c *gin.Context) {
	var req createBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleInvalidInputError(c, err)
		return
	}
	b, err := s.Banners.Create(c.Request.Context(), req.Banner)
	if errors.Is(err, service.ErrBannerRequired) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Banner image is required."})
		return
	}
	if err != nil {
		handleInternalServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bannerResponse{Message: "Homepage banner uploaded successfully", Banner: b})
}

func (s *Server) listBanners(c *gin.Context) {
	list, err := s.Banners.List(c.Request.Context())
	if err != nil {
		handleInternalServerError(c, err)
		return
	}
	if list == nil {
		list = []repository.HomepageBanner{}
	}
	c.JSON(http.StatusOK, bannersResponse{Message: "Homepage banners fetched successfully", Banners: list})
}

func (s *Server) getBanner(c *gin.Context) {
	var uri bannerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		handleInvalidInputError(c, err)
		return
	}
	b, err := s.Banners.Get(c.Request.Context(), uri.ID)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, messageResponse{Message: "Homepage banner not found"})
		return
	}
	if err != nil {
		handleInternalServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, bannerResponse{Message: "Homepage banner fetched successfully", Banner: b})
}

func (s *Server) updateBanner(c *gin.Context) {
	var uri bannerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		handleInvalidInputError(c, err)
		return
	}
	var req updateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleInvalidInputError(c, err)
		return
	}
	u := service.BannerUpdate{Banner: req.Banner}
	if req.IsActive != nil {
		active := bool(*req.IsActive)
		u.IsActive = &active
	}
	b, err := s.Banners.Update(c.Request.Context(), uri.ID, u)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, messageResponse{Message: "Banner not found"})
		return
	}
	if err != nil {
		handleInternalServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, bannerResponse{Message: "Homepage banner updated successfully", Banner: b})
}

func (s *Server) toggleBanner(c *gin.Context) {
	var uri bannerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		handleInvalidInputError(c, err)
		return
	}
	b, err := s.Banners.ToggleStatus(c.Request.Context(), uri.ID)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, messageResponse{Message: "Homepage banner not found"})
		return
	}
	if err != nil {
		handleInternalServerError(c, err)
		return
	}
	status := "Inactive"
	if b.IsActive {
		status = "Active"
	}
	c.JSON(http.StatusOK, bannerResponse{
		Message: fmt.Sprintf("Homepage banner status changed to %s", status),
		Banner:  b,
	})
}
