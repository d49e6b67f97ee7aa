package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding-planner-backend/internal/vendors/domain"
	"wedding-planner-backend/internal/vendors/usecase"
)

// VendorHandler handles vendor-related HTTP requests
type VendorHandler struct {
	vendorUsecase usecase.VendorUsecase
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorUsecase usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{
		vendorUsecase: vendorUsecase,
	}
}

// AnswerQuestionRequest records the answer to one interview question
type AnswerQuestionRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer"`
}

// GetVendors returns vendors for the authenticated user
// GET /api/vendors?type=&status=
func (h *VendorHandler) GetVendors(c *gin.Context) {
	userID := c.GetString("userID")

	vendors, err := h.vendorUsecase.GetVendors(userID, c.Query("type"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

// GetVendorByID returns one vendor with its question answers
// GET /api/vendors/:id
func (h *VendorHandler) GetVendorByID(c *gin.Context) {
	userID := c.GetString("userID")

	vendor, err := h.vendorUsecase.GetVendorByID(userID, c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// CreateVendor creates a new vendor
// POST /api/vendors
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendorUsecase.CreateVendor(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// UpdateVendor updates an existing vendor
// PATCH /api/vendors/:id
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendorUsecase.UpdateVendor(userID, c.Param("id"), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// DeleteVendor deletes a vendor
// DELETE /api/vendors/:id
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.vendorUsecase.DeleteVendor(userID, c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "vendor deleted"})
}

// AnswerQuestion records the answer to one interview question
// POST /api/vendors/:id/questions
func (h *VendorHandler) AnswerQuestion(c *gin.Context) {
	userID := c.GetString("userID")

	var req AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.vendorUsecase.AnswerQuestion(userID, c.Param("id"), req.QuestionID, req.Answer)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, answer)
}

// GetQuestions returns the interview question catalog for a vendor type
// GET /api/vendor-types/:type/questions
func (h *VendorHandler) GetQuestions(c *gin.Context) {
	questions, err := h.vendorUsecase.GetQuestions(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// GetVendorTypes returns the known vendor types with display labels
// GET /api/vendor-types
func (h *VendorHandler) GetVendorTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": domain.TypeLabels})
}

func (h *VendorHandler) renderError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrVendorNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
