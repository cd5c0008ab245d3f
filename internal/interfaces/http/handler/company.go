package handler

import (
	"net/http"

	billingapp "github.com/billing/backend/internal/application/billing"
	"github.com/billing/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company-related API endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *billingapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *billingapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// List returns all companies ordered by name
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// Get returns a single company with its invoice IDs
func (h *CompanyHandler) Get(c *gin.Context) {
	code := c.Param("code")

	company, err := h.companyService.Get(c.Request.Context(), code)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// Create creates a new company, deriving its code from the name
func (h *CompanyHandler) Create(c *gin.Context) {
	var req billingapp.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

// Update replaces a company's name and description
func (h *CompanyHandler) Update(c *gin.Context) {
	code := c.Param("code")

	var req billingapp.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), code, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// Delete removes a company that has no invoices
func (h *CompanyHandler) Delete(c *gin.Context) {
	code := c.Param("code")

	if err := h.companyService.Delete(c.Request.Context(), code); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeletedResponse())
}

// RegisterRoutes registers company routes on the given router group
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		companies.GET("", h.List)
		companies.GET("/:code", h.Get)
		companies.POST("", h.Create)
		companies.PUT("/:code", h.Update)
		companies.DELETE("/:code", h.Delete)
	}
}
