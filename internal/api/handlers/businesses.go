package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/servicepost/content-engine/internal/models"
	"github.com/servicepost/content-engine/internal/repository"
)

// BusinessHandler handles business CRUD
type BusinessHandler struct {
	BusinessRepo repository.BusinessRepository
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(repoFactory *repository.Factory) *BusinessHandler {
	return &BusinessHandler{BusinessRepo: repoFactory.BusinessRepository}
}

// CreateBusinessRequest is the payload for registering a business
type CreateBusinessRequest struct {
	Name               string `json:"name"`
	ServiceName        string `json:"service_name"`
	ServiceDescription string `json:"service_description"`
	City               string `json:"city"`
	Neighborhood       string `json:"neighborhood"`
}

// CreateBusiness registers a business that publishes content
func (h *BusinessHandler) CreateBusiness(c *fiber.Ctx) error {
	req := new(CreateBusinessRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
	}

	if req.Name == "" || req.ServiceName == "" || req.City == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "name, service_name and city are required",
		})
	}

	business := models.Business{
		Name:               req.Name,
		ServiceName:        req.ServiceName,
		ServiceDescription: req.ServiceDescription,
		City:               req.City,
		Neighborhood:       req.Neighborhood,
	}
	if err := h.BusinessRepo.Create(&business); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create business",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    business,
	})
}

// GetBusiness returns one business by ID
func (h *BusinessHandler) GetBusiness(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid business ID",
		})
	}

	var business models.Business
	if err := h.BusinessRepo.FindByID(id, &business); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Business not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    business,
	})
}

// ListBusinesses returns businesses, newest first
func (h *BusinessHandler) ListBusinesses(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	businesses, err := h.BusinessRepo.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to list businesses",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    businesses,
	})
}
