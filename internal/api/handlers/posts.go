package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/servicepost/content-engine/internal/models"
	"github.com/servicepost/content-engine/internal/repository"
	"github.com/servicepost/content-engine/internal/service/content"
)

// PostHandler serves persisted blog posts
type PostHandler struct {
	PostRepo repository.PostRepository
	RunRepo  repository.RunRepository
}

// NewPostHandler creates a new post handler
func NewPostHandler(repoFactory *repository.Factory) *PostHandler {
	return &PostHandler{
		PostRepo: repoFactory.PostRepository,
		RunRepo:  repoFactory.RunRepository,
	}
}

// ListPosts returns posts, newest first, optionally filtered by business
func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	if businessParam := c.Query("business_id"); businessParam != "" {
		businessID, err := uuid.Parse(businessParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid business ID",
			})
		}
		posts, err := h.PostRepo.FindByBusinessID(businessID, limit, offset)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to list posts",
			})
		}
		return c.JSON(fiber.Map{"success": true, "data": posts})
	}

	posts, err := h.PostRepo.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to list posts",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": posts})
}

// GetPost returns one post by ID
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, httpErr := h.findPost(c)
	if post == nil {
		return httpErr
	}
	return c.JSON(fiber.Map{"success": true, "data": post})
}

// GetPostHTML renders a post's sections as a sanitized HTML fragment for
// the external page builder
func (h *PostHandler) GetPostHTML(c *fiber.Ctx) error {
	post, httpErr := h.findPost(c)
	if post == nil {
		return httpErr
	}

	sections, err := decodeSections(post.Sections)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Stored sections are malformed",
		})
	}

	return c.Status(fiber.StatusOK).
		Type("html").
		SendString(content.BlogContentToHTML(sections))
}

// GetCompliance recomputes the compliance flags for a post's current content
func (h *PostHandler) GetCompliance(c *fiber.Ctx) error {
	post, httpErr := h.findPost(c)
	if post == nil {
		return httpErr
	}

	sections, err := decodeSections(post.Sections)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Stored sections are malformed",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    content.ScanCompliance(sections),
	})
}

// GetRuns returns the generation audit trail for a post
func (h *PostHandler) GetRuns(c *fiber.Ctx) error {
	post, httpErr := h.findPost(c)
	if post == nil {
		return httpErr
	}

	runs, err := h.RunRepo.FindByPostID(post.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch generation runs",
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": runs})
}

// PublishPost marks a draft post published
func (h *PostHandler) PublishPost(c *fiber.Ctx) error {
	post, httpErr := h.findPost(c)
	if post == nil {
		return httpErr
	}

	if post.Status != "draft" {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   "Only draft posts can be published",
			"status":  post.Status,
		})
	}

	if err := h.PostRepo.UpdateStatus(post.ID, "published"); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to publish post",
		})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Post published"})
}

// DeletePost soft-deletes a post
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	post, httpErr := h.findPost(c)
	if post == nil {
		return httpErr
	}

	if err := h.PostRepo.Delete(post); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete post",
		})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Post deleted"})
}

// findPost loads the post addressed by the :id param. On failure the error
// response has already been written; the post is nil and the handler
// returns the second value as-is.
func (h *PostHandler) findPost(c *fiber.Ctx) (*models.BlogPost, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid post ID",
		})
	}

	var post models.BlogPost
	if err := h.PostRepo.FindByID(id, &post); err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Post not found",
		})
	}
	return &post, nil
}

func decodeSections(data []byte) ([]content.ContentSection, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var sections []content.ContentSection
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}
