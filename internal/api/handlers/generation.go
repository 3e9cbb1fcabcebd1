package handlers

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	ws "github.com/servicepost/content-engine/internal/api/websocket"
	"github.com/servicepost/content-engine/internal/config"
	"github.com/servicepost/content-engine/internal/models"
	"github.com/servicepost/content-engine/internal/repository"
	"github.com/servicepost/content-engine/internal/service/content"
	"github.com/servicepost/content-engine/internal/service/generation"
)

// GenerationHandler drives the content generation pipeline from the blog
// editor's requests
type GenerationHandler struct {
	Generator      *generation.Generator
	BusinessRepo   repository.BusinessRepository
	PostRepo       repository.PostRepository
	RunRepo        repository.RunRepository
	WebSocketHub   *ws.Hub
	Timeout        time.Duration
	activeRequests sync.Map
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(
	generator *generation.Generator,
	repoFactory *repository.Factory,
	wsHub *ws.Hub,
	cfg *config.Config,
) *GenerationHandler {
	return &GenerationHandler{
		Generator:    generator,
		BusinessRepo: repoFactory.BusinessRepository,
		PostRepo:     repoFactory.PostRepository,
		RunRepo:      repoFactory.RunRepository,
		WebSocketHub: wsHub,
		Timeout:      cfg.GenerationTimeout,
	}
}

// GeneratePostRequest is the payload for generating a new post
type GeneratePostRequest struct {
	BusinessID    string                  `json:"business_id"`
	Archetype     content.BlogArchetype   `json:"archetype"`
	Goal          content.ContentGoal     `json:"goal"`
	Tone          string                  `json:"tone"`
	Job           *content.JobRecord      `json:"job"`
	TalkingPoints []string                `json:"talking_points"`
	Layout        []content.LayoutSection `json:"layout"`
}

// RegenerateSectionRequest addresses one section of an existing post
type RegenerateSectionRequest struct {
	SectionID   string `json:"section_id"`
	SectionType string `json:"section_type"`
}

// DescribeImageRequest asks for a caption of a job photo
type DescribeImageRequest struct {
	ImageURL string `json:"image_url"`
}

// GeneratePost creates a post record and generates its content in the
// background, streaming progress over the websocket hub. Only one
// generation may be in flight per post.
func (h *GenerationHandler) GeneratePost(c *fiber.Ctx) error {
	req := new(GeneratePostRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid business ID",
		})
	}

	var business models.Business
	if err := h.BusinessRepo.FindByID(businessID, &business); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Business not found",
		})
	}

	input := buildInput(&business, req.Archetype, req.Goal, req.Tone)
	input.Job = req.Job
	input.TalkingPoints = req.TalkingPoints
	input.Layout = req.Layout

	post := models.BlogPost{
		BusinessID: business.ID,
		Archetype:  string(req.Archetype),
		Status:     "generating",
	}
	if err := h.PostRepo.Create(&post); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create post record",
		})
	}

	h.activeRequests.Store(post.ID.String(), true)
	go func() {
		defer h.activeRequests.Delete(post.ID.String())
		h.runGeneration(post.ID, input)
	}()

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"success": true,
		"message": "Content generation started",
		"data": fiber.Map{
			"post_id": post.ID,
			"status":  "generating",
		},
	})
}

// runGeneration executes one generation call and persists the outcome
func (h *GenerationHandler) runGeneration(postID uuid.UUID, input *content.GenerationInput) {
	startTime := time.Now()

	h.WebSocketHub.BroadcastToPost(postID, ws.Message{
		Type:      ws.TypeGenerationStarted,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"post_id":   postID.String(),
			"archetype": input.Archetype,
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.Timeout)
	defer cancel()

	result, err := h.Generator.GenerateBlogContent(ctx, input)
	if err != nil {
		h.recordRun(postID, "generate", "failed", "", "", err, startTime)
		h.PostRepo.UpdateStatus(postID, "failed")
		h.WebSocketHub.BroadcastToPost(postID, ws.Message{
			Type:      ws.TypeGenerationFailed,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"post_id":     postID.String(),
				"error":       err.Error(),
				"duration_ms": time.Since(startTime).Milliseconds(),
			},
		})
		return
	}

	out := result.Output
	sectionsJSON, _ := json.Marshal(out.Content)
	checklistJSON, _ := json.Marshal(out.SEOChecklist)

	var post models.BlogPost
	if err := h.PostRepo.FindByID(postID, &post); err != nil {
		return
	}
	post.Title = out.Title
	post.MetaTitle = out.MetaTitle
	post.MetaDescription = out.MetaDescription
	post.Excerpt = out.Excerpt
	post.Slug = out.Slug
	post.Sections = datatypes.JSON(sectionsJSON)
	post.SEOScore = out.SEOScore
	post.SEOChecklist = datatypes.JSON(checklistJSON)
	post.Status = "draft"
	post.ProviderUsed = result.ProviderUsed

	if err := h.PostRepo.Update(&post); err != nil {
		h.recordRun(postID, "generate", "failed", result.ProviderUsed, "", err, startTime)
		h.WebSocketHub.BroadcastToPost(postID, ws.Message{
			Type:      ws.TypeGenerationFailed,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"post_id": postID.String(),
				"error":   "Generated content could not be saved: " + err.Error(),
			},
		})
		return
	}

	h.recordRun(postID, "generate", "succeeded", result.ProviderUsed, "", nil, startTime)
	h.WebSocketHub.BroadcastToPost(postID, ws.Message{
		Type:      ws.TypeGenerationCompleted,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"post_id":       postID.String(),
			"provider_used": result.ProviderUsed,
			"cached":        result.CachedResult,
			"seo_score":     out.SEOScore,
			"sections":      len(out.Content),
			"duration_ms":   time.Since(startTime).Milliseconds(),
		},
	})
}

// RegenerateSection replaces one section of a draft post in place. Locked
// sections are refused; the replacement keeps the original section ID and
// the post's score and checklist are recomputed.
func (h *GenerationHandler) RegenerateSection(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid post ID",
		})
	}

	req := new(RegenerateSectionRequest)
	if err := c.BodyParser(req); err != nil || req.SectionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "section_id is required",
		})
	}

	if _, busy := h.activeRequests.Load(postID.String()); busy {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   "Generation already in progress for this post",
		})
	}

	var post models.BlogPost
	if err := h.PostRepo.FindByID(postID, &post); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Post not found",
		})
	}

	var sections []content.ContentSection
	if err := json.Unmarshal(post.Sections, &sections); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Stored sections are malformed",
		})
	}

	target := -1
	for i, s := range sections {
		if s.ID == req.SectionID {
			target = i
			break
		}
	}
	if target < 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Section not found",
		})
	}
	if sections[target].IsLocked {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   "Section is locked against regeneration",
		})
	}

	sectionType := req.SectionType
	if sectionType == "" {
		sectionType = sections[target].Type
	}

	var business models.Business
	if err := h.BusinessRepo.FindByID(post.BusinessID, &business); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch business data",
		})
	}
	input := buildInput(&business, content.BlogArchetype(post.Archetype), content.GoalSEORanking, "")

	startTime := time.Now()
	ctx, cancel := context.WithTimeout(c.Context(), h.Timeout)
	defer cancel()

	replacement, provider, err := h.Generator.RegenerateSection(ctx, input, sectionType, sections)
	if err != nil {
		h.recordRun(postID, "regenerate_section", "failed", "", sectionType, err, startTime)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to regenerate section: " + err.Error(),
		})
	}

	replacement.ID = sections[target].ID
	sections[target] = *replacement

	out := content.GenerationOutput{
		Title:           post.Title,
		MetaTitle:       post.MetaTitle,
		MetaDescription: post.MetaDescription,
		Excerpt:         post.Excerpt,
		Content:         sections,
		Slug:            post.Slug,
	}
	score, checklist := content.CalculateSEOScore(&out, input)

	sectionsJSON, _ := json.Marshal(sections)
	checklistJSON, _ := json.Marshal(checklist)
	post.Sections = datatypes.JSON(sectionsJSON)
	post.SEOScore = score
	post.SEOChecklist = datatypes.JSON(checklistJSON)

	if err := h.PostRepo.Update(&post); err != nil {
		h.recordRun(postID, "regenerate_section", "failed", provider, sectionType, err, startTime)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save regenerated section",
		})
	}

	h.recordRun(postID, "regenerate_section", "succeeded", provider, sectionType, nil, startTime)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"section":       replacement,
			"provider_used": provider,
			"seo_score":     score,
			"seo_checklist": checklist,
		},
	})
}

// DescribeImage captions a job photo for use in hero sections
func (h *GenerationHandler) DescribeImage(c *fiber.Ctx) error {
	req := new(DescribeImageRequest)
	if err := c.BodyParser(req); err != nil || req.ImageURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "image_url is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.Timeout)
	defer cancel()

	description, provider, err := h.Generator.DescribeJobImage(ctx, req.ImageURL)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to describe image: " + err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"description":   description,
			"provider_used": provider,
		},
	})
}

// GetGenerationStatus reports whether a post has a generation in flight
func (h *GenerationHandler) GetGenerationStatus(c *fiber.Ctx) error {
	postID := c.Params("id")
	if _, err := uuid.Parse(postID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid post ID",
		})
	}

	status := "idle"
	if _, busy := h.activeRequests.Load(postID); busy {
		status = "generating"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"status": status},
	})
}

func (h *GenerationHandler) recordRun(postID uuid.UUID, operation, status, provider, sectionType string, runErr error, startTime time.Time) {
	run := models.GenerationRun{
		PostID:       postID,
		Operation:    operation,
		Status:       status,
		ProviderUsed: provider,
		SectionType:  sectionType,
		DurationMs:   time.Since(startTime).Milliseconds(),
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}
	if err := h.RunRepo.Create(&run); err != nil {
		// Audit failures must not fail the request
		return
	}
}

func buildInput(business *models.Business, archetype content.BlogArchetype, goal content.ContentGoal, tone string) *content.GenerationInput {
	return &content.GenerationInput{
		Archetype:          archetype,
		ServiceName:        business.ServiceName,
		ServiceDescription: business.ServiceDescription,
		City:               business.City,
		Neighborhood:       business.Neighborhood,
		Goal:               goal,
		Tone:               tone,
	}
}
