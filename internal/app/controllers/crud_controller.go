package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aditya/universe/internal/app/models"
	"github.com/aditya/universe/internal/app/models/dto"
	"github.com/aditya/universe/internal/app/repositories"
	"github.com/aditya/universe/internal/middleware"
	"github.com/aditya/universe/internal/pkg/apperrors"
)

// CrudController serves the five generic operations for one post collection.
// It is implemented once and instantiated per collection; no operation
// checks ownership, so any caller holding an identifier may mutate or
// delete the document.
type CrudController struct {
	store  repositories.DocumentStore
	coll   models.Collection
	logger zerolog.Logger
}

// NewCrudController creates a new CrudController for the collection
func NewCrudController(store repositories.DocumentStore, coll models.Collection, logger zerolog.Logger) *CrudController {
	return &CrudController{
		store:  store,
		coll:   coll,
		logger: logger.With().Str("collection", coll.Name).Logger(),
	}
}

// errorIsNotFound reports whether err is the ordinary not-found outcome,
// which is not worth an error log.
func errorIsNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound)
}

// Create handles POST /<collection>
func (c *CrudController) Create(ctx *gin.Context) {
	doc := models.Document{}
	if err := ctx.ShouldBindJSON(&doc); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid request body"), "Failed to create item")
		return
	}

	created, err := c.store.Insert(ctx.Request.Context(), doc)
	if err != nil {
		c.logger.Error().Err(err).Msg("Create failed")
		middleware.HandleAPIError(ctx, err, "Failed to create item")
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// GetAll handles GET /<collection>, newest first
func (c *CrudController) GetAll(ctx *gin.Context) {
	items, err := c.store.FindAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Fetch failed")
		middleware.HandleAPIError(ctx, err, "Failed to fetch items")
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// GetOne handles GET /<collection>/:id
func (c *CrudController) GetOne(ctx *gin.Context) {
	item, err := c.store.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if !errorIsNotFound(err) {
			c.logger.Error().Err(err).Str("id", ctx.Param("id")).Msg("Fetch one failed")
		}
		middleware.HandleAPIError(ctx, err, "Failed to fetch item")
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// Update handles PUT /<collection>/:id. The body is merged field-by-field
// into the stored document; the post-merge document is returned.
func (c *CrudController) Update(ctx *gin.Context) {
	patch := models.Document{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid request body"), "Failed to update item")
		return
	}

	updated, err := c.store.UpdateByID(ctx.Request.Context(), ctx.Param("id"), patch)
	if err != nil {
		if !errorIsNotFound(err) {
			c.logger.Error().Err(err).Str("id", ctx.Param("id")).Msg("Update failed")
		}
		middleware.HandleAPIError(ctx, err, "Failed to update item")
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /<collection>/:id
func (c *CrudController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.store.DeleteByID(ctx.Request.Context(), id); err != nil {
		if !errorIsNotFound(err) {
			c.logger.Error().Err(err).Str("id", id).Msg("Delete failed")
		}
		middleware.HandleAPIError(ctx, err, "Failed to delete item")
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{
		Message: "Item deleted successfully",
		ID:      id,
	})
}
