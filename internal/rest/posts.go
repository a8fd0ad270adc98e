package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/arieldiaz/bitacora/api"
	"github.com/arieldiaz/bitacora/blog/application"
	"github.com/arieldiaz/bitacora/blog/domain"
)

type PostsHandler struct {
	service *application.PostService
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.Message{Message: "Working fine (:"})
}

func (h *PostsHandler) ListPosts(c *gin.Context) {
	records, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err, api.Error{
			Error:   "Error al cargar los posts",
			Message: "No se pudieron cargar los posts",
		})
		return
	}

	out := make([]any, 0, len(records))
	for _, record := range records {
		out = append(out, toAPI(record))
	}
	c.JSON(http.StatusOK, out)
}

func (h *PostsHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	if c.Query("format") == "html" {
		html, err := h.service.RenderPost(c.Request.Context(), slug)
		if err != nil {
			respondError(c, err, api.Error{
				Error:   "Error al cargar el post",
				Message: "No se pudo cargar el post",
			})
			return
		}
		c.JSON(http.StatusOK, api.RenderedPost{Slug: slug, HTML: html})
		return
	}

	record, err := h.service.GetPost(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err, api.Error{
			Error:   "Error al cargar el post",
			Message: "No se pudo cargar el post",
		})
		return
	}
	c.JSON(http.StatusOK, toAPI(record))
}

func (h *PostsHandler) CreatePost(c *gin.Context) {
	req := &api.CreatePostRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, api.Error{
			Error:   "Invalid request body",
			Message: "El cuerpo de la petición no es válido",
		})
		return
	}

	draft := domain.Draft{
		Title:       req.Title,
		Date:        req.Date,
		Description: req.Description,
		Tags:        req.Tags,
		Author:      req.Author,
		Body:        req.Body,
	}

	if err := h.service.CreatePost(c.Request.Context(), draft); err != nil {
		respondError(c, err, api.Error{
			Error:   "Error creating post",
			Message: "No se pudo crear el post",
		})
		return
	}

	c.JSON(http.StatusCreated, api.Message{Message: "Post creado exitosamente"})
}

// respondError maps domain errors onto the wire taxonomy. Anything not
// in the taxonomy is a storage failure and gets the handler's fallback
// body with a 500.
func respondError(c *gin.Context, err error, fallback api.Error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, api.Error{
			Error:   "Missing required fields",
			Message: "Todos los campos son requeridos",
		})
	case errors.Is(err, domain.ErrNoPosts):
		c.JSON(http.StatusNotFound, api.Error{
			Error:   "No posts found",
			Message: "No se encontraron posts",
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, api.Error{
			Error:   "Post not found",
			Message: "El post solicitado no existe",
		})
	case errors.Is(err, domain.ErrSlugExists):
		c.JSON(http.StatusConflict, api.Error{
			Error:   "Slug already exists",
			Message: "Ya existe un post con ese título",
		})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Storage failure")
		c.JSON(http.StatusInternalServerError, fallback)
	}
}

// toAPI converts a domain record into its backend-specific response
// shape, serializing dates as ISO-8601 UTC strings.
func toAPI(record domain.Record) any {
	switch p := record.(type) {
	case *domain.FilePost:
		return api.FilePost{
			Slug:        p.Slug,
			Title:       p.Title,
			Date:        p.Date.UTC().Format(time.RFC3339),
			Description: p.Description,
			Body:        p.Body,
		}
	case *domain.TablePost:
		return api.TablePost{
			ID:     p.ID,
			Title:  p.Title,
			Date:   p.Date.UTC().Format(time.RFC3339),
			Tags:   p.Tags,
			Author: p.Author,
			Slug:   p.Slug,
			Body:   p.Body,
		}
	}
	return record
}
