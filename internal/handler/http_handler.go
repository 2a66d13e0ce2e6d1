package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/slientgoat/gl-id-generator/internal/generator"
	"github.com/slientgoat/gl-id-generator/pkg/log"
	"github.com/slientgoat/gl-id-generator/pkg/middleware"
	"github.com/slientgoat/gl-id-generator/pkg/response"
)

// Handler handles HTTP requests for the ID generator.
type Handler struct {
	registry *generator.Registry
	auth     *middleware.Auth
}

// NewHandler creates a new HTTP handler. auth may be nil, in which
// case the API is served without authentication.
func NewHandler(registry *generator.Registry, auth *middleware.Auth) *Handler {
	return &Handler{
		registry: registry,
		auth:     auth,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	if h.auth != nil {
		api.Use(h.auth.RequireAuth())
	}
	{
		namespaces := api.Group("/namespaces")
		{
			namespaces.POST("/:namespace", h.CreateNamespace)
			namespaces.POST("/:namespace/ids", h.MintID)
		}
	}
}

// MintRequest is the body of a mint call. Unixtime is optional; the
// server clock is used when it is absent.
type MintRequest struct {
	BlockID  int    `json:"block_id"`
	Unixtime *int64 `json:"unixtime"`
}

// MintResponse carries a freshly minted ID. The ID is serialized as a
// decimal string because the packed value does not survive JSON number
// round-trips in common clients.
type MintResponse struct {
	Namespace string `json:"namespace"`
	BlockID   int    `json:"block_id"`
	ID        string `json:"id"`
}

// NamespaceResponse confirms a namespace registration.
type NamespaceResponse struct {
	Namespace string `json:"namespace"`
}

// CreateNamespace registers a namespace, allocating its counter.
//
// The library's Init deliberately resets an existing counter; over the
// network that would silently restart the seed window for everyone
// sharing the namespace, so repeated registrations are rejected here.
func (h *Handler) CreateNamespace(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	namespace := c.Param("namespace")
	if h.registry.Has(namespace) {
		response.Conflict(c, "namespace already registered")
		return
	}

	h.registry.Init(namespace)
	l.Info().Str(log.FieldNamespace, namespace).Msg("namespace registered")
	response.Created(c, NamespaceResponse{Namespace: namespace})
}

// MintID mints one ID under a registered namespace.
func (h *Handler) MintID(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	namespace := c.Param("namespace")
	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid mint request")
		response.BadRequest(c, err.Error())
		return
	}

	// An unregistered namespace is a caller error over the network, not
	// the in-process contract violation the library treats it as.
	if !h.registry.Has(namespace) {
		response.NotFound(c, "namespace not registered")
		return
	}

	var (
		id  uint64
		err error
	)
	if req.Unixtime != nil {
		id, err = h.registry.MakeAt(namespace, req.BlockID, *req.Unixtime)
	} else {
		id, err = h.registry.Make(namespace, req.BlockID)
	}
	if err != nil {
		if errors.Is(err, generator.ErrInvalidBlockID) || errors.Is(err, generator.ErrInvalidTimestamp) {
			response.BadRequest(c, err.Error())
			return
		}
		l.Error().Err(err).Str(log.FieldNamespace, namespace).Msg("mint failed")
		response.InternalError(c, "failed to mint id")
		return
	}

	l.Debug().
		Str(log.FieldNamespace, namespace).
		Int(log.FieldBlockID, req.BlockID).
		Msg("id minted")

	response.Success(c, MintResponse{
		Namespace: namespace,
		BlockID:   req.BlockID,
		ID:        strconv.FormatUint(id, 10),
	})
}
