// Package rest exposes the sheet and auth services over JSON HTTP.
package rest

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/hearthforge/sheet-api/internal/errors"
	"github.com/hearthforge/sheet-api/internal/pkg/idgen"
	"github.com/hearthforge/sheet-api/internal/services/auth"
	"github.com/hearthforge/sheet-api/internal/services/sheet"
)

// Config holds the dependencies for the REST handler
type Config struct {
	SheetService sheet.Service
	AuthService  auth.Service
	IDGen        idgen.Generator // Optional, defaults to UUID request ids
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SheetService == nil {
		vb.RequiredField("SheetService")
	}
	if c.AuthService == nil {
		vb.RequiredField("AuthService")
	}

	return vb.Build()
}

// Handler wires the service interfaces into gin routes
type Handler struct {
	sheetService sheet.Service
	authService  auth.Service
	idGen        idgen.Generator
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	gen := cfg.IDGen
	if gen == nil {
		gen = idgen.NewUUID("")
	}

	return &Handler{
		sheetService: cfg.SheetService,
		authService:  cfg.AuthService,
		idGen:        gen,
	}, nil
}

// RegisterRoutes attaches all routes to the engine
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(h.requestID())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
	}

	sheetGroup := api.Group("/sheet", h.requireAuth())
	{
		sheetGroup.GET("", h.getSheet)
		sheetGroup.PUT("", h.putSheet)

		sheetGroup.PATCH("/details", h.updateDetails)
		sheetGroup.PUT("/abilities/:ability", h.updateAbility)
		sheetGroup.POST("/proficiencies/:key/toggle", h.toggleProficiency)
		sheetGroup.POST("/expertises/:key/toggle", h.toggleExpertise)
		sheetGroup.PUT("/combat", h.updateCombat)
		sheetGroup.POST("/death-saves/:kind/:index/toggle", h.toggleDeathSave)

		sheetGroup.POST("/attacks", h.addAttack)
		sheetGroup.PUT("/attacks/:id", h.updateAttack)
		sheetGroup.DELETE("/attacks/:id", h.removeAttack)

		sheetGroup.POST("/classes", h.addClass)
		sheetGroup.PUT("/classes/:id", h.updateClass)
		sheetGroup.DELETE("/classes/:id", h.removeClass)

		sheetGroup.POST("/spells", h.addSpell)
		sheetGroup.PUT("/spells/:id", h.updateSpell)
		sheetGroup.DELETE("/spells/:id", h.removeSpell)

		sheetGroup.PUT("/spell-slots/:level", h.updateSpellSlot)
		sheetGroup.PUT("/spellcasting", h.updateSpellcasting)

		sheetGroup.PUT("/currency", h.updateCurrency)
		sheetGroup.PUT("/status", h.updateStatus)
		sheetGroup.PUT("/proficiencies-text", h.updateProficienciesText)

		sheetGroup.GET("/export", h.exportSheet)
		sheetGroup.POST("/import", h.importSheet)

		sheetGroup.POST("/backstory", h.generateBackstory)
		sheetGroup.POST("/suggest-name", h.suggestName)
	}
}

// respondError renders any service error as {"error": message} with the
// status mapped from its code.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	if code == errors.CodeInternal {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
	}
	c.JSON(code.HTTPStatus(), gin.H{"error": errors.GetMessage(err)})
}
