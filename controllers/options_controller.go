package controllers

import (
	"net/http"
	"options-strategy/interfaces"
	"time"

	"github.com/gin-gonic/gin"
)

// RootMessage is returned by the liveness endpoint
const RootMessage = "Options Strategy Backend is Running"

// OptionsController serves the reference option chain and liveness endpoints
type OptionsController struct {
	chain interfaces.OptionChainSource
}

// NewOptionsController creates a new options controller
func NewOptionsController(chain interfaces.OptionChainSource) *OptionsController {
	return &OptionsController{
		chain: chain,
	}
}

// HandleRoot reports that the backend is up
// GET /
func (oc *OptionsController) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": RootMessage})
}

// HandleHealth reports readiness and when the option chain was loaded
// GET /health
func (oc *OptionsController) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                 "ok",
		"option_chain_loaded_at": oc.chain.LoadedAt().UTC().Format(time.RFC3339),
	})
}

// HandleGetOptionChain returns the preloaded option chain as-is
// GET /options
func (oc *OptionsController) HandleGetOptionChain(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", oc.chain.Raw())
}
