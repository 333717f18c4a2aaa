package controllers

import (
	"log"
	"net/http"

	"thai-kitchen/models"
	"thai-kitchen/repositories"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menu *repositories.MenuRepository
}

func NewMenuController(menu *repositories.MenuRepository) *MenuController {
	return &MenuController{menu: menu}
}

// GetMenu godoc
// @Summary Get the menu
// @Description All available menu items with their categories
// @Tags Menu
// @Produce json
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} models.ErrorResponse
// @Router /menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	items, err := ctrl.menu.ListAvailable(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch menu: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch menu"})
		return
	}

	c.JSON(http.StatusOK, items)
}
