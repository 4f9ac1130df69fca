package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/librechess-backend/internal/config"
)

type BoardController struct {
	colors       config.BoardColors
	defaultColor string
}

func NewBoardController(colors config.BoardColors, defaultColor string) *BoardController {
	return &BoardController{colors: colors, defaultColor: defaultColor}
}

func (bc *BoardController) Colors(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"default": bc.defaultColor,
		"presets": bc.colors,
	})
}

func (bc *BoardController) Color(c *fiber.Ctx) error {
	color, ok := bc.colors.Get(c.Params("preset"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown board color preset",
		})
	}
	return c.JSON(color)
}
