package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/benbeisheim/librechess-backend/internal/middleware"
	"github.com/benbeisheim/librechess-backend/internal/model"
	"github.com/benbeisheim/librechess-backend/internal/service"
	"github.com/benbeisheim/librechess-backend/internal/ws"
)

type GameController struct {
	gameService   *service.GameService
	maxPerftDepth int
}

func NewGameController(gameService *service.GameService, maxPerftDepth int) *GameController {
	return &GameController{gameService: gameService, maxPerftDepth: maxPerftDepth}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		log.Errorf("create game: %v", err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := middleware.PlayerID(c)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(gameState)
}

// LegalMoves lists the moves of the piece on ?from=E2.
func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	from, ok := model.ParsePosition(c.Query("from"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "from must be a square such as E2",
		})
	}
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), from)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"from":  from,
		"moves": moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var payload ws.MovePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}
	req, err := payload.Request()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	gameID := c.Params("gameId")
	m, err := gc.gameService.HandleMove(gameID, middleware.PlayerID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"move":  m,
		"state": gameState,
	})
}

func (gc *GameController) Resign(c *fiber.Ctx) error {
	if err := gc.gameService.Resign(c.Params("gameId"), middleware.PlayerID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game resigned",
	})
}

// Perft compares node counts with the reference generator, ?depth=1..max.
func (gc *GameController) Perft(c *fiber.Ctx) error {
	depth := c.QueryInt("depth", 1)
	if depth < 1 || depth > gc.maxPerftDepth {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "depth out of range",
			"max":   gc.maxPerftDepth,
		})
	}
	result, err := gc.gameService.Perft(c.Params("gameId"), depth)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"result": result,
		"match":  result.Match(),
	})
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := middleware.PlayerID(c)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": service.MatchQueued,
	})
}

func (gc *GameController) LeaveMatchmaking(c *fiber.Ctx) error {
	left := gc.gameService.LeaveMatchmaking(middleware.PlayerID(c))
	return c.JSON(fiber.Map{
		"left": left,
	})
}

func (gc *GameController) MatchmakingStatus(c *fiber.Ctx) error {
	return c.JSON(gc.gameService.MatchmakingStatus(middleware.PlayerID(c)))
}
