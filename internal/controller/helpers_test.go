package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/librechess-backend/internal/config"
	"github.com/benbeisheim/librechess-backend/internal/middleware"
	"github.com/benbeisheim/librechess-backend/internal/model"
	"github.com/benbeisheim/librechess-backend/internal/service"
)

const testOrigin = "http://localhost:5173"

func newTestApp(t *testing.T) (*fiber.App, *service.GameService) {
	t.Helper()
	cfg := config.Config{
		AllowedOrigins:    []string{testOrigin},
		ReadBufferSize:    1024,
		WriteBufferSize:   1024,
		MaxPerftDepth:     2,
		DefaultBoardColor: "brown",
		BoardColors:       config.DefaultBoardColors(),
	}
	gameService := service.NewGameService(service.NewGameManager(model.StandardChess()))
	app := fiber.New()
	SetupRoutes(app, gameService, cfg)
	return app, gameService
}

// call sends a request as player (no player header when empty) and decodes
// the JSON response into out when out is not nil.
func call(t *testing.T, app *fiber.App, method, target, player string, body any, out any) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if player != "" {
		req.Header.Set(middleware.PlayerIDHeader, player)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, target, err)
		}
	}
	return resp.StatusCode
}

// seatedGame creates a game over the API with alice as white and bob as black.
func seatedGame(t *testing.T, app *fiber.App) string {
	t.Helper()
	var created struct {
		GameID string `json:"game_id"`
	}
	if status := call(t, app, "POST", "/api/game/create", "alice", nil, &created); status != fiber.StatusOK {
		t.Fatalf("create: status %d", status)
	}
	for _, player := range []string{"alice", "bob"} {
		if status := call(t, app, "POST", "/api/game/join/"+created.GameID, player, nil, nil); status != fiber.StatusOK {
			t.Fatalf("join %s: status %d", player, status)
		}
	}
	return created.GameID
}
