package controller

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/librechess-backend/internal/config"
	"github.com/benbeisheim/librechess-backend/internal/model"
	"github.com/benbeisheim/librechess-backend/internal/service"
	"github.com/benbeisheim/librechess-backend/internal/ws"
)

func TestCreateAndJoinGame(t *testing.T) {
	app, _ := newTestApp(t)

	if status := call(t, app, "POST", "/api/game/create", "", nil, nil); status != fiber.StatusUnauthorized {
		t.Fatalf("create without player id: status %d", status)
	}

	var created struct {
		GameID string `json:"game_id"`
	}
	call(t, app, "POST", "/api/game/create", "alice", nil, &created)
	if created.GameID == "" {
		t.Fatalf("no game id returned")
	}

	tests := []struct {
		player string
		status int
		color  model.Color
	}{
		{"alice", fiber.StatusOK, model.White},
		{"bob", fiber.StatusOK, model.Black},
		{"carol", fiber.StatusConflict, ""},
	}
	for _, tt := range tests {
		var joined struct {
			Color model.Color `json:"color"`
		}
		status := call(t, app, "POST", "/api/game/join/"+created.GameID, tt.player, nil, &joined)
		if status != tt.status || joined.Color != tt.color {
			t.Fatalf("join %s: status %d color %q", tt.player, status, joined.Color)
		}
	}

	if status := call(t, app, "POST", "/api/game/join/missing", "alice", nil, nil); status != fiber.StatusNotFound {
		t.Fatalf("join unknown game: status %d", status)
	}
}

func TestGetGameState(t *testing.T) {
	app, _ := newTestApp(t)
	gameID := seatedGame(t, app)

	var view service.GameView
	if status := call(t, app, "GET", "/api/game/"+gameID, "carol", nil, &view); status != fiber.StatusOK {
		t.Fatalf("status %d", status)
	}
	if view.ToMove != model.White || view.Players.White != "alice" || view.Players.Black != "bob" {
		t.Fatalf("view = %+v %+v", view.ToMove, view.Players)
	}
	if view.LegalMoves.Count() != 20 {
		t.Fatalf("legal moves = %d, want 20", view.LegalMoves.Count())
	}
	if status := call(t, app, "GET", "/api/game/missing", "carol", nil, nil); status != fiber.StatusNotFound {
		t.Fatalf("unknown game: status %d", status)
	}
}

func TestLegalMovesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	gameID := seatedGame(t, app)

	var body struct {
		From  model.Position   `json:"from"`
		Moves []model.Movement `json:"moves"`
	}
	if status := call(t, app, "GET", "/api/game/"+gameID+"/moves?from=E2", "alice", nil, &body); status != fiber.StatusOK {
		t.Fatalf("status %d", status)
	}
	if body.From != model.MustParsePosition("E2") || len(body.Moves) != 2 {
		t.Fatalf("body = %+v", body)
	}
	if status := call(t, app, "GET", "/api/game/"+gameID+"/moves?from=e2", "alice", nil, nil); status != fiber.StatusBadRequest {
		t.Fatalf("lower case square: status %d", status)
	}
}

func TestMakeMoveEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	gameID := seatedGame(t, app)
	target := "/api/game/" + gameID + "/move"

	var moved struct {
		Move  model.Movement   `json:"move"`
		State service.GameView `json:"state"`
	}
	status := call(t, app, "POST", target, "alice", ws.MovePayload{From: "E2", To: "E4"}, &moved)
	if status != fiber.StatusOK {
		t.Fatalf("status %d", status)
	}
	if moved.Move.To != model.MustParsePosition("E4") || len(moved.State.MoveHistory) != 1 {
		t.Fatalf("moved = %+v", moved.Move)
	}
	if moved.State.MoveHistory[0].Notation != "e4" {
		t.Fatalf("notation = %q", moved.State.MoveHistory[0].Notation)
	}

	tests := []struct {
		name   string
		player string
		body   any
		status int
	}{
		{"not your turn", "alice", ws.MovePayload{From: "D2", To: "D4"}, fiber.StatusUnprocessableEntity},
		{"illegal", "bob", ws.MovePayload{From: "E7", To: "E3"}, fiber.StatusUnprocessableEntity},
		{"bad square", "bob", ws.MovePayload{From: "E7", To: "E9X"}, fiber.StatusBadRequest},
		{"spectator", "carol", ws.MovePayload{From: "E7", To: "E5"}, fiber.StatusForbidden},
		{"bad body", "bob", "E7E5", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp struct {
				Error string `json:"error"`
			}
			if status := call(t, app, "POST", target, tt.player, tt.body, &resp); status != tt.status {
				t.Fatalf("status %d, want %d (%s)", status, tt.status, resp.Error)
			}
			if resp.Error == "" {
				t.Fatalf("error body missing")
			}
		})
	}
}

func TestResignEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	gameID := seatedGame(t, app)

	if status := call(t, app, "POST", "/api/game/"+gameID+"/resign", "bob", nil, nil); status != fiber.StatusOK {
		t.Fatalf("resign: status %d", status)
	}
	var view service.GameView
	call(t, app, "GET", "/api/game/"+gameID, "bob", nil, &view)
	if view.Resolve == nil || view.Resolve.Winner != model.White {
		t.Fatalf("resolve = %+v", view.Resolve)
	}
	status := call(t, app, "POST", "/api/game/"+gameID+"/move", "alice", ws.MovePayload{From: "E2", To: "E4"}, nil)
	if status != fiber.StatusConflict {
		t.Fatalf("move after resignation: status %d", status)
	}
}

func TestMatchmakingEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	var joined struct {
		Status service.MatchState `json:"status"`
	}
	call(t, app, "POST", "/api/game/matchmaking/join", "alice", nil, &joined)
	if joined.Status != service.MatchQueued {
		t.Fatalf("join status = %s", joined.Status)
	}
	if status := call(t, app, "POST", "/api/game/matchmaking/join", "alice", nil, nil); status != fiber.StatusConflict {
		t.Fatalf("second join: status %d", status)
	}

	var status service.MatchStatus
	call(t, app, "GET", "/api/game/matchmaking/status", "alice", nil, &status)
	if status.Status != service.MatchQueued || status.Match != nil {
		t.Fatalf("status = %+v", status)
	}

	var left struct {
		Left bool `json:"left"`
	}
	call(t, app, "POST", "/api/game/matchmaking/leave", "alice", nil, &left)
	if !left.Left {
		t.Fatalf("alice should have left the queue")
	}
	call(t, app, "GET", "/api/game/matchmaking/status", "alice", nil, &status)
	if status.Status != service.MatchIdle {
		t.Fatalf("status after leaving = %s", status.Status)
	}
}

func TestPerftEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	gameID := seatedGame(t, app)

	var body struct {
		Result struct {
			Nodes     uint64 `json:"nodes"`
			Reference uint64 `json:"reference"`
		} `json:"result"`
		Match bool `json:"match"`
	}
	if status := call(t, app, "GET", "/api/game/"+gameID+"/perft?depth=2", "alice", nil, &body); status != fiber.StatusOK {
		t.Fatalf("status %d", status)
	}
	if !body.Match || body.Result.Nodes != 400 || body.Result.Reference != 400 {
		t.Fatalf("body = %+v", body)
	}
	if status := call(t, app, "GET", "/api/game/"+gameID+"/perft?depth=3", "alice", nil, nil); status != fiber.StatusBadRequest {
		t.Fatalf("depth above max: status %d", status)
	}
}

func TestBoardColorEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	var colors struct {
		Default string             `json:"default"`
		Presets config.BoardColors `json:"presets"`
	}
	if status := call(t, app, "GET", "/api/board/colors", "", nil, &colors); status != fiber.StatusOK {
		t.Fatalf("status %d", status)
	}
	if colors.Default != "brown" || len(colors.Presets) != 6 {
		t.Fatalf("colors = %+v", colors)
	}

	var green config.BoardColor
	call(t, app, "GET", "/api/board/colors/green", "", nil, &green)
	if green.Dark != "#739552" {
		t.Fatalf("green = %+v", green)
	}
	if status := call(t, app, "GET", "/api/board/colors/pink", "", nil, nil); status != fiber.StatusNotFound {
		t.Fatalf("unknown preset: status %d", status)
	}
}
