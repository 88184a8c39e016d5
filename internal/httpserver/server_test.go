package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tinytelemetry/memory/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *StatusBoard, *gin.Engine) {
	t.Helper()
	board := NewStatusBoard()
	srv := NewServer("", board)
	srv.startTime = time.Now()
	return srv, board, srv.routes()
}

func getGame(t *testing.T, r *gin.Engine) (GameView, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/game", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("game status = %d, want %d", w.Code, http.StatusOK)
	}
	var view GameView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("unmarshal game: %v", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal game: %v", err)
	}
	return view, raw
}

func TestHealthEndpoint(t *testing.T) {
	_, _, r := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("health status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("health status = %v, want ok", body["status"])
	}
}

func TestGameEndpoint_WrongMethod(t *testing.T) {
	_, _, r := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/game", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed && w.Code != http.StatusNotFound {
		t.Errorf("game POST status = %d, want 405 or 404", w.Code)
	}
}

func TestGameEndpoint_HidesFaceDownCards(t *testing.T) {
	_, board, r := newTestServer(t)

	board.LayoutBoard(model.GridRows, model.GridCols)
	board.SetScoreText(0)
	board.SetTimeText("00:00")
	board.SetStatusText(model.StatusStarted)
	board.ShowFace(3, 6)

	view, raw := getGame(t, r)
	if len(view.Cards) != model.CardCount {
		t.Fatalf("cards = %d, want %d", len(view.Cards), model.CardCount)
	}
	if view.Cards[3].Face == nil || *view.Cards[3].Face != 6 || !view.Cards[3].FaceUp {
		t.Errorf("card 3 = %+v, want face 6 showing", view.Cards[3])
	}

	cards := raw["cards"].([]interface{})
	for i, c := range cards {
		if i == 3 {
			continue
		}
		if _, ok := c.(map[string]interface{})["face"]; ok {
			t.Errorf("card %d exposes its face while face down", i)
		}
	}
	if view.Status != model.StatusStarted {
		t.Errorf("status = %q, want %q", view.Status, model.StatusStarted)
	}
	if view.Finished || view.Summary != nil {
		t.Error("fresh game reported as finished")
	}
}

func TestGameEndpoint_ShowBackHidesAgain(t *testing.T) {
	_, board, r := newTestServer(t)

	board.LayoutBoard(model.GridRows, model.GridCols)
	board.ShowFace(0, 1)
	board.ShowBack(0)

	view, _ := getGame(t, r)
	if view.Cards[0].Face != nil {
		t.Errorf("card 0 face = %d after ShowBack, want hidden", *view.Cards[0].Face)
	}
}

func TestGameEndpoint_SummaryAndReset(t *testing.T) {
	_, board, r := newTestServer(t)

	board.LayoutBoard(model.GridRows, model.GridCols)
	board.SetScoreText(80)
	board.ShowEndOfGameDialog(80, "01:30")
	board.SetStatusText(model.StatusGameOver)

	view, _ := getGame(t, r)
	if !view.Finished || view.Summary == nil {
		t.Fatalf("view = %+v, want finished with summary", view)
	}
	if view.Summary.Score != 80 || view.Summary.Time != "01:30" {
		t.Errorf("summary = %+v", *view.Summary)
	}

	board.LayoutBoard(model.GridRows, model.GridCols)
	view, _ = getGame(t, r)
	if view.Finished || view.Summary != nil {
		t.Errorf("new game still finished: %+v", view)
	}
	if view.Games != 2 {
		t.Errorf("games = %d, want 2", view.Games)
	}
}

func TestStatusBoard_ConcurrentReads(t *testing.T) {
	board := NewStatusBoard()
	board.LayoutBoard(model.GridRows, model.GridCols)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			board.ShowFace(i%model.CardCount, i%model.PairCount)
			board.SetTimeText(fmt.Sprintf("00:%02d", i%60))
		}
	}()
	for i := 0; i < 1000; i++ {
		_ = board.View()
	}
	<-done
}

func TestServer_StartStop(t *testing.T) {
	srv := NewServer("127.0.0.1:0", NewStatusBoard())
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer srv.Stop()

	resp, err := http.Get("http://" + srv.Addr() + "/api/health")
	if err != nil {
		t.Fatalf("GET health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}
