package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/handler"
	"taskboard/internal/kpi"
	"taskboard/internal/model"
	"taskboard/internal/storage"
	"taskboard/internal/store"
)

func setupTest(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adapter := storage.NewFileAdapter(filepath.Join(t.TempDir(), "kanban-data.json"))
	st := store.New(adapter)

	engine := kpi.NewEngine(kpi.NewSeededEstimator(1))
	boardHandler := handler.NewBoardHandler(st)
	columnHandler := handler.NewColumnHandler(st)
	cardHandler := handler.NewCardHandler(st)
	kpiHandler := handler.NewKPIHandler(st, engine)
	exportHandler := handler.NewExportHandler(st, engine)

	r := gin.New()
	r.POST("/boards", boardHandler.Create)
	r.GET("/boards", boardHandler.GetAll)
	r.GET("/boards/active", boardHandler.GetActive)
	r.PUT("/boards/active", boardHandler.SetActive)
	r.GET("/boards/:id", boardHandler.GetByID)
	r.PUT("/boards/:id", boardHandler.Update)
	r.DELETE("/boards/:id", boardHandler.Delete)
	r.POST("/boards/:id/columns", columnHandler.Create)
	r.PUT("/boards/:id/columns/:column_id", columnHandler.Update)
	r.DELETE("/boards/:id/columns/:column_id", columnHandler.Delete)
	r.POST("/boards/:id/columns/:column_id/cards", cardHandler.Create)
	r.PUT("/boards/:id/columns/:column_id/cards/:card_id", cardHandler.Update)
	r.DELETE("/boards/:id/columns/:column_id/cards/:card_id", cardHandler.Delete)
	r.POST("/boards/:id/cards/move", cardHandler.Move)
	r.GET("/kpis", kpiHandler.Get)
	r.GET("/boards/:id/export", exportHandler.Export)

	return r, st
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createdID(t *testing.T, resp *httptest.ResponseRecorder) uuid.UUID {
	t.Helper()
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body handler.CreatedResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	id, err := uuid.Parse(body.ID)
	require.NoError(t, err)
	return id
}

func TestCreateBoard_Success(t *testing.T) {
	router, st := setupTest(t)

	resp := doJSON(t, router, "POST", "/boards", handler.CreateBoardRequest{
		Title:       "Roadmap",
		Description: "plans",
	})

	id := createdID(t, resp)
	board, err := st.Board(id)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap", board.Title)
}

func TestCreateBoard_MissingTitle(t *testing.T) {
	router, _ := setupTest(t)

	resp := doJSON(t, router, "POST", "/boards", map[string]string{"description": "no title"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateBoard_WhitespaceTitle(t *testing.T) {
	router, _ := setupTest(t)

	resp := doJSON(t, router, "POST", "/boards", handler.CreateBoardRequest{Title: "   "})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetBoards_IncludesSeededBoard(t *testing.T) {
	router, _ := setupTest(t)

	resp := doJSON(t, router, "GET", "/boards", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	var body handler.BoardListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Boards, 1)
	assert.Equal(t, "Main Board", body.Boards[0].Title)
	require.NotNil(t, body.ActiveBoard)
	assert.Equal(t, body.Boards[0].ID, *body.ActiveBoard)
}

func TestGetBoard_NotFound(t *testing.T) {
	router, _ := setupTest(t)

	resp := doJSON(t, router, "GET", "/boards/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(t, router, "GET", "/boards/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateAndDeleteBoard(t *testing.T) {
	router, st := setupTest(t)
	id := createdID(t, doJSON(t, router, "POST", "/boards", handler.CreateBoardRequest{Title: "Temp"}))

	title := "Renamed"
	resp := doJSON(t, router, "PUT", "/boards/"+id.String(), handler.UpdateBoardRequest{Title: &title})
	require.Equal(t, http.StatusNoContent, resp.Code)
	board, err := st.Board(id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", board.Title)

	resp = doJSON(t, router, "DELETE", "/boards/"+id.String(), nil)
	require.Equal(t, http.StatusNoContent, resp.Code)
	_, err = st.Board(id)
	assert.ErrorIs(t, err, store.ErrBoardNotFound)
}

func TestSetActiveBoard(t *testing.T) {
	router, st := setupTest(t)
	seeded := st.Snapshot().Boards[0].ID
	createdID(t, doJSON(t, router, "POST", "/boards", handler.CreateBoardRequest{Title: "Second"}))

	resp := doJSON(t, router, "PUT", "/boards/active", handler.SetActiveBoardRequest{BoardID: seeded.String()})
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, router, "GET", "/boards/active", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var board model.Board
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &board))
	assert.Equal(t, seeded, board.ID)

	resp = doJSON(t, router, "PUT", "/boards/active", handler.SetActiveBoardRequest{BoardID: uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateCard_InvalidPriority(t *testing.T) {
	router, st := setupTest(t)
	board := st.Snapshot().Boards[0]

	url := fmt.Sprintf("/boards/%s/columns/%s/cards", board.ID, board.Columns[0].ID)
	resp := doJSON(t, router, "POST", url, map[string]string{
		"title":    "task",
		"priority": "urgent",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMoveCard_EndToEnd(t *testing.T) {
	router, st := setupTest(t)
	board := st.Snapshot().Boards[0]
	todo, done := board.Columns[0], board.Columns[2]

	cardsURL := fmt.Sprintf("/boards/%s/columns/%s/cards", board.ID, todo.ID)
	first := createdID(t, doJSON(t, router, "POST", cardsURL, handler.CreateCardRequest{Title: "one"}))
	second := createdID(t, doJSON(t, router, "POST", cardsURL, handler.CreateCardRequest{Title: "two", Priority: "high"}))

	srcIdx, dstIdx := 1, 0
	resp := doJSON(t, router, "POST", fmt.Sprintf("/boards/%s/cards/move", board.ID), handler.MoveCardRequest{
		SourceColumnID: todo.ID.String(),
		DestColumnID:   done.ID.String(),
		SourceIndex:    &srcIdx,
		DestIndex:      &dstIdx,
	})
	require.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())

	after, err := st.Board(board.ID)
	require.NoError(t, err)
	require.Len(t, after.Columns[0].Cards, 1)
	require.Len(t, after.Columns[2].Cards, 1)
	assert.Equal(t, first, after.Columns[0].Cards[0].ID)
	assert.Equal(t, second, after.Columns[2].Cards[0].ID)
}

func TestMoveCard_SourceIndexOutOfRange(t *testing.T) {
	router, st := setupTest(t)
	board := st.Snapshot().Boards[0]

	srcIdx, dstIdx := 5, 0
	resp := doJSON(t, router, "POST", fmt.Sprintf("/boards/%s/cards/move", board.ID), handler.MoveCardRequest{
		SourceColumnID: board.Columns[0].ID.String(),
		DestColumnID:   board.Columns[1].ID.String(),
		SourceIndex:    &srcIdx,
		DestIndex:      &dstIdx,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetKPIs(t *testing.T) {
	router, st := setupTest(t)
	board := st.Snapshot().Boards[0]
	cardsURL := fmt.Sprintf("/boards/%s/columns/%s/cards", board.ID, board.Columns[2].ID)
	createdID(t, doJSON(t, router, "POST", cardsURL, handler.CreateCardRequest{Title: "done task"}))

	resp := doJSON(t, router, "GET", "/kpis?sort=efficiency", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	var data kpi.Data
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &data))
	assert.Equal(t, 1, data.ProjectKPIs.TotalBoards)
	assert.Equal(t, 1, data.ProjectKPIs.TotalCards)
	assert.Equal(t, 100, data.ProjectKPIs.GlobalCompletionRate)
}

func TestGetKPIs_UnknownSortKey(t *testing.T) {
	router, _ := setupTest(t)

	resp := doJSON(t, router, "GET", "/kpis?sort=bogus", nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestExportBoard(t *testing.T) {
	router, st := setupTest(t)
	board := st.Snapshot().Boards[0]

	resp := doJSON(t, router, "GET", fmt.Sprintf("/boards/%s/export", board.ID), nil)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "Main Board.xlsx")
	assert.NotEmpty(t, resp.Body.Bytes())
}

func TestExportBoard_NotFound(t *testing.T) {
	router, _ := setupTest(t)

	resp := doJSON(t, router, "GET", "/boards/"+uuid.NewString()+"/export", nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
