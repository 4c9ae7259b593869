// Package server exposes the saved game and content pools over a REST
// API. The API is a best-effort sync target; the game itself never
// depends on it.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/content"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/storage"
)

// Server wires the HTTP routes to the sqlite store and the embedded
// content pools.
type Server struct {
	store   *storage.Store
	router  *gin.Engine
	trivia  []content.TriviaQuestion
	lessons []content.Lesson
}

// New builds a server over the given store. Content pools are loaded
// once at startup; custom rows added through the API are merged per
// request.
func New(store *storage.Store) (*Server, error) {
	trivia, err := content.LoadTrivia("")
	if err != nil {
		return nil, err
	}
	lessons, err := content.LoadSpanish("")
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:   store,
		trivia:  trivia,
		lessons: lessons,
	}
	s.router = s.buildRouter()
	return s, nil
}

// Router returns the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine { return s.router }

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/players", s.listPlayers)
	r.POST("/players", s.createPlayer)
	r.GET("/players/:id/zones", s.playerZones)
	r.POST("/players/:id/zones", s.unlockZone)

	r.GET("/puppies/:playerId/:puppyId", s.getPuppy)
	r.PUT("/puppies/:playerId/:puppyId", s.updatePuppy)

	r.GET("/trivia/questions", s.listTrivia)
	r.POST("/trivia/questions", s.addTrivia)
	r.GET("/spanish/lessons", s.listLessons)
	r.POST("/spanish/lessons", s.addLesson)

	r.GET("/zones", s.listZones)
	r.POST("/zones", s.addZone)
	r.GET("/stats", s.getStats)
	r.PUT("/stats", s.updateStats)
	r.GET("/inventory", s.getInventory)
	r.POST("/inventory", s.addInventory)
	r.PUT("/inventory", s.updateInventory)

	return r
}

// envelope is the uniform response shape.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, envelope{Success: false, Error: msg})
}

// loadPlayerSave fetches the player record and its save slot, writing
// the error response itself when either is missing.
func (s *Server) loadPlayerSave(c *gin.Context, playerID string) (*game.SaveData, bool) {
	rec, err := s.store.PlayerByID(playerID)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if rec == nil {
		fail(c, http.StatusNotFound, "player not found")
		return nil, false
	}
	save, err := s.store.LoadSlot(playerID)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if save == nil {
		fail(c, http.StatusNotFound, "player save not found")
		return nil, false
	}
	return save, true
}

type playerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *Server) listPlayers(c *gin.Context) {
	players, err := s.store.Players()
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]playerInfo, 0, len(players))
	for _, p := range players {
		out = append(out, playerInfo{ID: p.ID, Name: p.Name})
	}
	ok(c, out)
}

func (s *Server) createPlayer(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		fail(c, http.StatusBadRequest, "name is required")
		return
	}

	id := uuid.NewString()
	if err := s.store.CreatePlayer(id, req.Name); err != nil {
		if errors.Is(err, storage.ErrNameTaken) {
			fail(c, http.StatusBadRequest, "player name already taken")
			return
		}
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	save := game.NewSave()
	save.PlayerData.Name = req.Name
	if err := s.store.SaveSlot(id, save); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, gin.H{"id": id, "name": req.Name, "save": save})
}

type zoneInfo struct {
	game.Zone
	Unlocked bool `json:"unlocked"`
}

func (s *Server) playerZones(c *gin.Context) {
	save, found := s.loadPlayerSave(c, c.Param("id"))
	if !found {
		return
	}
	zones := make([]zoneInfo, 0, len(save.Zones))
	for _, z := range save.Zones {
		zones = append(zones, zoneInfo{Zone: z, Unlocked: z.UnlockedFor(&save.PlayerData)})
	}
	ok(c, zones)
}

func (s *Server) unlockZone(c *gin.Context) {
	var req struct {
		ZoneID string `json:"zoneId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ZoneID == "" {
		fail(c, http.StatusBadRequest, "zoneId is required")
		return
	}

	playerID := c.Param("id")
	save, found := s.loadPlayerSave(c, playerID)
	if !found {
		return
	}

	known := false
	for _, z := range save.Zones {
		if z.ID == req.ZoneID {
			known = true
			break
		}
	}
	if !known {
		fail(c, http.StatusNotFound, "zone not found")
		return
	}

	save.PlayerData.UnlockZone(req.ZoneID)
	if err := s.store.SaveSlot(playerID, save); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, gin.H{"unlockedZones": save.PlayerData.UnlockedZones})
}

func (s *Server) getPuppy(c *gin.Context) {
	save, found := s.loadPlayerSave(c, c.Param("playerId"))
	if !found {
		return
	}
	p := save.PuppyByID(c.Param("puppyId"))
	if p == nil {
		fail(c, http.StatusNotFound, "puppy not found")
		return
	}
	ok(c, p)
}

// puppyUpdate carries the mutable puppy stats. Pointers distinguish
// "leave unchanged" from an explicit zero.
type puppyUpdate struct {
	Happiness *float64 `json:"happiness"`
	Hunger    *float64 `json:"hunger"`
	Energy    *float64 `json:"energy"`
}

func (s *Server) updatePuppy(c *gin.Context) {
	var req puppyUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	for _, v := range []*float64{req.Happiness, req.Hunger, req.Energy} {
		if v != nil && (*v < 0 || *v > 100) {
			fail(c, http.StatusBadRequest, "stats must be between 0 and 100")
			return
		}
	}

	playerID := c.Param("playerId")
	save, found := s.loadPlayerSave(c, playerID)
	if !found {
		return
	}
	p := save.PuppyByID(c.Param("puppyId"))
	if p == nil {
		fail(c, http.StatusNotFound, "puppy not found")
		return
	}

	if req.Happiness != nil {
		p.Happiness = *req.Happiness
	}
	if req.Hunger != nil {
		p.Hunger = *req.Hunger
	}
	if req.Energy != nil {
		p.Energy = *req.Energy
	}

	if err := s.store.SaveSlot(playerID, save); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, p)
}

func (s *Server) listTrivia(c *gin.Context) {
	custom, err := s.store.CustomTriviaQuestions()
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	pool := append(append([]content.TriviaQuestion{}, s.trivia...), custom...)

	category := c.Query("category")
	difficulty := c.Query("difficulty")
	out := make([]content.TriviaQuestion, 0, len(pool))
	for _, q := range pool {
		if category != "" && q.Category != category {
			continue
		}
		if difficulty != "" && difficultyName(q.Difficulty) != difficulty {
			continue
		}
		out = append(out, q)
	}
	ok(c, out)
}

// difficultyName groups question difficulties into the coarse buckets
// the query parameter uses.
func difficultyName(d int) string {
	switch {
	case d <= 2:
		return "easy"
	case d == 3:
		return "medium"
	default:
		return "hard"
	}
}

func (s *Server) addTrivia(c *gin.Context) {
	var q content.TriviaQuestion
	if err := c.ShouldBindJSON(&q); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if q.Question == "" || len(q.Answers) != 4 || q.Correct < 0 || q.Correct > 3 ||
		q.Category == "" || q.Difficulty < 1 || q.Difficulty > 5 {
		fail(c, http.StatusBadRequest, "question needs text, 4 answers, a correct index, a category and difficulty 1-5")
		return
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if err := s.store.AddTriviaQuestion(q); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, q)
}

func (s *Server) listLessons(c *gin.Context) {
	custom, err := s.store.CustomLessons()
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	pool := append(append([]content.Lesson{}, s.lessons...), custom...)

	category := c.Query("category")
	out := make([]content.Lesson, 0, len(pool))
	for _, l := range pool {
		if category != "" && l.Category != category {
			continue
		}
		out = append(out, l)
	}
	ok(c, out)
}

func (s *Server) addLesson(c *gin.Context) {
	var l content.Lesson
	if err := c.ShouldBindJSON(&l); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if l.Spanish == "" || l.English == "" || l.Category == "" ||
		l.Difficulty < 1 || l.Difficulty > 5 {
		fail(c, http.StatusBadRequest, "lesson needs spanish, english, a category and difficulty 1-5")
		return
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if err := s.store.AddLesson(l); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, l)
}

func (s *Server) listZones(c *gin.Context) {
	custom, err := s.store.CustomZones()
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, append(game.DefaultZones(), custom...))
}

func (s *Server) addZone(c *gin.Context) {
	var z game.Zone
	if err := c.ShouldBindJSON(&z); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if z.Name == "" {
		fail(c, http.StatusBadRequest, "zone name is required")
		return
	}
	if z.UnlockLevel < 1 {
		z.UnlockLevel = 1
	}
	if z.ID == "" {
		z.ID = uuid.NewString()
	}
	if err := s.store.AddZone(z); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, z)
}

// localSave loads the local single-slot save, creating a fresh one when
// none exists yet, so the stats and inventory endpoints always have
// something to serve.
func (s *Server) localSave(c *gin.Context) (*game.SaveData, bool) {
	save, err := s.store.LoadGame()
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if save == nil {
		save = game.NewSave()
	}
	return save, true
}

func (s *Server) getStats(c *gin.Context) {
	save, found := s.localSave(c)
	if !found {
		return
	}
	ok(c, save.GameStats)
}

func (s *Server) updateStats(c *gin.Context) {
	var stats game.GameStats
	if err := c.ShouldBindJSON(&stats); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	save, found := s.localSave(c)
	if !found {
		return
	}
	save.GameStats = stats
	if err := s.store.SaveGame(save); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, save.GameStats)
}

func (s *Server) getInventory(c *gin.Context) {
	save, found := s.localSave(c)
	if !found {
		return
	}
	ok(c, save.Inventory)
}

func (s *Server) addInventory(c *gin.Context) {
	var item game.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if item.Name == "" || item.Quantity < 0 {
		fail(c, http.StatusBadRequest, "item needs a name and a non-negative quantity")
		return
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	save, found := s.localSave(c)
	if !found {
		return
	}
	save.Inventory = append(save.Inventory, item)
	if err := s.store.SaveGame(save); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, item)
}

func (s *Server) updateInventory(c *gin.Context) {
	var req struct {
		ID       string `json:"id"`
		Quantity *int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" || req.Quantity == nil {
		fail(c, http.StatusBadRequest, "id and quantity are required")
		return
	}
	if *req.Quantity < 0 {
		fail(c, http.StatusBadRequest, "quantity must be non-negative")
		return
	}

	save, found := s.localSave(c)
	if !found {
		return
	}
	for i := range save.Inventory {
		if save.Inventory[i].ID == req.ID {
			save.Inventory[i].Quantity = *req.Quantity
			if err := s.store.SaveGame(save); err != nil {
				fail(c, http.StatusInternalServerError, err.Error())
				return
			}
			ok(c, save.Inventory[i])
			return
		}
	}
	fail(c, http.StatusNotFound, "item not found")
}
