package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/constants"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/logging"
	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/storage"
)

type mockRepo struct {
	species []game.Species
	moves   []game.Move
	failing bool
}

func (m *mockRepo) ListSpecies() ([]game.Species, error) {
	if m.failing {
		return nil, errors.New("db down")
	}
	return m.species, nil
}

func (m *mockRepo) GetSpeciesByID(id uint) (*game.Species, error) {
	for i := range m.species {
		if m.species[i].ID == id {
			return &m.species[i], nil
		}
	}
	return nil, fmt.Errorf("%w: species %d", storage.ErrNotFound, id)
}

func (m *mockRepo) GetSpeciesByKey(key string) (*game.Species, error) {
	for i := range m.species {
		if m.species[i].Key == key {
			return &m.species[i], nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *mockRepo) ListMoves(element game.Element) ([]game.Move, error) {
	out := make([]game.Move, 0, len(m.moves))
	for _, mv := range m.moves {
		if element == "" || mv.Element == element {
			out = append(out, mv)
		}
	}
	return out, nil
}

func (m *mockRepo) GetCreatureTemplate(id uint) (game.Creature, error) {
	s, err := m.GetSpeciesByID(id)
	if err != nil {
		return game.Creature{}, err
	}
	return s.Template(), nil
}

func (m *mockRepo) GetAttackSet(element game.Element) ([game.MaxAttacks]game.Attack, error) {
	var set [game.MaxAttacks]game.Attack
	moves, _ := m.ListMoves(element)
	if len(moves) != game.MaxAttacks {
		return set, storage.ErrIncompleteAttackSet
	}
	for i, mv := range moves {
		set[i] = mv.Attack()
	}
	return set, nil
}

func newTestRouter(t *testing.T, repo *mockRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logging.SetOutput(io.Discard)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })
	return NewRouter(NewCatalogHandler(repo))
}

func fixtureRepo() *mockRepo {
	repo := &mockRepo{
		species: []game.Species{
			{Model: gorm.Model{ID: 1}, Key: "charmander", Name: "Charmander", Element: game.Fire, MaxHealth: 100, Defense: 5},
			{Model: gorm.Model{ID: 2}, Key: "squirtle", Name: "Squirtle", Element: game.Water, MaxHealth: 100, Defense: 10},
		},
	}
	for i, n := range []string{"Ember", "Flame Wheel", "Fire Fang", "Flamethrower"} {
		repo.moves = append(repo.moves, game.Move{Key: fmt.Sprintf("fire_%d", i), Name: n, Element: game.Fire, Slot: i, Power: 40, Accuracy: 100})
	}
	repo.moves = append(repo.moves, game.Move{Key: "water_gun", Name: "Water Gun", Element: game.Water, Power: 40, Accuracy: 100})
	return repo
}

func get(t *testing.T, r http.Handler, path string) (*httptest.ResponseRecorder, interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	var body interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("%s: invalid JSON %q: %v", path, w.Body.String(), err)
	}
	return w, body
}

func TestListSpecies(t *testing.T) {
	r := newTestRouter(t, fixtureRepo())
	w, body := get(t, r, "/api/species")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	list, ok := body.([]interface{})
	if !ok || len(list) != 2 {
		t.Fatalf("expected 2 species, got %v", body)
	}
	first := list[0].(map[string]interface{})
	if first["id"] != float64(1) || first["name"] != "Charmander" {
		t.Fatalf("unexpected species payload: %v", first)
	}
	if _, ok := first["CreatedAt"]; ok {
		t.Fatalf("expected snake_case timestamps, got %v", first)
	}
	if got := w.Header().Get(constants.CacheControlHeader); got != constants.CacheControlPublic {
		t.Fatalf("expected cache header, got %q", got)
	}
}

func TestListSpeciesFailure(t *testing.T) {
	repo := fixtureRepo()
	repo.failing = true
	w, body := get(t, newTestRouter(t, repo), "/api/species")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body.(map[string]interface{})[constants.JSONKeyError] != constants.ErrFailedFetchSpecies {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestGetSpecies(t *testing.T) {
	r := newTestRouter(t, fixtureRepo())

	w, body := get(t, r, "/api/species/1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	attacks := body.(map[string]interface{})["attacks"].([]interface{})
	if len(attacks) != game.MaxAttacks {
		t.Fatalf("expected %d attacks, got %v", game.MaxAttacks, attacks)
	}

	cases := map[string]int{
		"/api/species/99":  http.StatusNotFound,
		"/api/species/abc": http.StatusBadRequest,
		"/api/species/2":   http.StatusInternalServerError,
	}
	for path, code := range cases {
		if w, _ := get(t, r, path); w.Code != code {
			t.Fatalf("%s: expected %d, got %d", path, code, w.Code)
		}
	}
}

func TestListMoves(t *testing.T) {
	r := newTestRouter(t, fixtureRepo())
	w, body := get(t, r, "/api/moves?element=FIRE")
	if w.Code != http.StatusOK || len(body.([]interface{})) != 4 {
		t.Fatalf("expected 4 fire moves, got %d %v", w.Code, body)
	}
	if w, _ := get(t, r, "/api/moves?element=plasma"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown element, got %d", w.Code)
	}
	if _, body := get(t, r, "/api/moves"); len(body.([]interface{})) != 5 {
		t.Fatalf("expected all moves, got %v", body)
	}
}

func TestEffectiveness(t *testing.T) {
	r := newTestRouter(t, fixtureRepo())
	w, body := get(t, r, "/api/effectiveness?attack=water&target=fire")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	got := body.(map[string]interface{})
	if got["multiplier"] != float64(2) || got["tier"] != "super_effective" {
		t.Fatalf("unexpected effectiveness payload: %v", got)
	}
	if w, _ := get(t, r, "/api/effectiveness?attack=water"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without target, got %d", w.Code)
	}
	if w, _ := get(t, r, "/api/effectiveness?attack=water&target=plasma"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown element, got %d", w.Code)
	}
}

func TestVersion(t *testing.T) {
	w, body := get(t, newTestRouter(t, fixtureRepo()), "/api/version")
	if w.Code != http.StatusOK || body.(map[string]interface{})["version"] == nil {
		t.Fatalf("unexpected version response: %d %v", w.Code, body)
	}
}
