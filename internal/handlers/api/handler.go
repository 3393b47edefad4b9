// Package api exposes the orchestrators over HTTP using gorilla/mux,
// plus a websocket stream of combat log entries per encounter.
package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/The-Night7/bofuri-mj/internal/engine"
	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
	"github.com/The-Night7/bofuri-mj/internal/orchestrators/encounter"
	"github.com/The-Night7/bofuri-mj/internal/orchestrators/library"
	"github.com/The-Night7/bofuri-mj/internal/orchestrators/roster"
)

// Config holds the dependencies for the API handler
type Config struct {
	Roster    roster.Service
	Library   library.Service
	Encounter encounter.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Roster == nil {
		vb.RequiredField("Roster")
	}
	if c.Library == nil {
		vb.RequiredField("Library")
	}
	if c.Encounter == nil {
		vb.RequiredField("Encounter")
	}
	return vb.Build()
}

// Handler routes HTTP and websocket traffic to the orchestrators
type Handler struct {
	roster    roster.Service
	library   library.Service
	encounter encounter.Service
	hub       *hub
}

// NewHandler creates a new API handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Handler{
		roster:    cfg.Roster,
		library:   cfg.Library,
		encounter: cfg.Encounter,
		hub:       newHub(),
	}, nil
}

// Router builds the HTTP route table
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", h.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/v1/compendium/import", h.handleImport).Methods(http.MethodPost)
	r.HandleFunc("/v1/compendium", h.handleGetCompendium).Methods(http.MethodGet)
	r.HandleFunc("/v1/monsters/{name}", h.handleGetMonster).Methods(http.MethodGet)
	r.HandleFunc("/v1/monsters/{name}/variant", h.handleResolveMonster).Methods(http.MethodGet)
	r.HandleFunc("/v1/skills/{name}", h.handleGetSkill).Methods(http.MethodGet)

	r.HandleFunc("/v1/players", h.handleCreatePlayer).Methods(http.MethodPost)
	r.HandleFunc("/v1/players", h.handleListPlayers).Methods(http.MethodGet)
	r.HandleFunc("/v1/players/{name}", h.handleGetPlayer).Methods(http.MethodGet)
	r.HandleFunc("/v1/players/{name}", h.handleUpdatePlayer).Methods(http.MethodPut)
	r.HandleFunc("/v1/players/{name}", h.handleDeletePlayer).Methods(http.MethodDelete)
	r.HandleFunc("/v1/players/{name}/rest", h.handleRestPlayer).Methods(http.MethodPost)

	r.HandleFunc("/v1/encounters", h.handleStartEncounter).Methods(http.MethodPost)
	r.HandleFunc("/v1/encounters/{id}", h.handleGetEncounter).Methods(http.MethodGet)
	r.HandleFunc("/v1/encounters/{id}/attack", h.handleAttack).Methods(http.MethodPost)
	r.HandleFunc("/v1/encounters/{id}/next-turn", h.handleNextTurn).Methods(http.MethodPost)
	r.HandleFunc("/v1/encounters/{id}", h.handleEndEncounter).Methods(http.MethodDelete)
	r.HandleFunc("/v1/encounters/{id}/watch", h.handleWatch).Methods(http.MethodGet)

	r.HandleFunc("/v1/settings", h.handleGetSettings).Methods(http.MethodGet)
	r.HandleFunc("/v1/settings", h.handleUpdateSettings).Methods(http.MethodPut)

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type importRequest struct {
	MonsterDoc string   `json:"monster_doc"`
	SkillDocs  []string `json:"skill_docs"`
	Densify    bool     `json:"densify"`
}

func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.library.Import(r.Context(), &library.ImportInput{
		MonsterDoc: req.MonsterDoc,
		SkillDocs:  req.SkillDocs,
		Densify:    req.Densify,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"monsters": out.MonsterCount,
		"skills":   out.SkillCount,
	})
}

func (h *Handler) handleGetCompendium(w http.ResponseWriter, r *http.Request) {
	out, err := h.library.GetCompendium(r.Context(), &library.GetCompendiumInput{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Compendium)
}

func (h *Handler) handleGetMonster(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	out, err := h.library.GetMonster(r.Context(), &library.GetMonsterInput{Name: name})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Monster)
}

func (h *Handler) handleResolveMonster(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	level, err := strconv.Atoi(r.URL.Query().Get("level"))
	if err != nil {
		writeError(w, errors.InvalidArgument("level query parameter must be an integer"))
		return
	}
	out, err := h.library.ResolveMonster(r.Context(), &library.ResolveMonsterInput{
		Name:  name,
		Level: level,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Variant)
}

func (h *Handler) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	out, err := h.library.GetSkill(r.Context(), &library.GetSkillInput{Name: name})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Skill)
}

func (h *Handler) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var player entities.Player
	if err := decodeJSON(r, &player); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.roster.CreatePlayer(r.Context(), &roster.CreatePlayerInput{Player: &player})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out.Player)
}

func (h *Handler) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	out, err := h.roster.ListPlayers(r.Context(), &roster.ListPlayersInput{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Players)
}

func (h *Handler) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	out, err := h.roster.GetPlayer(r.Context(), &roster.GetPlayerInput{Name: name})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Player)
}

func (h *Handler) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var player entities.Player
	if err := decodeJSON(r, &player); err != nil {
		writeError(w, err)
		return
	}
	// The path owns the identity; the body can't rename.
	player.Name = name
	out, err := h.roster.UpdatePlayer(r.Context(), &roster.UpdatePlayerInput{Player: &player})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Player)
}

func (h *Handler) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if _, err := h.roster.DeletePlayer(r.Context(), &roster.DeletePlayerInput{Name: name}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleRestPlayer(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	out, err := h.roster.RestPlayer(r.Context(), &roster.RestPlayerInput{Name: name})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Player)
}

type startEncounterRequest struct {
	Players  []string                `json:"players"`
	Monsters []encounter.MonsterPick `json:"monsters"`
}

type encounterResponse struct {
	Encounter    *entities.Encounter `json:"encounter"`
	CurrentIndex int                 `json:"current_index"`
	Round        int                 `json:"round,omitempty"`
}

func (h *Handler) handleStartEncounter(w http.ResponseWriter, r *http.Request) {
	var req startEncounterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.encounter.Start(r.Context(), &encounter.StartInput{
		PlayerNames: req.Players,
		Monsters:    req.Monsters,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, encounterResponse{
		Encounter:    out.Encounter,
		CurrentIndex: out.CurrentIndex,
	})
}

func (h *Handler) handleGetEncounter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	out, err := h.encounter.Get(r.Context(), &encounter.GetInput{EncounterID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, encounterResponse{
		Encounter:    out.Encounter,
		CurrentIndex: out.CurrentIndex,
		Round:        out.Round,
	})
}

type attackRequest struct {
	Attacker    int               `json:"attacker"`
	Defender    int               `json:"defender"`
	RollA       *float64          `json:"roll_a,omitempty"`
	RollB       *float64          `json:"roll_b,omitempty"`
	Kind        engine.AttackKind `json:"kind,omitempty"`
	ArmorPierce bool              `json:"armor_pierce,omitempty"`
}

type attackResponse struct {
	Outcome   *engine.Outcome       `json:"outcome"`
	Record    entities.ActionRecord `json:"record"`
	Encounter *entities.Encounter   `json:"encounter"`
}

func (h *Handler) handleAttack(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req attackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.encounter.Attack(r.Context(), &encounter.AttackInput{
		EncounterID: id,
		Attacker:    req.Attacker,
		Defender:    req.Defender,
		RollA:       req.RollA,
		RollB:       req.RollB,
		Kind:        req.Kind,
		ArmorPierce: req.ArmorPierce,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	h.hub.broadcast(id, out.Record)
	writeJSON(w, http.StatusOK, attackResponse{
		Outcome:   out.Outcome,
		Record:    out.Record,
		Encounter: out.Encounter,
	})
}

type nextTurnResponse struct {
	CurrentIndex int                   `json:"current_index"`
	Participant  *entities.Participant `json:"participant"`
	Round        int                   `json:"round"`
}

func (h *Handler) handleNextTurn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	out, err := h.encounter.NextTurn(r.Context(), &encounter.NextTurnInput{EncounterID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nextTurnResponse{
		CurrentIndex: out.CurrentIndex,
		Participant:  out.Participant,
		Round:        out.Round,
	})
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	out, err := h.encounter.GetSettings(r.Context(), &encounter.GetSettingsInput{})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Settings)
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings entities.Settings
	if err := decodeJSON(r, &settings); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.encounter.UpdateSettings(r.Context(), &encounter.UpdateSettingsInput{
		Settings: &settings,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out.Settings)
}

func (h *Handler) handleEndEncounter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.encounter.End(r.Context(), &encounter.EndInput{EncounterID: id}); err != nil {
		writeError(w, err)
		return
	}
	h.hub.close(id)
	writeJSON(w, http.StatusNoContent, nil)
}
