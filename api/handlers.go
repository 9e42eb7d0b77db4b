// Package api implements the thin JSON transport boundary of spec.md
// §6: analyze_bassline, realize_satb, generate_ai_music, and health.
// None of the core packages (harmony, voicing, satb) import this
// package or aiproxy; the coupling runs one way only.
package api

import (
	"net/http"

	"harmonizer/aiproxy"
	"harmonizer/config"
	"harmonizer/harmony"
	"harmonizer/logger"
	"harmonizer/midiexport"
	"harmonizer/pitch"
	"harmonizer/satb"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the config and collaborators the three endpoints need.
type Handlers struct {
	cfg     *config.Config
	aiMusic *aiproxy.Client
}

// NewHandlers builds the handler set.
func NewHandlers(cfg *config.Config) *Handlers {
	return &Handlers{
		cfg:     cfg,
		aiMusic: aiproxy.New(cfg.AIMusicAPIURL, cfg.AIMusicAPIKey),
	}
}

// HealthCheck implements GET /health.
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

type analyzeRequest struct {
	BassNotes []string `json:"bass_notes"`
	Key       string   `json:"key"`
}

type scoredProgressionJSON struct {
	RomanNumerals []string `json:"roman_numerals"`
	Score         int      `json:"score"`
	Style         string   `json:"style"`
	Description   string   `json:"description"`
}

// AnalyzeBassline implements POST /api/v1/analyze_bassline.
func (h *Handlers) AnalyzeBassline(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.BassNotes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No bass notes provided"})
		return
	}

	bassPitches, err := parseBassNotes(req.BassNotes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	k, wellFormed := ParseKeyString(req.Key, bassPitches)
	if !wellFormed {
		logger.Warn("key parse fallback to C major", logger.Fields{"key": req.Key})
	}

	scored := harmony.AnalyzeBassline(bassPitches, k)
	progressions := make([]scoredProgressionJSON, len(scored))
	for i, sp := range scored {
		progressions[i] = scoredProgressionJSON{
			RomanNumerals: sp.Numerals,
			Score:         sp.Score,
			Style:         sp.Style,
			Description:   sp.Description,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"key":          k.Name(),
		"progressions": progressions,
	})
}

type realizeRequest struct {
	ChordProgression []string `json:"chord_progression"`
	BassNotes        []string `json:"bass_notes"`
	Key              string   `json:"key"`
}

type voicingJSON struct {
	Soprano string `json:"soprano"`
	Alto    string `json:"alto"`
	Tenor   string `json:"tenor"`
	Bass    string `json:"bass"`
	Chord   string `json:"chord"`
}

type validationJSON struct {
	Errors      []string         `json:"errors"`
	Warnings    []string         `json:"warnings"`
	Compromises []compromiseJSON `json:"compromises"`
	Score       int              `json:"score"`
	Suggestions []string         `json:"suggestions"`
}

type compromiseJSON struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Location    *int   `json:"location,omitempty"`
	Description string `json:"description"`
	Explanation string `json:"explanation"`
}

// RealizeSATB implements POST /api/v1/realize_satb.
func (h *Handlers) RealizeSATB(c *gin.Context) {
	var req realizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.ChordProgression) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No chord progression provided"})
		return
	}
	if len(req.BassNotes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No bass notes provided"})
		return
	}
	if len(req.BassNotes) != len(req.ChordProgression) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bass_notes and chord_progression must be the same length"})
		return
	}

	bassPitches, err := parseBassNotes(req.BassNotes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	k, wellFormed := ParseKeyString(req.Key, bassPitches)
	if !wellFormed {
		logger.Warn("key parse fallback to C major", logger.Fields{"key": req.Key})
	}

	realization, marginals, total, err := satb.Voice(req.ChordProgression, bassPitches, k)
	if err != nil {
		logger.Error("satb voicing failed", err, logger.Fields{"progression": req.ChordProgression})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	compromises := satb.AnalyzeCompromises(realization, marginals, total)
	report := satb.Validate(realization, req.ChordProgression, k, compromises)

	if c.Query("format") == "midi" {
		data, err := midiexport.Encode(realization, 96)
		if err != nil {
			logger.Error("midi export failed", err, logger.Fields{})
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "audio/midi", data)
		return
	}

	harmonization := make([]voicingJSON, len(realization))
	for i, v := range realization {
		harmonization[i] = voicingJSON{
			Soprano: v.Soprano.Name(),
			Alto:    v.Alto.Name(),
			Tenor:   v.Tenor.Name(),
			Bass:    v.Bass.Name(),
			Chord:   req.ChordProgression[i],
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"satb_harmonization": harmonization,
		"validation":         toValidationJSON(report),
	})
}

type aiMusicRequest struct {
	ChordProgression []string `json:"chord_progression"`
	Key              string   `json:"key"`
}

// GenerateAIMusic implements POST /api/v1/generate_ai_music. It is a
// proxy only: the core never couples to it (spec.md §1, §6).
func (h *Handlers) GenerateAIMusic(c *gin.Context) {
	var req aiMusicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	audioURL, err := h.aiMusic.GenerateMusic(c.Request.Context(), req.ChordProgression, req.Key)
	if err != nil {
		logger.Error("ai music generation failed", err, logger.Fields{"key": req.Key})
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"audio_url": audioURL})
}

func parseBassNotes(names []string) ([]pitch.Pitch, error) {
	out := make([]pitch.Pitch, len(names))
	for i, name := range names {
		p, err := pitch.ParseNote(name)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func toValidationJSON(r satb.ValidationReport) validationJSON {
	compromises := make([]compromiseJSON, len(r.Compromises))
	for i, comp := range r.Compromises {
		compromises[i] = compromiseJSON{
			Type:        comp.Type,
			Severity:    string(comp.Severity),
			Location:    comp.Location,
			Description: comp.Description,
			Explanation: comp.Explanation,
		}
	}
	return validationJSON{
		Errors:      r.Errors,
		Warnings:    r.Warnings,
		Compromises: compromises,
		Score:       r.Score,
		Suggestions: r.Suggestions,
	}
}
