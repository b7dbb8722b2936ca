package rest

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	entities "github.com/hearthforge/sheet-api/internal/entities/sheet"
	"github.com/hearthforge/sheet-api/internal/errors"
	"github.com/hearthforge/sheet-api/internal/services/sheet"
)

// maxDocumentBytes caps uploaded sheet documents. Real sheets are a few
// kilobytes; anything near the cap is not a character sheet.
const maxDocumentBytes = 1 << 20

func respondCharacter(c *gin.Context, char *entities.CharacterData) {
	c.JSON(http.StatusOK, gin.H{"character": char})
}

func readDocument(c *gin.Context) ([]byte, error) {
	doc, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDocumentBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read request body")
	}
	return doc, nil
}

func (h *Handler) getSheet(c *gin.Context) {
	out, err := h.sheetService.GetSheet(c.Request.Context(), &sheet.GetSheetInput{Username: username(c)})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"character": out.Character, "recovered": out.Recovered})
}

func (h *Handler) putSheet(c *gin.Context) {
	doc, err := readDocument(c)
	if err != nil {
		respondError(c, err)
		return
	}

	out, err := h.sheetService.PutSheet(c.Request.Context(), &sheet.PutSheetInput{
		Username: username(c),
		Document: doc,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

type detailsRequest struct {
	Name       *string `json:"name"`
	Race       *string `json:"race"`
	Subrace    *string `json:"subrace"`
	Alignment  *string `json:"alignment"`
	Background *string `json:"background"`
	PlayerName *string `json:"playerName"`
	Experience *string `json:"experience"`
	BodyType   *string `json:"bodyType"`

	Inspiration *bool `json:"inspiration"`

	Traits *string `json:"traits"`
	Ideals *string `json:"ideals"`
	Bonds  *string `json:"bonds"`
	Flaws  *string `json:"flaws"`

	Features  *string `json:"features"`
	Backstory *string `json:"backstory"`
}

func (h *Handler) updateDetails(c *gin.Context) {
	var req detailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON details patch"))
		return
	}

	out, err := h.sheetService.UpdateDetails(c.Request.Context(), &sheet.UpdateDetailsInput{
		Username:    username(c),
		Name:        req.Name,
		Race:        req.Race,
		Subrace:     req.Subrace,
		Alignment:   req.Alignment,
		Background:  req.Background,
		PlayerName:  req.PlayerName,
		Experience:  req.Experience,
		BodyType:    req.BodyType,
		Inspiration: req.Inspiration,
		Traits:      req.Traits,
		Ideals:      req.Ideals,
		Bonds:       req.Bonds,
		Flaws:       req.Flaws,
		Features:    req.Features,
		Backstory:   req.Backstory,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) updateAbility(c *gin.Context) {
	var req struct {
		Score int `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("request body must be JSON with a score"))
		return
	}

	out, err := h.sheetService.UpdateAbility(c.Request.Context(), &sheet.UpdateAbilityInput{
		Username: username(c),
		Ability:  entities.AbilityName(c.Param("ability")),
		Score:    req.Score,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) toggleProficiency(c *gin.Context) {
	out, err := h.sheetService.ToggleProficiency(c.Request.Context(), &sheet.ToggleProficiencyInput{
		Username: username(c),
		Key:      c.Param("key"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) toggleExpertise(c *gin.Context) {
	out, err := h.sheetService.ToggleExpertise(c.Request.Context(), &sheet.ToggleExpertiseInput{
		Username: username(c),
		Key:      c.Param("key"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

type combatRequest struct {
	ACOverride         *int   `json:"acOverride"`
	ArmorBase          int    `json:"armorBase"`
	ArmorBonus         int    `json:"armorBonus"`
	InitiativeOverride *int   `json:"initiativeOverride"`
	Speed              string `json:"speed"`
	HPCurrent          int    `json:"hpCurrent"`
	HPMaxOverride      *int   `json:"hpMaxOverride"`
	HPTemp             string `json:"hpTemp"`
	HitDiceTotal       string `json:"hitDiceTotal"`
	HitDiceUsed        string `json:"hitDiceUsed"`
}

func (h *Handler) updateCombat(c *gin.Context) {
	var req combatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON combat block"))
		return
	}

	out, err := h.sheetService.UpdateCombat(c.Request.Context(), &sheet.UpdateCombatInput{
		Username:           username(c),
		ACOverride:         req.ACOverride,
		ArmorBase:          req.ArmorBase,
		ArmorBonus:         req.ArmorBonus,
		InitiativeOverride: req.InitiativeOverride,
		Speed:              req.Speed,
		HPCurrent:          req.HPCurrent,
		HPMaxOverride:      req.HPMaxOverride,
		HPTemp:             req.HPTemp,
		HitDiceTotal:       req.HitDiceTotal,
		HitDiceUsed:        req.HitDiceUsed,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) toggleDeathSave(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondError(c, errors.InvalidArgumentf("death save index %q is not a number", c.Param("index")))
		return
	}

	out, err := h.sheetService.ToggleDeathSave(c.Request.Context(), &sheet.ToggleDeathSaveInput{
		Username: username(c),
		Kind:     sheet.DeathSaveKind(c.Param("kind")),
		Index:    index,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) addAttack(c *gin.Context) {
	var attack entities.Attack
	if err := c.ShouldBindJSON(&attack); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON attack"))
		return
	}

	out, err := h.sheetService.AddAttack(c.Request.Context(), &sheet.AddAttackInput{
		Username: username(c),
		Attack:   attack,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"character": out.Character, "attack": out.Attack})
}

func (h *Handler) updateAttack(c *gin.Context) {
	var attack entities.Attack
	if err := c.ShouldBindJSON(&attack); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON attack"))
		return
	}
	attack.ID = c.Param("id")

	out, err := h.sheetService.UpdateAttack(c.Request.Context(), &sheet.UpdateAttackInput{
		Username: username(c),
		Attack:   attack,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) removeAttack(c *gin.Context) {
	out, err := h.sheetService.RemoveAttack(c.Request.Context(), &sheet.RemoveAttackInput{
		Username: username(c),
		AttackID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) addClass(c *gin.Context) {
	var class entities.ClassItem
	if err := c.ShouldBindJSON(&class); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON class entry"))
		return
	}

	out, err := h.sheetService.AddClass(c.Request.Context(), &sheet.AddClassInput{
		Username: username(c),
		Class:    class,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"character": out.Character, "class": out.Class})
}

func (h *Handler) updateClass(c *gin.Context) {
	var class entities.ClassItem
	if err := c.ShouldBindJSON(&class); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON class entry"))
		return
	}
	class.ID = c.Param("id")

	out, err := h.sheetService.UpdateClass(c.Request.Context(), &sheet.UpdateClassInput{
		Username: username(c),
		Class:    class,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) removeClass(c *gin.Context) {
	out, err := h.sheetService.RemoveClass(c.Request.Context(), &sheet.RemoveClassInput{
		Username: username(c),
		ClassID:  c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) addSpell(c *gin.Context) {
	var spell entities.Spell
	if err := c.ShouldBindJSON(&spell); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON spell"))
		return
	}

	out, err := h.sheetService.AddSpell(c.Request.Context(), &sheet.AddSpellInput{
		Username: username(c),
		Spell:    spell,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"character": out.Character, "spell": out.Spell})
}

func (h *Handler) updateSpell(c *gin.Context) {
	var spell entities.Spell
	if err := c.ShouldBindJSON(&spell); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON spell"))
		return
	}
	spell.ID = c.Param("id")

	out, err := h.sheetService.UpdateSpell(c.Request.Context(), &sheet.UpdateSpellInput{
		Username: username(c),
		Spell:    spell,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) removeSpell(c *gin.Context) {
	out, err := h.sheetService.RemoveSpell(c.Request.Context(), &sheet.RemoveSpellInput{
		Username: username(c),
		SpellID:  c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) updateSpellSlot(c *gin.Context) {
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		respondError(c, errors.InvalidArgumentf("spell slot level %q is not a number", c.Param("level")))
		return
	}

	var slot entities.SpellSlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON spell slot"))
		return
	}

	out, err := h.sheetService.UpdateSpellSlot(c.Request.Context(), &sheet.UpdateSpellSlotInput{
		Username: username(c),
		Level:    level,
		Slot:     slot,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

type spellcastingRequest struct {
	Class               string `json:"class"`
	Ability             string `json:"ability"`
	SaveDCOverride      string `json:"saveDCOverride"`
	AttackBonusOverride string `json:"attackBonusOverride"`
}

func (h *Handler) updateSpellcasting(c *gin.Context) {
	var req spellcastingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON spellcasting block"))
		return
	}

	out, err := h.sheetService.UpdateSpellcasting(c.Request.Context(), &sheet.UpdateSpellcastingInput{
		Username:            username(c),
		Class:               req.Class,
		Ability:             entities.AbilityName(req.Ability),
		SaveDCOverride:      req.SaveDCOverride,
		AttackBonusOverride: req.AttackBonusOverride,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) updateCurrency(c *gin.Context) {
	var currency entities.Currency
	if err := c.ShouldBindJSON(&currency); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON currency block"))
		return
	}

	out, err := h.sheetService.UpdateCurrency(c.Request.Context(), &sheet.UpdateCurrencyInput{
		Username: username(c),
		Currency: currency,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) updateStatus(c *gin.Context) {
	var status entities.Status
	if err := c.ShouldBindJSON(&status); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON status block"))
		return
	}

	out, err := h.sheetService.UpdateStatus(c.Request.Context(), &sheet.UpdateStatusInput{
		Username: username(c),
		Status:   status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) updateProficienciesText(c *gin.Context) {
	var text entities.ProficienciesText
	if err := c.ShouldBindJSON(&text); err != nil {
		respondError(c, errors.InvalidArgument("request body must be a JSON proficiencies block"))
		return
	}

	out, err := h.sheetService.UpdateProficienciesText(c.Request.Context(), &sheet.UpdateProficienciesTextInput{
		Username:          username(c),
		ProficienciesText: text,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) exportSheet(c *gin.Context) {
	out, err := h.sheetService.ExportSheet(c.Request.Context(), &sheet.ExportSheetInput{Username: username(c)})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Data(http.StatusOK, "application/json", out.Document)
}

func (h *Handler) importSheet(c *gin.Context) {
	doc, err := readDocument(c)
	if err != nil {
		respondError(c, err)
		return
	}

	out, err := h.sheetService.ImportSheet(c.Request.Context(), &sheet.ImportSheetInput{
		Username: username(c),
		Document: doc,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCharacter(c, out.Character)
}

func (h *Handler) generateBackstory(c *gin.Context) {
	out, err := h.sheetService.GenerateBackstory(c.Request.Context(), &sheet.GenerateBackstoryInput{Username: username(c)})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"backstory": out.Backstory,
		"fallback":  out.Fallback,
	})
}

func (h *Handler) suggestName(c *gin.Context) {
	out, err := h.sheetService.SuggestName(c.Request.Context(), &sheet.SuggestNameInput{Username: username(c)})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":     out.Name,
		"fallback": out.Fallback,
	})
}
