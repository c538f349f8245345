package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/myarea/app-myarea/internal/i18n"
	"github.com/myarea/app-myarea/internal/models"
	"github.com/myarea/app-myarea/internal/screens"
	"github.com/myarea/app-myarea/internal/utils"
)

// requestLanguage picks the response language from ?lang, then Accept-Language
func requestLanguage(c *gin.Context) models.Language {
	if lang := models.Language(c.Query("lang")); lang.IsValid() {
		return lang
	}
	return i18n.MatchAcceptLanguage(c.GetHeader("Accept-Language"))
}

// ValidatePassword godoc
// @Summary Check a password
// @Description Evaluates the password checklist and strength without a session
// @Tags validation
// @Accept json
// @Produce json
// @Param lang query string false "Response language"
// @Param data body models.PasswordCheckRequest true "Password and identifier"
// @Success 200 {object} models.PasswordCheckResponse
// @Failure 400 {object} ErrorResponse
// @Router /validate/password [post]
func ValidatePassword(c *gin.Context) {
	var req models.PasswordCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, screens.PasswordFeedback(requestLanguage(c), req.Password, req.Identifier))
}

// ValidatePhone godoc
// @Summary Check a phone number
// @Description Validates a 10 digit phone identifier and returns its E.164 form
// @Tags validation
// @Accept json
// @Produce json
// @Param lang query string false "Response language"
// @Param data body models.PhoneCheckRequest true "Phone number"
// @Success 200 {object} models.PhoneCheckResponse
// @Failure 400 {object} ErrorResponse
// @Router /validate/phone [post]
func ValidatePhone(c *gin.Context) {
	var req models.PhoneCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if key := utils.ValidatePhoneNumber(req.Phone); key != "" {
		c.JSON(http.StatusOK, models.PhoneCheckResponse{Message: i18n.T(requestLanguage(c), key)})
		return
	}

	resp := models.PhoneCheckResponse{Valid: true}
	if components, err := utils.ParsePhoneNumber(req.Phone); err == nil {
		resp.E164 = components.E164
	}
	c.JSON(http.StatusOK, resp)
}

// GetTranslations godoc
// @Summary Get UI texts
// @Description Every text key resolved in the language, English where no translation exists
// @Tags i18n
// @Produce json
// @Param lang path string true "en, ta or hi"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /i18n/{lang} [get]
func GetTranslations(c *gin.Context) {
	lang := models.Language(c.Param("lang"))
	if !lang.IsValid() {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: models.ErrInvalidLanguage.Error(), Code: "invalid_language"})
		return
	}
	c.JSON(http.StatusOK, i18n.Dictionary(lang))
}
