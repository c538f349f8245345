package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/myarea/app-myarea/internal/middleware"
)

// RegisterRoutes mounts the API on v1
func RegisterRoutes(v1 *gin.RouterGroup, sessions *SessionHandlers, health *HealthHandlers) {
	v1.GET("/health", health.HealthCheck)

	v1.POST("/sessions", sessions.CreateSession)
	v1.DELETE("/sessions/:id", sessions.DeleteSession)

	s := v1.Group("/sessions/:id", middleware.SessionLoader(sessions.manager))
	{
		s.GET("", sessions.GetSession)
		s.GET("/screen", sessions.GetScreen)
		s.POST("/navigate", sessions.Navigate)
		s.POST("/back", sessions.Back)
		s.PUT("/language", sessions.SelectLanguage)

		s.POST("/auth/choice", sessions.ChooseAuth)
		s.PUT("/auth/method", sessions.SetInputMethod)
		s.POST("/auth/password", sessions.UpdatePassword)
		s.POST("/auth/otp/send", sessions.SendOTP)
		s.POST("/auth/otp/digit", sessions.EnterDigit)
		s.POST("/auth/otp/backspace", sessions.Backspace)
		s.POST("/auth/otp/resend", sessions.ResendOTP)
		s.POST("/auth/otp/verify", sessions.VerifyOTP)
		s.POST("/auth/otp/cancel", sessions.CancelOTP)

		s.POST("/profile", sessions.SubmitProfile)
		s.POST("/profile/language", sessions.ChangeLanguage)
		s.POST("/verification/approve", sessions.ApproveVerification)
		s.POST("/verification/continue", sessions.ContinueToHome)

		s.POST("/alerts/:alertId/open", sessions.OpenAlert)
		s.POST("/notices/:noticeId/open", sessions.OpenNotice)
		s.GET("/notice/pdf", sessions.NoticePDF)
		s.POST("/services/:serviceId/open", sessions.OpenService)
		s.POST("/events/:eventId/select", sessions.SelectEvent)
		s.POST("/events/join", sessions.JoinEvent)
		s.POST("/help/need", sessions.SubmitNeedHelp)
		s.POST("/help/offer", sessions.SubmitOfferHelp)
		s.POST("/polls/:pollId/vote", sessions.Vote)
		s.POST("/sos", sessions.SendSOS)
		s.POST("/logout", sessions.Logout)
	}

	catalog := v1.Group("/catalog")
	{
		catalog.GET("/notices", GetNotices)
		catalog.GET("/alerts", GetAlerts)
		catalog.GET("/services", GetServices)
		catalog.GET("/polls", GetPolls)
		catalog.GET("/events", GetEvents)
		catalog.GET("/faqs", GetFAQs)
		catalog.GET("/emergency-numbers", GetEmergencyNumbers)
	}

	v1.POST("/validate/password", ValidatePassword)
	v1.POST("/validate/phone", ValidatePhone)
	v1.GET("/i18n/:lang", GetTranslations)
}
