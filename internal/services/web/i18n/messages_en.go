package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Header
	message.SetString(lang, "header.notifications", "Notifications")
	message.SetString(lang, "header.messages", "Messages")

	// Welcome banner
	message.SetString(lang, "dashboard.title", "Dashboard")
	message.SetString(lang, "dashboard.welcome.heading", "Welcome, %s!")
	message.SetString(lang, "dashboard.welcome.subtitle", "We're so excited to have you on the team. Here's your path to a great first week.")

	// Cards
	message.SetString(lang, "dashboard.journey.title", "Your Onboarding Journey")
	message.SetString(lang, "dashboard.journey.percent", "%s%%")
	message.SetString(lang, "dashboard.first_tasks.title", "Your First Tasks")
	message.SetString(lang, "dashboard.team.title", "Meet Your Team")

	// Footer
	message.SetString(lang, "footer.support", "Support")
	message.SetString(lang, "footer.privacy", "Privacy Policy")
	message.SetString(lang, "footer.terms", "Terms of Service")

	// Errors
	message.SetString(lang, "web.error.page_title_not_found", "Page not found")
	message.SetString(lang, "web.error.page_title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.page_title_unavailable", "Temporarily unavailable")
	message.SetString(lang, "web.error.message_not_found", "We could not find the page you were looking for.")
	message.SetString(lang, "web.error.message_server_error", "The dashboard could not be rendered. Please try again.")
	message.SetString(lang, "web.error.message_unavailable", "Your onboarding details are not available right now. Please try again shortly.")
	message.SetString(lang, "web.error.action_back_to_dashboard", "Back to dashboard")
}
