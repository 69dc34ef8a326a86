package handler

import _ "embed"

var (
	//go:embed texts/start.txt
	startText string
	//go:embed texts/start_admin.txt
	startAdminText string
	//go:embed texts/help.txt
	helpText string
	//go:embed texts/help_admin.txt
	helpAdminText string
)

const (
	msgSomethingWentWrong = "❌ Something went wrong. Please try again later."
	msgUnknownCommand     = "❌ Unknown command. Type /help for assistance."
	msgUnauthorized       = "❌ You are not authorized to use this command."
	msgTooManyWords       = "❌ Text too long! Supports only max 3 words."
	msgUnsupported        = "❌ Unsupported language detected\n\nCurrently supports only English 🇬🇧 and Ukrainian 🇺🇦."
	msgAlreadyExists      = "This word pair already exists in your vocabulary."
	msgSendOwn            = "Send your own translation:"
	msgEmptyVocabulary    = "Your vocabulary is empty. Please add some words first."
	msgNotEnoughOptions   = "Not enough words for an exercise yet. Please add more words first."
	msgSendBanUserID      = "Send the ID of the user to ban:"
	msgInvalidUserID      = "❌ Invalid user ID."
	msgNothingYet         = "Nothing yet..."

	vocabularyHeader = "==🇬🇧== Vocabulary ==🇺🇦== - % -\n\n"
	learnedHeader    = "==🇬🇧== Learned Words ==🇬🇧==\n\n"
)
