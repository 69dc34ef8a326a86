// Package command maps raw chat input to a closed set of commands and
// callback actions. Parsing never fails: unrecognized input maps to Unknown.
package command

import "strings"

// Prefix marks a text message as a command
const Prefix = "/"

// Command is a bot command recognized by its first token
type Command int

const (
	Unknown Command = iota
	Start
	Help
	Vocabulary
	Learned
	Exercise
	DictionaryInfo
	Stats
	Status
	ClearCache
	ClearVocabulary
	Users
	UsersList
)

type entry struct {
	token     string
	adminOnly bool
}

var commands = map[Command]entry{
	Start:           {token: "/start"},
	Help:            {token: "/help"},
	Vocabulary:      {token: "/vocabulary"},
	Learned:         {token: "/learned"},
	Exercise:        {token: "/exercise"},
	DictionaryInfo:  {token: "/dictionary"},
	ClearVocabulary: {token: "/clear_vocabulary"},
	Stats:           {token: "/stats", adminOnly: true},
	Status:          {token: "/status", adminOnly: true},
	ClearCache:      {token: "/clear", adminOnly: true},
	Users:           {token: "/users", adminOnly: true},
	UsersList:       {token: "/users_list", adminOnly: true},
}

var byToken = func() map[string]Command {
	m := make(map[string]Command, len(commands))
	for cmd, e := range commands {
		m[e.token] = cmd
	}
	return m
}()

// Parse returns the command named by the first whitespace-delimited token.
// Text that is not a known command maps to Unknown.
func Parse(text string) Command {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Unknown
	}
	token := strings.ToLower(fields[0])
	// Telegram appends the bot name in groups: /start@vocabu_bot
	token, _, _ = strings.Cut(token, "@")
	if cmd, ok := byToken[token]; ok {
		return cmd
	}
	return Unknown
}

// IsCommandText reports whether the text starts with the command prefix
func IsCommandText(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), Prefix)
}

// AdminOnly reports whether the command is restricted to the admin chat
func (c Command) AdminOnly() bool {
	return commands[c].adminOnly
}

// Token returns the command as typed by users
func (c Command) Token() string {
	return commands[c].token
}

func (c Command) String() string {
	if c == Unknown {
		return "unknown"
	}
	return strings.TrimPrefix(commands[c].token, Prefix)
}
