package clients

// DiscordBotUser represents Discord bot user information
type DiscordBotUser struct {
	ID       string
	Username string
	Bot      bool
}
