package render

// Config controls the layout shell around rendered content. The zero value
// is usable; empty fields simply leave their region blank.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// HeaderTitle is shown in the shell's header region.
	HeaderTitle string `env:"RENDER_HEADER_TITLE"`
	// FooterText is shown in the shell's footer region, typically the
	// sender's postal address or an unsubscribe note.
	FooterText string `env:"RENDER_FOOTER_TEXT"`
}
