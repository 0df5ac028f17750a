package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	jwtPattern       = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern    = regexp.MustCompile(`(?i)^bearer\s+.+$`)
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)

	// Discord bot credentials travel as "Bot <token>".
	botTokenPattern = regexp.MustCompile(`^Bot\s+[A-Za-z0-9._-]+$`)

	// Postgres URLs carry the password in the userinfo part.
	dsnPattern = regexp.MustCompile(`^postgres(ql)?://[^:/@]+:[^@]+@`)
)

// DefaultRedactOptions lists the field names and value patterns that never
// reach a log sink in clear text.
func DefaultRedactOptions() []masq.Option {
	fields := []string{
		"password", "secret", "token", "apiKey", "apikey", "api_key",
		"accessToken", "access_token", "refreshToken", "refresh_token",
		"botToken", "bot_token", "credential", "credentials",
		"authorization", "auth", "bearer", "cookie", "session",
		"privateKey", "private_key", "secretKey", "secret_key", "dsn",
	}

	opts := make([]masq.Option, 0, len(fields)+7)
	for _, f := range fields {
		opts = append(opts, masq.WithFieldName(f))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(basicAuthPattern),
		masq.WithRegex(botTokenPattern),
		masq.WithRegex(dsnPattern),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr hook applying the default
// redaction rules plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
