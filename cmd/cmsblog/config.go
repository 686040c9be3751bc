package main

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/eringen/cmsblog"
	"github.com/eringen/cmsblog/markdown"
)

type configOption struct {
	Key     string
	Default any
	Comment string
}

// configOptions lists every key with its default and meaning.
func configOptions() []configOption {
	return []configOption{
		{Key: "site.name", Default: "Blog", Comment: "Site title"},
		{Key: "site.url", Default: "http://localhost:3000", Comment: "Canonical base URL"},
		{Key: "site.description", Default: "", Comment: "Site description for feeds and meta tags"},
		{Key: "site.author", Default: "", Comment: "Author shown in the bio and JSON-LD"},
		{Key: "site.keywords", Default: []string{}, Comment: "SEO keywords, list or comma-separated"},
		{Key: "site.timezone", Default: "UTC", Comment: "IANA zone dates are shown in"},
		{Key: "site.description_placeholder", Default: cmsblog.DefaultDescriptionPlaceholder, Comment: "Listing text for posts without a description"},

		{Key: "cms.endpoint", Default: "", Comment: "GraphQL endpoint of the content API (required)"},
		{Key: "cms.token", Default: "", Comment: "Bearer token for published content"},
		{Key: "cms.preview_token", Default: "", Comment: "Bearer token for draft content"},
		{Key: "cms.order_by", Default: "createdAt_DESC", Comment: "Server-side post order"},
		{Key: "cms.timeout", Default: "10s", Comment: "Content API request timeout"},

		{Key: "server.addr", Default: ":3000", Comment: "HTTP listen address"},
		{Key: "server.session_secret", Default: "", Comment: "Session encryption secret"},
		{Key: "server.cookie_secure", Default: false, Comment: "Mark cookies Secure (HTTPS)"},
		{Key: "preview.secret", Default: "", Comment: "Shared secret for /preview; empty disables preview"},

		{Key: "markdown.highlight_style", Default: markdown.DefaultStyle, Comment: "chroma style for code blocks"},
		{Key: "markdown.sanitize", Default: true, Comment: "Run converted HTML through the allow-list"},

		{Key: "build.out_dir", Default: "public", Comment: "Static build output directory"},

		{Key: "log.level", Default: "info", Comment: "debug, info, warn or error"},
		{Key: "log.development", Default: false, Comment: "Console logs instead of JSON"},
	}
}

// loadConfig resolves configuration with precedence defaults < file < env.
// A missing config file is not an error unless one was named explicitly.
func loadConfig(v *viper.Viper, path string) error {
	for _, o := range configOptions() {
		v.SetDefault(o.Key, o.Default)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	} else {
		v.SetConfigName("cmsblog")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return err
			}
		}
	}

	v.SetEnvPrefix("cmsblog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return nil
}

// siteConfig maps resolved keys onto a SiteConfig.
func siteConfig(v *viper.Viper) cmsblog.SiteConfig {
	return cmsblog.SiteConfig{
		Name:                   v.GetString("site.name"),
		URL:                    v.GetString("site.url"),
		Description:            v.GetString("site.description"),
		Author:                 v.GetString("site.author"),
		Keywords:               keywords(v),
		Timezone:               v.GetString("site.timezone"),
		DescriptionPlaceholder: v.GetString("site.description_placeholder"),

		CMSEndpoint:     v.GetString("cms.endpoint"),
		CMSToken:        v.GetString("cms.token"),
		CMSPreviewToken: v.GetString("cms.preview_token"),
		CMSOrderBy:      v.GetString("cms.order_by"),
		CMSTimeout:      v.GetDuration("cms.timeout"),

		Addr:          v.GetString("server.addr"),
		SessionSecret: v.GetString("server.session_secret"),
		CookieSecure:  v.GetBool("server.cookie_secure"),
		PreviewSecret: v.GetString("preview.secret"),

		HighlightStyle:  v.GetString("markdown.highlight_style"),
		DisableSanitize: !v.GetBool("markdown.sanitize"),

		OutDir: v.GetString("build.out_dir"),
	}
}

// keywords accepts a YAML list or a comma-separated string from the env.
func keywords(v *viper.Viper) []string {
	if s, ok := v.Get("site.keywords").(string); ok {
		return cmsblog.FilterEmpty(strings.Split(s, ","))
	}
	return cmsblog.FilterEmpty(v.GetStringSlice("site.keywords"))
}
