package config

import (
	"strings"

	"tableflip.dev/radial/pkg/menu"
)

// FromCLI parses the --cli item syntax: semicolon-separated
// "title:description:action" entries. A two-field entry is read as
// "title:action", and an empty description defaults to the title.
func FromCLI(spec string) Config {
	cfg := Default()

	for _, entry := range strings.Split(spec, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if item, ok := parseCLIItem(entry); ok {
			cfg.Items = append(cfg.Items, item)
		}
	}
	return cfg
}

// parseCLIItem splits one entry on unescaped colons. A backslash escapes a
// colon only when it appears immediately before it; everywhere else a
// backslash is literal. That asymmetric rule is a documented limitation
// kept for compatibility, not generalized.
func parseCLIItem(entry string) (menu.Item, bool) {
	var parts [3]string
	start := 0
	idx := 0

	runes := []rune(entry)
	for i := 0; i < len(runes) && idx < 3; i++ {
		if runes[i] == ':' && (i == 0 || runes[i-1] != '\\') {
			parts[idx] = string(runes[start:i])
			idx++
			start = i + 1
		}
	}
	if start < len(runes) && idx < 3 {
		parts[idx] = string(runes[start:])
	}

	label := unescapeColons(parts[0])
	description := unescapeColons(parts[1])
	command := unescapeColons(parts[2])

	// "title:action" form: the middle field is really the command.
	if command == "" && description != "" {
		command = description
		description = ""
	}
	if description == "" {
		description = label
	}

	item := menu.Leaf(label, command, description)
	return item, item.IsValid()
}

func unescapeColons(s string) string {
	return strings.ReplaceAll(s, `\:`, ":")
}
